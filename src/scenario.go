package rsblock

/*------------------------------------------------------------------
 *
 * Purpose:	Fault injection scenarios for exercising the codec.
 *
 * Description: A scenario file holds one message and a list of cases.
 *		Each case corrupts some codeword positions and states
 *		whether the block should still be recoverable.  The demo
 *		driver runs them all and compares outcomes.
 *
 *		The built-in default set walks through a clean channel,
 *		then 1, 2 and 3 errors (the last straddling the parity
 *		area), then 4 errors which is one too many for RS(15,9).
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ScenarioCorruption struct {
	Index int    `yaml:"index"` // Codeword position to clobber.
	Value uint16 `yaml:"value"` // Symbol value to write there.
}

type ScenarioCase struct {
	Name        string               `yaml:"name"`
	Corrupt     []ScenarioCorruption `yaml:"corrupt"`
	Recoverable bool                 `yaml:"recoverable"`
}

type ScenarioSet struct {
	Message []uint16       `yaml:"message"`
	Cases   []ScenarioCase `yaml:"cases"`
}

// scenario_load reads a YAML scenario file and validates it against the
// dimensions of the supplied codec.
func scenario_load(path string, rs *RS) (*ScenarioSet, error) {
	var raw, readErr = os.ReadFile(path) //nolint:gosec
	if readErr != nil {
		return nil, fmt.Errorf("could not read scenario file: %w", readErr)
	}

	var set ScenarioSet
	var yamlErr = yaml.Unmarshal(raw, &set)
	if yamlErr != nil {
		return nil, fmt.Errorf("could not parse scenario file %s: %w", path, yamlErr)
	}

	var checkErr = set.check(rs)
	if checkErr != nil {
		return nil, fmt.Errorf("bad scenario file %s: %w", path, checkErr)
	}

	return &set, nil
}

func (set *ScenarioSet) check(rs *RS) error {
	if len(set.Message) != rs.MessageSize() {
		return fmt.Errorf("message has %d symbols, want %d", len(set.Message), rs.MessageSize())
	}

	var q = uint16(rs.CodewordSize()) // Symbols range over [0, n] since n = 2^m - 1.
	for i, sym := range set.Message {
		if sym > q {
			return fmt.Errorf("message symbol %d at position %d is outside GF(2^%d)", sym, i, rs.SymbolSize())
		}
	}

	if len(set.Cases) == 0 {
		return fmt.Errorf("no cases")
	}

	for _, c := range set.Cases {
		if len(c.Name) == 0 {
			return fmt.Errorf("case with no name")
		}
		for _, corr := range c.Corrupt {
			if corr.Index < 0 || corr.Index >= rs.CodewordSize() {
				return fmt.Errorf("case %q corrupts position %d, outside [0, %d)", c.Name, corr.Index, rs.CodewordSize())
			}
			if corr.Value > q {
				return fmt.Errorf("case %q writes symbol %d, outside GF(2^%d)", c.Name, corr.Value, rs.SymbolSize())
			}
		}
	}

	return nil
}

// scenario_defaults is the original demonstration sequence for RS(15,9).
func scenario_defaults() *ScenarioSet {
	return &ScenarioSet{
		Message: []uint16{6, 15, 8, 9, 8, 3, 0, 0, 5},
		Cases: []ScenarioCase{
			{
				Name:        "clear transmission channel",
				Recoverable: true,
			},
			{
				Name:        "1 error in the message area",
				Corrupt:     []ScenarioCorruption{{Index: 2, Value: 0}},
				Recoverable: true,
			},
			{
				Name:        "2 errors in the message area",
				Corrupt:     []ScenarioCorruption{{Index: 2, Value: 0}, {Index: 3, Value: 0}},
				Recoverable: true,
			},
			{
				Name:        "3 errors straddling message and FEC areas",
				Corrupt:     []ScenarioCorruption{{Index: 2, Value: 0}, {Index: 3, Value: 0}, {Index: 11, Value: 0}},
				Recoverable: true,
			},
			{
				Name:        "4 errors, too much for RS(15,9)",
				Corrupt:     []ScenarioCorruption{{Index: 0, Value: 0}, {Index: 2, Value: 0}, {Index: 3, Value: 0}, {Index: 11, Value: 0}},
				Recoverable: false,
			},
		},
	}
}
