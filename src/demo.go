package rsblock

/*------------------------------------------------------------------
 *
 * Purpose:	Demonstration driver for the RS(15,9) codec.
 *
 * Description:	Simulates a transmission channel: encodes a message,
 *		clobbers some symbols, then lets the decoder try to
 *		recover the original block.  The scenarios come from a
 *		YAML file or from the built-in default set, optionally
 *		followed by a batch of randomized trials.
 *
 *		Run via the rsdemo command.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"math/rand"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func DemoMain() {
	var scenarioFile = pflag.StringP("scenarios", "f", "", "YAML scenario file.  Default is the built-in RS(15,9) sequence.")
	var logFile = pflag.StringP("log-file", "L", "", "Append decode events to this CSV file.")
	var logDir = pflag.StringP("log-dir", "l", "", "Write daily CSV decode logs in this directory.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "%Y-%m-%dT%H:%M:%S", "'strftime' format for log time stamps.")
	var randomTrials = pflag.IntP("random-trials", "n", 0, "Run this many random corruption trials after the scenarios.")
	var seed = pflag.Int64P("seed", "s", 1, "Seed for the random trials.")
	var color = pflag.BoolP("color", "c", false, "Colorize codeword dumps.")
	var verbose = pflag.BoolP("verbose", "v", false, "More detail about each decode.")
	pflag.Parse()

	var logger = log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if len(*logFile) > 0 && len(*logDir) > 0 {
		logger.Fatal("Use either --log-file or --log-dir but not both.")
	}

	text_color_init(*color)

	if len(*logFile) > 0 {
		rslog_init(false, *logFile, *timestampFormat)
	} else {
		rslog_init(*logDir != "", *logDir, *timestampFormat)
	}
	var rs, newErr = New(4, 3) // RS(15,9) over GF(2^4).
	if newErr != nil {
		logger.Fatal("Could not construct codec.", "err", newErr)
	}

	var set = scenario_defaults()
	if len(*scenarioFile) > 0 {
		var loaded, loadErr = scenario_load(*scenarioFile, rs)
		if loadErr != nil {
			logger.Fatal("Could not load scenarios.", "err", loadErr)
		}
		set = loaded
	}

	var ok = demo_run(rs, set, logger)

	if ok && *randomTrials > 0 {
		ok = demo_random_trials(rs, *randomTrials, rand.New(rand.NewSource(*seed)), logger) //nolint:gosec
	}

	rslog_term()

	if !ok {
		os.Exit(1)
	}
}

func demo_print_block(block []uint16) {
	for _, sym := range block {
		fmt.Printf("%X ", sym)
	}
	fmt.Printf("\n")
}

/*------------------------------------------------------------------
 *
 * Name:	demo_run
 *
 * Purpose:	Execute every case in a scenario set.
 *
 * Inputs:	rs	- Codec.
 *
 *		set	- Message plus corruption cases.
 *
 *		logger	- Diagnostics.  The codec itself never logs.
 *
 * Returns:	True when every case matched its expected outcome.
 *
 *------------------------------------------------------------------*/

func demo_run(rs *RS, set *ScenarioSet, logger *log.Logger) bool {
	fmt.Printf("Reed-Solomon RS(%d,%d) over GF(2^%d), correcting up to %d symbol errors per block.\n",
		rs.CodewordSize(), rs.MessageSize(), rs.SymbolSize(), rs.FecSize()/2)

	var codeword = rs.Encode(set.Message)

	fmt.Printf("\nMessage to send:    ")
	demo_print_block(set.Message)
	text_color_set(COLOR_XMIT)
	fmt.Printf("Codeword generated: ")
	demo_print_block(codeword)
	text_color_set(COLOR_INFO)

	var all_passed = true

	for _, c := range set.Cases {
		var received = slices.Clone(codeword)
		var positions []int
		for _, corr := range c.Corrupt {
			received[corr.Index] = corr.Value
			positions = append(positions, corr.Index)
		}

		fmt.Printf("\nSimulating %s\n", c.Name)
		text_color_set(COLOR_REC)
		fmt.Printf("Codeword received:  ")
		demo_print_block(received)
		text_color_set(COLOR_INFO)

		var work = slices.Clone(received)
		var corrected = decode_rs_block(rs, work)
		var recovered = corrected >= 0 && slices.Equal(work, codeword)

		if corrected >= 0 {
			fmt.Printf("Codeword recovered: ")
			demo_print_block(work)
		} else {
			fmt.Printf("Could not recover codeword's data.\n")
		}

		rslog_write(c.Name, len(c.Corrupt), corrected, positions, recovered)

		if recovered == c.Recoverable {
			logger.Debug("Case behaved as expected.", "case", c.Name, "corrupted", len(c.Corrupt), "corrected", corrected)
		} else {
			text_color_set(COLOR_ERROR)
			logger.Error("Case did not behave as expected.", "case", c.Name, "recoverable", c.Recoverable, "recovered", recovered)
			text_color_set(COLOR_INFO)
			all_passed = false
		}
	}

	if all_passed {
		fmt.Printf("\n***** Scenario run Success - all %d cases behaved as expected. *****\n", len(set.Cases))
	} else {
		fmt.Printf("\n***** Scenario run FAILED. *****\n")
	}

	return all_passed
}

/*------------------------------------------------------------------
 *
 * Name:	demo_random_trials
 *
 * Purpose:	Hammer the codec with random messages and random error
 *		patterns within its correction capacity.
 *
 * Description:	Each trial encodes a random message, flips 1 thru t
 *		random symbols to different random values, then checks
 *		the decoder reproduces the original message.
 *
 *------------------------------------------------------------------*/

func demo_random_trials(rs *RS, trials int, rng *rand.Rand, logger *log.Logger) bool {
	var q = rs.CodewordSize() + 1 // Field size.
	var capacity = rs.FecSize() / 2

	var failures = 0

	for trial := 0; trial < trials; trial++ {
		var msg = make([]uint16, rs.MessageSize())
		for i := range msg {
			msg[i] = uint16(rng.Intn(q))
		}

		var codeword = rs.Encode(msg)
		var received = slices.Clone(codeword)

		var nerr = 1 + rng.Intn(capacity)
		var positions = rng.Perm(rs.CodewordSize())[:nerr]
		for _, pos := range positions {
			// XOR with a nonzero pattern guarantees the symbol changed.
			received[pos] ^= uint16(1 + rng.Intn(q-1))
		}

		var decoded, ok = rs.Decode(received)
		if !ok || !slices.Equal(decoded, msg) {
			logger.Error("Random trial not recovered.", "trial", trial, "errors", nerr, "positions", positions)
			rslog_write("random trial", nerr, IfThenElse(ok, nerr, -1), positions, false)
			failures++
			continue
		}

		rslog_write("random trial", nerr, nerr, positions, true)
	}

	if failures == 0 {
		fmt.Printf("***** Random trials Success - %d/%d recovered. *****\n", trials, trials)
		return true
	}
	fmt.Printf("***** Random trials FAILED.  Only %d/%d recovered. *****\n", trials-failures, trials)
	return false
}
