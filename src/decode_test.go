package rsblock

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var testMessage = []uint16{6, 15, 8, 9, 8, 3, 0, 0, 5}
var testCodeword = []uint16{6, 15, 8, 9, 8, 3, 0, 0, 5, 0, 12, 11, 2, 0, 9}

func Test_DecodeCleanCodeword(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	var message, ok = rs.Decode(testCodeword)
	require.True(t, ok)
	assert.Equal(t, testMessage, message)

	// The in-place form reports success and touches nothing.
	var block = slices.Clone(testCodeword)
	assert.True(t, rs.Correct(block))
	assert.Equal(t, testCodeword, block)

	// And no corrections were counted.
	block = slices.Clone(testCodeword)
	assert.Equal(t, 0, decode_rs_block(rs, block))
}

func Test_DecodeCorrectsWithinCapacity(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	var cases = []struct {
		name    string
		corrupt []int
	}{
		{"1 error in message area", []int{2}},
		{"2 errors in message area", []int{2, 3}},
		{"3 errors straddling message and FEC areas", []int{2, 3, 11}},
		{"3 errors all in FEC area", []int{10, 11, 14}},
		{"error in first position", []int{0}},
		{"error in last position", []int{14}},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			var received = slices.Clone(testCodeword)
			for _, index := range testcase.corrupt {
				received[index] = 0
				// All chosen positions hold nonzero symbols, so each
				// zeroing is a real corruption.
				require.NotEqual(t, testCodeword[index], received[index])
			}

			var message, ok = rs.Decode(received)
			require.True(t, ok)
			assert.Equal(t, testMessage, message)

			var block = slices.Clone(received)
			assert.Equal(t, len(testcase.corrupt), decode_rs_block(rs, block))
			assert.Equal(t, testCodeword, block)
		})
	}
}

func Test_DecodeFailsBeyondCapacity(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	var received = slices.Clone(testCodeword)
	for _, index := range []int{0, 2, 3, 11} {
		received[index] = 0
	}

	var message, ok = rs.Decode(received)
	assert.False(t, ok)
	assert.Nil(t, message)

	// The in-place form reports failure and leaves the buffer alone.
	var block = slices.Clone(received)
	assert.False(t, rs.Correct(block))
	assert.Equal(t, received, block)
}

func Test_DecodeRoundTrip(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		var message = rapid.SliceOfN(rapid.Uint16Range(0, 15), 9, 9).Draw(t, "message")

		var decoded, ok = rs.Decode(rs.Encode(message))
		require.True(t, ok)
		assert.Equal(t, message, decoded)
	})
}

func Test_DecodeRepairsAnyPatternWithinCapacity(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		var message = rapid.SliceOfN(rapid.Uint16Range(0, 15), 9, 9).Draw(t, "message")
		var positions = rapid.SliceOfNDistinct(rapid.IntRange(0, 14), 1, 3, rapid.ID).Draw(t, "positions")

		var codeword = rs.Encode(message)
		var received = slices.Clone(codeword)
		for _, pos := range positions {
			// XOR with a nonzero pattern guarantees the symbol changed.
			received[pos] ^= rapid.Uint16Range(1, 15).Draw(t, "magnitude")
		}

		var decoded, ok = rs.Decode(received)
		require.True(t, ok, "%d errors at %v must be correctable", len(positions), positions)
		assert.Equal(t, message, decoded)

		var block = slices.Clone(received)
		assert.Equal(t, len(positions), decode_rs_block(rs, block))
		assert.Equal(t, codeword, block)
	})
}

func Test_DecodeNeverSilentlyWrongBeyondCapacity(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		var message = rapid.SliceOfN(rapid.Uint16Range(0, 15), 9, 9).Draw(t, "message")
		var positions = rapid.SliceOfNDistinct(rapid.IntRange(0, 14), 4, 6, rapid.ID).Draw(t, "positions")

		var received = slices.Clone(rs.Encode(message))
		for _, pos := range positions {
			received[pos] ^= rapid.Uint16Range(1, 15).Draw(t, "magnitude")
		}

		var decoded, ok = rs.Decode(received)
		if !ok {
			return // Failure is the expected outcome for most patterns.
		}

		// When decoding "succeeds" beyond capacity, the pattern landed in
		// some other codeword's sphere.  The result must still be a real
		// codeword within t symbols of what was received - never an
		// arbitrary wrong answer.
		var rebuilt = rs.Encode(decoded)
		var distance = 0
		for i := range rebuilt {
			if rebuilt[i] != received[i] {
				distance++
			}
		}
		assert.LessOrEqual(t, distance, 3)
	})
}

func Test_DecodeLeavesGarbageInputUnmodified(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	// An all-garbage block: either the decoder gives up, or it settles on
	// some codeword; it must not crash or loop.
	var garbage = []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	var before = slices.Clone(garbage)

	rs.Decode(garbage)
	assert.Equal(t, before, garbage, "Decode must not mutate its input")
}
