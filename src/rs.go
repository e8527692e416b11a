// Package rsblock is a Reed-Solomon forward error correction engine for
// short block codes over GF(2^m).
//
// The codec appends 2t parity symbols to a k-symbol message so that up to
// t corrupted symbols in the received block can be located and repaired.
// The canonical configuration is RS(15,9) over GF(2^4), correcting up to
// 3 symbol errors per block.
//
// The table-driven field arithmetic and the decoder structure follow the
// well known Reed-Solomon codec by Phil Karn, KA9Q.
package rsblock

// SPDX-FileCopyrightText: 2002 Phil Karn, KA9Q
// SPDX-FileCopyrightText: The rsblock Authors

// The Galois field table generation and generator polynomial construction
// are based on work performed by Phil Karn.  Phil was kind enough to
// release his code under the GPL, as noted below.  Consequently, this
// codec is also released under the terms of the GPL.
//
// Phil Karn's original copyright notice:
/* Test the Reed-Solomon codecs
 * for various block sizes and with random data and random error patterns
 *
 * Copyright 2002 Phil Karn, KA9Q
 * May be used under the terms of the GNU General Public License (GPL)
 *
 */

import (
	"fmt"
)

// Scratch buffers in the decoder are statically sized, so the generator
// polynomial degree (2t) is capped here.  Plenty for short block codes.
const MAX_CHECK = 64

// Primitive polynomials for GF(2^m), m = 2 thru 16.
// Index is m; value includes the x^m term.
var primitive_poly = [17]uint{
	0, 0,
	0x7,     // x^2+x+1
	0xb,     // x^3+x+1
	0x13,    // x^4+x+1
	0x25,    // x^5+x^2+1
	0x43,    // x^6+x+1
	0x89,    // x^7+x^3+1
	0x11d,   // x^8+x^4+x^3+x^2+1
	0x211,   // x^9+x^4+1
	0x409,   // x^10+x^3+1
	0x805,   // x^11+x^2+1
	0x1053,  // x^12+x^6+x^4+x+1
	0x201b,  // x^13+x^4+x^3+x+1
	0x4443,  // x^14+x^10+x^6+x+1
	0x8003,  // x^15+x+1
	0x1100b, // x^16+x^12+x^3+x+1
}

// RS is a Reed-Solomon codec control block.  The lookup tables and the
// generator polynomial are built once by New and never written again, so
// a single instance may be shared by any number of goroutines.
type RS struct {
	mm       uint     // Symbol size, bits.
	nn       uint16   // Symbols per block, (1<<mm)-1.
	a0       uint16   // Log of zero sentinel, = nn.
	alpha_to []uint16 // Antilog table: alpha_to[i] = alpha**i.
	index_of []uint16 // Log table: index_of[alpha**i] = i.
	genpoly  []uint16 // Generator polynomial coefficients, index form.
	nroots   uint     // Generator polynomial degree (number of parity symbols).
}

/*-------------------------------------------------------------
 *
 * Name:	New
 *
 * Purpose:	Build a Reed-Solomon codec for GF(2^symsize) correcting
 *		up to capacity symbol errors per block.
 *
 * Inputs:	symsize  - Symbol size in bits, 2 thru 16.
 *			   Block length is 2^symsize - 1 symbols.
 *
 *		capacity - Maximum number of correctable symbol errors, t.
 *			   The codec appends 2t parity symbols.
 *
 * Returns:	Codec control block, or an error for an impossible
 *		parameter combination.
 *
 * Description:	Generates the Galois field antilog/log tables for the
 *		fixed primitive polynomial of the requested width, then
 *		forms the code generator polynomial from its roots
 *		alpha^1 thru alpha^2t.
 *
 *--------------------------------------------------------------*/

func New(symsize int, capacity int) (*RS, error) {
	if symsize < 2 || symsize > 16 {
		return nil, fmt.Errorf("rsblock: symbol size %d not in range 2 thru 16", symsize)
	}

	var nn = (1 << symsize) - 1
	var nroots = 2 * capacity

	if capacity < 1 {
		return nil, fmt.Errorf("rsblock: error correction capacity %d must be at least 1", capacity)
	}
	if nroots >= nn {
		return nil, fmt.Errorf("rsblock: capacity %d leaves no room for message symbols in a %d symbol block", capacity, nn)
	}
	if nroots > MAX_CHECK {
		return nil, fmt.Errorf("rsblock: capacity %d exceeds maximum of %d", capacity, MAX_CHECK/2)
	}

	var rs = new(RS)

	rs.mm = uint(symsize)
	rs.nn = uint16(nn)
	rs.a0 = uint16(nn)
	rs.nroots = uint(nroots)

	rs.alpha_to = make([]uint16, nn+1)
	rs.index_of = make([]uint16, nn+1)

	// Generate Galois field lookup tables.
	rs.index_of[0] = rs.a0 // log(zero) = -inf
	rs.alpha_to[nn] = 0    // alpha**-inf = 0
	var sr = 1
	for i := 0; i < nn; i++ {
		rs.index_of[sr] = uint16(i)
		rs.alpha_to[i] = uint16(sr)
		sr <<= 1
		if sr&(1<<uint(symsize)) != 0 {
			sr ^= int(primitive_poly[symsize])
		}
		sr &= nn
	}
	if sr != 1 {
		// Would mean a non-primitive entry in the polynomial table.
		return nil, fmt.Errorf("rsblock: field generator polynomial %#x is not primitive", primitive_poly[symsize])
	}

	// Form the code generator polynomial from its roots alpha^1 .. alpha^2t,
	// lowest degree coefficient first:  g(x) = product of (x - alpha^i).
	var g = make([]uint16, nroots+1)
	g[0] = 1
	for i := 1; i <= nroots; i++ {
		var root = rs.alpha_to[i]
		// Multiply g(x) by (x - alpha^i).  Subtraction is addition here.
		for j := i; j >= 1; j-- {
			g[j] = rs.gf_add(g[j-1], rs.gf_mul(g[j], root))
		}
		g[0] = rs.gf_mul(g[0], root)
	}
	Assert(g[nroots] == 1)

	// Convert to index form for quicker encoding.
	rs.genpoly = make([]uint16, nroots+1)
	for i := 0; i <= nroots; i++ {
		rs.genpoly[i] = rs.index_of[g[i]]
	}

	return rs, nil
}

// SymbolSize returns the symbol width in bits, m.
func (rs *RS) SymbolSize() int {
	return int(rs.mm)
}

// CodewordSize returns the block length in symbols, n = 2^m - 1.
func (rs *RS) CodewordSize() int {
	return int(rs.nn)
}

// MessageSize returns the number of user data symbols per block, k = n - 2t.
func (rs *RS) MessageSize() int {
	return int(rs.nn) - int(rs.nroots)
}

// FecSize returns the number of parity symbols per block, 2t.
func (rs *RS) FecSize() int {
	return int(rs.nroots)
}

// modnn reduces a sum of logarithms modulo nn = 2^mm - 1.
// Arguments never exceed a few multiples of nn so the shift trick
// converges quickly without a divide.
func (rs *RS) modnn(x int) int {
	for x >= int(rs.nn) {
		x -= int(rs.nn)
		x = (x >> rs.mm) + (x & int(rs.nn))
	}
	return x
}

// Field arithmetic.  Elements are integers in [0, 2^mm - 1].

func (rs *RS) gf_add(a uint16, b uint16) uint16 {
	return a ^ b
}

func (rs *RS) gf_mul(a uint16, b uint16) uint16 {
	if a == 0 || b == 0 {
		return 0
	}
	return rs.alpha_to[rs.modnn(int(rs.index_of[a])+int(rs.index_of[b]))]
}

// gf_inv is defined only for nonzero elements.  The codec never divides
// by zero during well-formed decoding; a zero here is a caller bug.
func (rs *RS) gf_inv(a uint16) uint16 {
	Assert(a != 0)
	return rs.alpha_to[rs.modnn(int(rs.nn)-int(rs.index_of[a]))]
}

func (rs *RS) gf_pow(a uint16, e int) uint16 {
	Assert(e >= 0)
	if a == 0 {
		if e == 0 {
			return 1
		}
		return 0
	}
	return rs.alpha_to[(int(rs.index_of[a])*e)%int(rs.nn)]
}
