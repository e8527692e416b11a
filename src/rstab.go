package rsblock

/*------------------------------------------------------------------
 *
 * Purpose:	Print the Galois field tables and generator polynomial
 *		for a given symbol width and correction capacity.
 *
 *		Handy when cross-checking against other implementations
 *		or hardware register dumps.  Run via the rstab command.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func RstabMain() {
	var symsize = pflag.IntP("symbol-size", "m", 4, "Symbol width in bits, 2 thru 16.")
	var capacity = pflag.IntP("capacity", "t", 3, "Number of correctable symbol errors.")
	pflag.Parse()

	var rs, newErr = New(*symsize, *capacity)
	if newErr != nil {
		fmt.Printf("%s\n", newErr)
		os.Exit(1)
	}

	fmt.Printf("RS(%d,%d) over GF(2^%d) with primitive polynomial %#x\n\n",
		rs.CodewordSize(), rs.MessageSize(), rs.SymbolSize(), primitive_poly[rs.SymbolSize()])

	fmt.Printf(" i     alpha^i   log(i)\n")
	for i := 0; i < rs.CodewordSize(); i++ {
		var logcol = "-" // log(0) is undefined.
		if i > 0 {
			logcol = fmt.Sprintf("%d", rs.index_of[i])
		}
		fmt.Printf("%2d  %8d  %7s\n", i, rs.alpha_to[i], logcol)
	}

	// alpha^n wraps to 1: the antilog table is cyclic with period n.
	Assert(rs.gf_pow(rs.alpha_to[1], rs.CodewordSize()) == 1)

	fmt.Printf("\nGenerator polynomial, lowest degree first:\n")
	for i, g := range rs.genpoly {
		if g == rs.a0 {
			fmt.Printf("  x^%-2d  0\n", i)
		} else {
			fmt.Printf("  x^%-2d  alpha^%-3d = %d\n", i, g, rs.alpha_to[g])
		}
	}
}
