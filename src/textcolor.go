package rsblock

import "fmt"

// Minimal ANSI terminal coloring for the demonstration tools,
// in the manner of Dire Wolf's textcolor.c.

type text_color_e int

const (
	COLOR_INFO  text_color_e = iota /* default */
	COLOR_REC                       /* green - received blocks */
	COLOR_XMIT                      /* magenta - generated blocks */
	COLOR_ERROR                     /* red */
	COLOR_DEBUG                     /* dark green */
)

var _text_color_enabled bool

func text_color_init(enabled bool) {
	_text_color_enabled = enabled
}

var _text_color_codes = map[text_color_e]string{
	COLOR_INFO:  "\x1b[0m",
	COLOR_REC:   "\x1b[32m",
	COLOR_XMIT:  "\x1b[35m",
	COLOR_ERROR: "\x1b[31m",
	COLOR_DEBUG: "\x1b[2;32m",
}

func text_color_set(c text_color_e) {
	if !_text_color_enabled {
		return
	}

	fmt.Print(_text_color_codes[c])
}
