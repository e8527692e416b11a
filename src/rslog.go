package rsblock

/*------------------------------------------------------------------
 *
 * Purpose:	Save decode attempts to a log file.
 *
 * Description:	Rather than scraping terminal output, write separated
 *		properties into CSV format for easy reading and later
 *		processing.
 *
 *		There are two alternatives here.
 *
 *		-L logfile		Specify full file path.
 *
 *		-l logdir		Daily names will be created here.
 *
 *		Use one or the other but not both.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

var g_daily_names bool
var g_log_path string
var g_log_fp *os.File
var g_open_fname string
var g_timestamp_format string

/*------------------------------------------------------------------
 *
 * Function:	rslog_init
 *
 * Purpose:	Initialization at start of application.
 *
 * Inputs:	daily_names	- True if daily names should be generated.
 *				  In this case path is a directory.
 *				  When false, path would be the file name.
 *
 *		path		- Log file name or just directory.
 *				  Use "." for current directory.
 *				  Empty string disables feature.
 *
 *		timestamp_format - 'strftime' format for the time stamp
 *				  column.
 *
 *------------------------------------------------------------------*/

func rslog_init(daily_names bool, path string, timestamp_format string) {
	g_daily_names = daily_names
	g_log_path = ""
	g_log_fp = nil
	g_open_fname = ""
	g_timestamp_format = timestamp_format

	if len(path) == 0 {
		return
	}

	if g_daily_names {
		// Automatic daily file names.
		var stat, statErr = os.Stat(path)

		if statErr == nil {
			if stat.IsDir() {
				g_log_path = path
			} else {
				text_color_set(COLOR_ERROR)
				fmt.Printf("Log file location \"%s\" is not a directory.\n", path)
				fmt.Printf("Using current working directory \".\" instead.\n")
				g_log_path = "."
			}
		} else {
			// Doesn't exist.  Try to create it.
			// Parent directory must exist; we don't create multiple levels like "mkdir -p".
			var mkdirErr = os.Mkdir(path, 0755)
			if mkdirErr == nil {
				g_log_path = path
			} else {
				text_color_set(COLOR_ERROR)
				fmt.Printf("Failed to create log file location \"%s\".\n", path)
				fmt.Printf("%s\n", mkdirErr)
				fmt.Printf("Using current working directory \".\" instead.\n")
				g_log_path = "."
			}
		}
	} else {
		// Single file.  Typically logrotate would be used to keep size under control.
		g_log_path = path
	}
}

/*------------------------------------------------------------------
 *
 * Function:	rslog_write
 *
 * Purpose:	Save one decode attempt to the log file.
 *
 * Inputs:	scenario  - Name of the scenario or trial.
 *
 *		corrupted - Number of symbols clobbered before decoding.
 *
 *		corrected - Number of symbols the decoder repaired,
 *			    -1 for a failed decode.
 *
 *		locations - Positions the corruptions were written to.
 *
 *		success	  - True if the decoder recovered the codeword.
 *
 *------------------------------------------------------------------*/

func rslog_write(scenario string, corrupted int, corrected int, locations []int, success bool) {
	if len(g_log_path) == 0 {
		return
	}

	var now = time.Now().UTC()

	if g_daily_names {
		// Generate the file name from current date, UTC.
		var fname = now.Format("2006-01-02.log")

		// Close current file if name has changed.
		if g_log_fp != nil && fname != g_open_fname {
			rslog_term()
		}

		if g_log_fp == nil {
			var full_path = filepath.Join(g_log_path, fname)

			// See if file already exists and not empty.
			// This is used later to write a header if it did not exist already.
			var stat, statErr = os.Stat(full_path)
			var already_there = statErr == nil && stat.Size() > 0

			var f, openErr = os.OpenFile(full_path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644) //nolint:gosec
			if openErr != nil {
				text_color_set(COLOR_ERROR)
				fmt.Printf("Can't open log file \"%s\" for write.\n", full_path)
				fmt.Printf("%s\n", openErr)
				g_open_fname = ""
				return
			}

			g_log_fp = f
			g_open_fname = fname

			if !already_there {
				rslog_header()
			}
		}
	} else {
		if g_log_fp == nil {
			var stat, statErr = os.Stat(g_log_path)
			var already_there = statErr == nil && stat.Size() > 0

			var f, openErr = os.OpenFile(g_log_path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644) //nolint:gosec
			if openErr != nil {
				text_color_set(COLOR_ERROR)
				fmt.Printf("Can't open log file \"%s\" for write.\n", g_log_path)
				fmt.Printf("%s\n", openErr)
				g_log_path = ""
				return
			}

			g_log_fp = f

			if !already_there {
				rslog_header()
			}
		}
	}

	var isotime, _ = strftime.Format(g_timestamp_format, now)

	var positions = make([]string, len(locations))
	for i, p := range locations {
		positions[i] = strconv.Itoa(p)
	}

	var w = csv.NewWriter(g_log_fp)
	w.Write([]string{
		strconv.FormatInt(now.Unix(), 10),
		isotime,
		scenario,
		strconv.Itoa(corrupted),
		strconv.Itoa(corrected),
		strings.Join(positions, "+"),
		IfThenElse(success, "recovered", "failed"),
	})
	w.Flush()

	var writeError = w.Error()
	if writeError != nil {
		text_color_set(COLOR_ERROR)
		fmt.Printf("CSV write error: %s\n", writeError)
	}
}

func rslog_header() {
	// A header suitable for importing into a spreadsheet,
	// only written when this will be the first line.
	fmt.Fprintf(g_log_fp, "utime,isotime,scenario,corrupted,corrected,positions,outcome\n")
}

/*------------------------------------------------------------------
 *
 * Function:	rslog_term
 *
 * Purpose:	Close any open log file, e.g. before exiting or when
 *		the date rolls over.
 *
 *------------------------------------------------------------------*/

func rslog_term() {
	if g_log_fp != nil {
		g_log_fp.Close() //nolint:errcheck,gosec
		g_log_fp = nil
		g_open_fname = ""
	}
}
