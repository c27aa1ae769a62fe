// Package scanner extracts the verbose flag and the target triple from forwarded build arguments.
package scanner

import (
	"strings"

	"go.trai.ch/cargowrap/internal/core/domain"
)

const (
	verboseFlag = "--verbose"
	targetFlag  = "--target"
)

// Scan walks args once and reports whether verbose output was requested and
// which target triple the build is for.
//
// Both "--target <triple>" and "--target=<triple>" are recognized. When the
// flag is repeated the first occurrence wins. A trailing "--target" without a
// value is ignored.
func Scan(args []string) domain.ScanResult {
	var res domain.ScanResult

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == verboseFlag {
			res.Verbose = true
			continue
		}

		suffix, ok := strings.CutPrefix(arg, targetFlag)
		if !ok {
			continue
		}

		var value string
		switch {
		case suffix == "":
			if i+1 >= len(args) {
				continue
			}
			i++
			value = args[i]
		case strings.HasPrefix(suffix, "="):
			value = suffix[1:]
		default:
			// e.g. --targets, not ours
			continue
		}

		if res.Target == "" {
			res.Target = value
		}
	}

	return res
}
