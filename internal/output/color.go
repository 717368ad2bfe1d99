package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ResolveColorMode applies the --color flag to the detected terminal state.
// "never" and "always" force the answer; anything else (the "auto" default)
// keeps the detection result.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is an interactive terminal. Anything that is
// not an *os.File, including test buffers and pipes, is not.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
