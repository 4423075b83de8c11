package debug

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var logColor func(string, ...any) string

func init() {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logColor = color.HiBlackString
	} else {
		logColor = fmt.Sprintf
	}
}

// Logf writes a trace line to stderr, dimmed when stderr is a terminal.
// Callers gate on the flag accessors so the formatting cost is only paid
// when the corresponding GRIP_DEBUG_* variable is set.
func Logf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, logColor(format, args...))
}
