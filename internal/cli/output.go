package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color printers for each kind of status line.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	removed       = color.New(color.FgRed).SprintFunc()
	added         = color.New(color.FgGreen).SprintFunc()
	header        = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// ConfigureColor turns colored output on only when w is a terminal and
// disable is false.
func ConfigureColor(w io.Writer, disable bool) {
	color.NoColor = disable || !isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, infoPrefix("[INFO]")+" "+fmt.Sprintf(format, args...))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successPrefix("[OK]")+" "+fmt.Sprintf(format, args...))
}

func printWarn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnPrefix("[WARN]")+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorPrefix("[ERROR]")+" "+fmt.Sprintf(format, args...))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
