package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/clipboard"
	"github.com/splitfare/splitfare/internal/source"
	"github.com/splitfare/splitfare/internal/utils"
)

var errNoInput = errors.New("no input: pass text as arguments, use --file or --clipboard, or pipe text on stdin")

// readInput collects the submission text from exactly one source: a file,
// the clipboard, or the positional arguments (stdin when there are none).
func readInput(cmd *cobra.Command, args []string, file string, fromClipboard bool) (string, error) {
	sources := 0
	for _, used := range []bool{file != "", fromClipboard, len(args) > 0} {
		if used {
			sources++
		}
	}
	if sources > 1 {
		return "", fmt.Errorf("use only one of text arguments, --file and --clipboard")
	}

	var (
		text string
		err  error
	)
	switch {
	case file != "":
		text, err = source.ReadFile(file)
	case fromClipboard:
		text, err = clipboard.ReadText()
	default:
		in := cmd.InOrStdin()
		if len(args) == 0 && isTerminal(in) {
			return "", errNoInput
		}
		text, err = source.Collect(args, in)
	}
	if err != nil {
		return "", err
	}

	utils.Debug("Read %d bytes of %s input", len(text), source.KindOf(text))
	return text, nil
}

// isTerminal reports whether r is an interactive terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// printCandidates lists every URL considered and why it was rejected
func printCandidates(w io.Writer, res booking.Result) {
	rejected := make(map[string]string, len(res.Rejected))
	for _, r := range res.Rejected {
		rejected[r.Candidate] = r.Reason
	}

	fmt.Fprintf(w, "%d candidate(s), outcome: %s\n", len(res.Candidates), res.Outcome)
	for _, c := range res.Candidates {
		switch {
		case c == string(res.URL):
			fmt.Fprintf(w, "  selected  %s\n", c)
		case rejected[c] != "":
			fmt.Fprintf(w, "  rejected  %s (%s)\n", c, rejected[c])
		default:
			fmt.Fprintf(w, "  skipped   %s\n", c)
		}
	}
}
