package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/form"
)

var (
	extractFile      string
	extractClipboard bool
	extractVerbose   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]...",
	Short: "Print the booking link found in text",
	Long: `Print the first Deutsche Bahn booking link found in the given text.

The text comes from the arguments, a file, the clipboard or stdin. The link is
printed exactly as it appears in the text. If there is none, the command
prints why and exits with status 1.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, extractFile, extractClipboard)
		if err != nil {
			return err
		}

		pattern := settings.Booking.Pattern()
		if strings.TrimSpace(text) == "" {
			return form.NewValidationError(form.EmptyInput, pattern)
		}

		res := booking.NewExtractor(pattern).Find(text)
		if extractVerbose {
			printCandidates(cmd.ErrOrStderr(), res)
		}
		if !res.Found() {
			return form.NewValidationError(form.NoURLFound, pattern)
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.URL)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Read the text from a file (- for stdin)")
	extractCmd.Flags().BoolVarP(&extractClipboard, "clipboard", "c", false, "Read the text from the clipboard")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "List every candidate URL on stderr")
}
