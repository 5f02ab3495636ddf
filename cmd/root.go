package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/splitfare/splitfare/internal/clipboard"
	"github.com/splitfare/splitfare/internal/config"
	"github.com/splitfare/splitfare/internal/session"
	"github.com/splitfare/splitfare/internal/tui"
	"github.com/splitfare/splitfare/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// settings is loaded once per invocation in PersistentPreRun
var settings *config.Settings

var (
	rootText      string
	rootClipboard bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "splitfare [text]...",
	Short: "Find split-ticket fares for a Deutsche Bahn booking link",
	Long: `splitfare takes a Deutsche Bahn booking link, or any text that contains one,
together with your travel preferences and builds the query for a split-ticket
price search.

Without a subcommand it opens an interactive form. Text passed as arguments
prefills the form.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		utils.CloseLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		text := rootText
		if len(args) > 0 {
			text = strings.Join(args, " ")
		}
		if rootClipboard {
			clip, err := clipboard.ReadText()
			if err != nil {
				return err
			}
			text = clip
		}
		return startTUI(cmd, text)
	},
}

// startTUI runs the form and prints the link of a successful submission
func startTUI(cmd *cobra.Command, text string) error {
	tui.ApplyTheme(settings.General.Theme)

	s := session.New(settings, nil, session.WithLogger(utils.Logger()))
	opts := []tui.Option{
		tui.WithClipboardOnStart(settings.General.ClipboardMonitor && text == ""),
	}
	if text != "" {
		opts = append(opts, tui.WithText(text))
	}

	p := tea.NewProgram(tui.New(s, opts...), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Submitted() {
		utils.Debug("Form submitted: %s", m.Target())
		fmt.Fprintln(cmd.OutOrStdout(), m.Link())
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&rootText, "text", "t", "", "Prefill the form with this text")
	rootCmd.Flags().BoolVarP(&rootClipboard, "clipboard", "c", false, "Prefill the form with the clipboard contents")
	rootCmd.SetVersionTemplate("splitfare version {{.Version}}\n")

	rootCmd.AddCommand(extractCmd, linkCmd, configCmd)
}

// initializeGlobalState sets up directories and logging and loads settings
func initializeGlobalState() {
	logsDir := config.GetLogsDir()

	// Ensure directories exist
	_ = config.EnsureDirs()

	// Config logging
	utils.ConfigureDebug(logsDir)

	s, err := config.LoadSettings()
	if err != nil {
		utils.Debug("Error loading settings, using defaults: %v", err)
		s = config.DefaultSettings()
	}
	settings = s
	utils.SetDebug(s.General.Debug)

	// Clean up old logs
	utils.CleanupLogs(s.General.LogRetentionCount)
}
