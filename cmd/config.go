package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitfare/splitfare/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change splitfare settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		metadata := config.GetSettingsMetadata()
		for _, category := range config.CategoryOrder() {
			fmt.Fprintf(out, "[%s]\n", category)
			for _, meta := range metadata[category] {
				key := strings.ToLower(category) + "." + meta.Key
				value, err := s.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s = %s\n", key, value)
			}
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetSettingsPath())
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings()
		if err != nil {
			return err
		}
		value, err := s.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting and save it to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		s, err := config.LoadSettingsFile()
		if err != nil {
			return err
		}
		if err := s.Set(key, value); err != nil {
			return err
		}
		if err := config.SaveSettings(s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configGetCmd, configSetCmd)
}
