package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splitfare/splitfare/internal/prefs"
	"github.com/splitfare/splitfare/internal/session"
	"github.com/splitfare/splitfare/internal/utils"
)

var (
	linkFile              string
	linkClipboard         bool
	linkBahnCard          string
	linkAge               string
	linkDeutschlandTicket bool
	linkClass             string
	linkRoute             string
	linkBase              string
)

var linkCmd = &cobra.Command{
	Use:   "link [text]...",
	Short: "Print the split-ticket search target for a booking link",
	Long: `Find the booking link in the given text and print the search target built
from it and your travel preferences.

Preferences not given as flags keep their defaults: no BahnCard, no
Deutschlandticket, no age and second class.`,
	Example: `  splitfare link --bahncard 50 --age 34 --deutschlandticket --class 1 "https://www.bahn.de/buchung/start?vbid=..."
  pbpaste | splitfare link --base https://splitfare.example`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, linkFile, linkClipboard)
		if err != nil {
			return err
		}

		update, err := linkPreferences(cmd)
		if err != nil {
			return err
		}

		cfg := *settings
		if cmd.Flags().Changed("route") {
			cfg.Booking.Route = linkRoute
		}
		if cmd.Flags().Changed("base") {
			cfg.Booking.BaseURL = linkBase
		}

		s := session.New(&cfg, nil, session.WithLogger(utils.Logger()))
		if err := prefs.Validate(s.Update(update)); err != nil {
			return err
		}

		s.SetText(text)
		out := s.Submit()
		if !out.Navigated() {
			return out.Err
		}

		link, err := s.Link(out.Target)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

// linkPreferences turns the preference flags that were set into an update.
func linkPreferences(cmd *cobra.Command) (prefs.Partial, error) {
	var u prefs.Partial
	flags := cmd.Flags()

	if flags.Changed("bahncard") {
		b, err := prefs.ParseBahnCard(linkBahnCard)
		if err != nil {
			return u, err
		}
		u.BahnCard = &b
	}
	if flags.Changed("age") {
		age, err := prefs.ParseAge(linkAge)
		if err != nil {
			return u, err
		}
		u.PassengerAge = age
		u.ClearAge = age == nil
	}
	if flags.Changed("deutschlandticket") {
		has := linkDeutschlandTicket
		u.HasDeutschlandTicket = &has
	}
	if flags.Changed("class") {
		c, err := prefs.ParseTravelClass(linkClass)
		if err != nil {
			return u, err
		}
		u.TravelClass = &c
	}
	return u, nil
}

func init() {
	linkCmd.Flags().StringVarP(&linkFile, "file", "f", "", "Read the text from a file (- for stdin)")
	linkCmd.Flags().BoolVarP(&linkClipboard, "clipboard", "c", false, "Read the text from the clipboard")
	linkCmd.Flags().StringVarP(&linkBahnCard, "bahncard", "b", "none", "BahnCard: none, 25 or 50")
	linkCmd.Flags().StringVarP(&linkAge, "age", "a", "", "Passenger age")
	linkCmd.Flags().BoolVarP(&linkDeutschlandTicket, "deutschlandticket", "d", false, "Passenger holds a Deutschlandticket")
	linkCmd.Flags().StringVar(&linkClass, "class", "2", "Travel class: 1 or 2")
	linkCmd.Flags().StringVar(&linkRoute, "route", "", "Target route (default from settings)")
	linkCmd.Flags().StringVar(&linkBase, "base", "", "Base URL prefixed to the target (default from settings)")
}
