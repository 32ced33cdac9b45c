package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/admiralguff/majel/internal/bundle"
	"github.com/admiralguff/majel/internal/crew"
	"github.com/admiralguff/majel/internal/observability"
	"github.com/admiralguff/majel/internal/roster"
	"github.com/admiralguff/majel/internal/types"
)

var (
	recommendBundle      string
	recommendRoster      string
	recommendConfig      string
	recommendIntent      string
	recommendShipClass   string
	recommendTargetClass string
	recommendCaptain     string
	recommendMinConf     string
	recommendLimit       int
	recommendJSON        bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score crews offline from a bundle and roster file",
	Long:  `Run the crew recommendation engine against an offline roster file, without a database or server.`,
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendBundle, "bundle", "", "Path to the effect catalog bundle JSON")
	recommendCmd.Flags().StringVar(&recommendRoster, "roster", "", "Path to the offline roster JSON")
	recommendCmd.Flags().StringVar(&recommendConfig, "config", "", "Path to a JSON config file")
	recommendCmd.Flags().StringVar(&recommendIntent, "intent", "", "Intent key to score for (e.g. pvp, mining-lat)")
	recommendCmd.Flags().StringVar(&recommendShipClass, "ship-class", "", "Class of the player's ship")
	recommendCmd.Flags().StringVar(&recommendTargetClass, "target-class", "", "Class of the target")
	recommendCmd.Flags().StringVar(&recommendCaptain, "captain", "", "Officer ID to pin as captain")
	recommendCmd.Flags().StringVar(&recommendMinConf, "min-confidence", "", "Reject results below this confidence (high, medium, low)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum number of recommendations")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Emit raw JSON instead of formatted output")
	_ = recommendCmd.MarkFlagRequired("intent")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(recommendConfig)
	if err != nil {
		return err
	}
	if recommendBundle != "" {
		cfg.Bundle = recommendBundle
	}
	if recommendRoster != "" {
		cfg.Roster = recommendRoster
	}
	if cfg.Bundle == "" || cfg.Roster == "" {
		return fmt.Errorf("both a bundle and a roster path are required")
	}

	b, err := bundle.Load(cfg.Bundle)
	if err != nil {
		return fmt.Errorf("failed to load bundle: %w", err)
	}
	r, err := roster.Load(cfg.Roster)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	req := crew.Request{
		IntentKey:     recommendIntent,
		ShipClass:     recommendShipClass,
		TargetClass:   recommendTargetClass,
		CaptainID:     recommendCaptain,
		MinConfidence: types.Confidence(recommendMinConf),
		Limit:         recommendLimit,
	}

	recs, err := b.NewEngine().Recommend(req, r.Officers, r.Reservations)
	if err != nil {
		return err
	}

	if recommendJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	names := make(map[string]string, len(r.Officers))
	for _, o := range r.Officers {
		names[o.ID] = o.Name
	}
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRecommendations(recommendIntent, recs, names)
	if verbose {
		for _, rec := range recs {
			printer.PrintFactors(rec)
		}
	}
	return nil
}
