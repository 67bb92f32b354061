package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/creational/pkg/creational/config"
	"github.com/randalmurphal/creational/pkg/creational/factory"
)

var factoryConfigPath string

var factoryCmd = &cobra.Command{
	Use:   "factory",
	Short: "Plan deliveries through the factory method",
	Long: `Runs each Logistics creator's factory method. With --config, builds a
single transport from a declarative spec instead:

    kind: drone`,
	RunE: func(cmd *cobra.Command, args []string) error {
		heading.Fprintln(cmd.OutOrStdout(), "Factory Method")

		if factoryConfigPath != "" {
			cfg, err := config.FromFile(factoryConfigPath)
			if err != nil {
				return err
			}
			transport, err := factory.FromConfig(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), transport.Deliver())
			return nil
		}

		creators := []factory.Logistics{
			factory.RoadLogistics{},
			factory.SeaLogistics{},
			factory.AirLogistics{},
		}
		for _, creator := range creators {
			fmt.Fprintln(cmd.OutOrStdout(), factory.PlanDelivery(creator))
		}
		return nil
	},
}

func init() {
	factoryCmd.Flags().StringVarP(&factoryConfigPath, "config", "c", "",
		"transport spec file (yaml, json, or toml)")
	rootCmd.AddCommand(factoryCmd)
}
