package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/creational/pkg/creational/builder"
)

var builderCmd = &cobra.Command{
	Use:   "builder",
	Short: "Construct houses with interchangeable builders",
	RunE: func(cmd *cobra.Command, args []string) error {
		heading.Fprintln(cmd.OutOrStdout(), "Builder")

		director := builder.NewDirector()

		stone := builder.NewStoneHouseBuilder()
		director.SetBuilder(stone)
		if err := director.Construct(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "full build:", stone.Product().Summary())

		wood := builder.NewWoodHouseBuilder()
		director.SetBuilder(wood)
		if err := director.ConstructMinimal(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "minimal build:", wood.Product().Summary())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builderCmd)
}
