package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/creational/pkg/creational/abstractfactory"
)

var abstractFactoryCmd = &cobra.Command{
	Use:   "abstractfactory",
	Short: "Furnish a room in each registered style",
	RunE: func(cmd *cobra.Command, args []string) error {
		heading.Fprintln(cmd.OutOrStdout(), "Abstract Factory")

		for _, style := range abstractfactory.Styles() {
			f, err := abstractfactory.ForStyle(style)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", style)
			for _, line := range abstractfactory.FurnishRoom(f) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(abstractFactoryCmd)
}
