package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/creational/pkg/creational/prototype"
)

var prototypeDBPath string

var prototypeCmd = &cobra.Command{
	Use:   "prototype",
	Short: "Clone shapes from a prototype catalog",
	Long: `Builds a catalog of master prototypes and clones from it. With --db,
the catalog is snapshotted to a SQLite file and restored from it first,
so masters survive across runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		heading.Fprintln(cmd.OutOrStdout(), "Prototype")

		catalog := prototype.NewCatalog()

		var store prototype.Store
		if prototypeDBPath != "" {
			var err error
			store, err = prototype.NewSQLiteStore(prototypeDBPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := catalog.LoadFrom(store); err != nil {
				return err
			}
		}

		if catalog.Len() == 0 {
			catalog.Put("unit-circle", prototype.NewCircle(1))
			catalog.Put("a4-page", prototype.NewRectangle(210, 297))
			catalog.Put("banner", prototype.NewLabel("welcome", "ui"))
		}

		for _, name := range catalog.Names() {
			clone, err := catalog.Clone(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: cloned %s %s from %s\n",
				name, clone.Kind(), clone.ID(), clone.ParentID())
		}

		if store != nil {
			if err := catalog.SaveTo(store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog saved to %s\n", prototypeDBPath)
		}
		return nil
	},
}

func init() {
	prototypeCmd.Flags().StringVar(&prototypeDBPath, "db", "", "SQLite file for catalog snapshots")
	rootCmd.AddCommand(prototypeCmd)
}
