package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// heading styles demo section titles.
var heading = color.New(color.FgCyan, color.Bold)

var rootCmd = &cobra.Command{
	Use:   "creational",
	Short: "Creational design pattern demos",
	Long: `creational demonstrates the five classic creational patterns:
singleton, factory method, abstract factory, builder, and prototype.

Each subcommand runs one pattern's demo against the library.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
