package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/creational/pkg/creational/singleton"
)

// demoSettings is the singleton-designated type for the demo.
type demoSettings struct {
	Value string
}

var singletonCmd = &cobra.Command{
	Use:   "singleton",
	Short: "Race two goroutines for one instance",
	Long: `Two goroutines request the same singleton near-simultaneously, one
binding "foo" and one binding "bar". Exactly one constructor runs; both
goroutines observe the same instance with the same bound value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		heading.Fprintln(cmd.OutOrStdout(), "Singleton")

		r := singleton.NewRegistry()
		slot := singleton.For[demoSettings](r)

		var wg sync.WaitGroup
		for _, value := range []string{"foo", "bar"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s, err := slot.Get(func() (*demoSettings, error) {
					return &demoSettings{Value: value}, nil
				})
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "goroutine %s: error: %v\n", value, err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "goroutine %s: value=%s instance=%p\n", value, s.Value, s)
			}()
		}
		wg.Wait()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(singletonCmd)
}
