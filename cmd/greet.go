package cmd

import (
	"fmt"

	"github.com/dotcommander/vendorsel/internal/greeting"
	"github.com/spf13/cobra"
)

var (
	greetName   string
	greetTime   string
	greetUrgent bool
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print the assistant greeting",
	Long: `Greet prints the opening line. --urgent takes precedence over --name, which
takes precedence over --time. Time of day is taken from the hour of --time:
05-11 morning, 12-16 afternoon, 17-21 evening, otherwise late.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGreet(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	greetCmd.Flags().StringVar(&greetName, "name", "", "Greet the user by name")
	greetCmd.Flags().StringVar(&greetTime, "time", "", "Local time (HH or HH:MM)")
	greetCmd.Flags().BoolVar(&greetUrgent, "urgent", false, "Use the short urgent greeting")
	rootCmd.AddCommand(greetCmd)
}

func runGreet(cmd *cobra.Command) error {
	text, err := greeting.Greeting(greeting.Options{Name: greetName, Time: greetTime, Urgent: greetUrgent})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
