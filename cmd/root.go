package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	quiet   bool
	verbose bool
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "vendorsel",
	Short: "VendorSelector - validate, score and rank supplier data",
	Long: `VendorSelector validates supplier records supplied as CSV or JSON, computes a
weighted overall score for each supplier and reports the top vendor(s).

  Overall = price × 0.4 + delivery reliability × 0.3 + quality rating × 0.3

Each score is on a 0-100 scale; the overall score is on 0-1, rounded to two places.
Use "vendorsel evaluate" to process input files or stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress greetings and non-error logs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
}

// bindFlags binds cobra flags to viper keys. It runs per invocation so a
// viper.Reset between runs does not lose the bindings.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	bind := func(flags *pflag.FlagSet, name, key string) error {
		f := flags.Lookup(name)
		if f == nil {
			return nil
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
		return nil
	}

	for _, name := range []string{"quiet", "verbose"} {
		if err := bind(cmd.Root().PersistentFlags(), name, name); err != nil {
			return err
		}
	}
	for name, key := range keys {
		if err := bind(cmd.Flags(), name, key); err != nil {
			return err
		}
	}
	return nil
}

// fail prints the error the way every command reports failures and exits 1.
func fail(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitFunc(1)
}
