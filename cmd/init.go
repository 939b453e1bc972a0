package cmd

import (
	"fmt"
	"os"

	"github.com/dotcommander/vendorsel/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the resolved configuration to .vendorselrc.json",
	Long: `Init resolves the current configuration (defaults, any existing rc file and
VENDORSEL_* environment variables) and saves it as .vendorselrc.json in the
working directory. An existing file is kept unless --force is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing .vendorselrc.json")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command) error {
	path := config.ConfigFiles[0]
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := bindFlags(cmd, nil); err != nil {
		return err
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
