// Command jcblocks serves, plays and demonstrates the block puzzle.
package main

import (
	"fmt"
	"os"

	"github.com/avg-cs-student/jcblocks/internal/config"
	"github.com/avg-cs-student/jcblocks/internal/logging"
	"github.com/avg-cs-student/jcblocks/internal/version"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "jcblocks",
	Short: "Block puzzle: place polyominoes on a grid and clear full lines",
	Long: `jcblocks is a single-player block puzzle. Blocks are dealt three at a
time and placed on an 8x8 board; every completed row or column is cleared and
scores points. The game ends when nothing in the hand fits.

Run "jcblocks play" for the terminal client or "jcblocks serve" for the HTTP API.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (JSON or YAML); defaults to $JCBLOCKS_CONFIG or ./jcblocks.yaml")

	rootCmd.AddCommand(serveCmd, playCmd, demoCmd)
}

// loadConfig reads the configured file, falling back to defaults when it is
// missing.
func loadConfig() (*config.LoadedConfig, error) {
	path := configPath
	if path == "" {
		path = config.PathFromEnv()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
