package main

import (
	"math/rand"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/tui"

	"github.com/spf13/cobra"
)

var seed int64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return tui.Run(cfg.Rules, rand.New(rand.NewSource(seed)))
	},
}

func init() {
	playCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for dealing blocks (0 picks one)")
}
