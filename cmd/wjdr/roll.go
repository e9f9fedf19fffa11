package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/oldworld/wjdr-api/internal/orchestrators/generation"
)

var rollSeed int64

var rollCmd = &cobra.Command{
	Use:   "roll <expression>",
	Short: "Parse and roll a dice expression",
	Long:  `Roll a dice expression such as "2d10+20" or "1d6+2d4-3" and print the total.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().Int64Var(&rollSeed, "seed", 0, "random seed (0 uses the current time)")
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runRoll(cmd *cobra.Command, args []string) error {
	orchestrator, err := generation.New(&generation.Config{Rand: newRand(rollSeed)})
	if err != nil {
		return err
	}

	output, err := orchestrator.RollDice(cmd.Context(), &generation.RollDiceInput{Expression: args[0]})
	if err != nil {
		return err
	}

	fmt.Printf("%s = %d\n", output.Expression, output.Total)
	return nil
}
