package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/roasbeef/actorhub/internal/baselib/actor"
	"github.com/spf13/cobra"
)

var backoffN int

var backoffCmd = &cobra.Command{
	Use:   "backoff",
	Short: "Run the backoff-fairness scenario: two actors loop Backoff N times incrementing their own counter",
	RunE:  runBackoff,
}

func init() {
	backoffCmd.Flags().IntVar(
		&backoffN, "n", 1000, "Number of backoff iterations per actor",
	)
}

func runBackoff(cmd *cobra.Command, args []string) error {
	pool := actor.NewPool(2)

	results := make(chan int, 2)

	loop := actor.ActorBody(func(ctx *actor.ActorContext) {
		count := 0
		for i := 0; i < backoffN; i++ {
			count++
			ctx.Backoff()
		}
		results <- count
	})

	for i := 0; i < 2; i++ {
		if _, err := actor.Hatch(pool, actor.NewIsolated(loop)).Unpack(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	pool.Run(ctx)

	close(results)
	for count := range results {
		fmt.Printf("actor reached counter=%d\n", count)
	}

	return nil
}
