package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/roasbeef/actorhub/internal/baselib/actor"
	"github.com/spf13/cobra"
)

var quiescenceCount int

var quiescenceCmd = &cobra.Command{
	Use:   "quiescence",
	Short: "Run the quiescence scenario: a driver hatches N self-exiting children, then exits itself",
	RunE:  runQuiescence,
}

func init() {
	quiescenceCmd.Flags().IntVar(
		&quiescenceCount, "count", 10, "Number of children to hatch",
	)
}

func runQuiescence(cmd *cobra.Command, args []string) error {
	pool := actor.NewPool(numWorkers)

	driver := actor.ActorBody(func(ctx *actor.ActorContext) {
		deaths := 0

		for i := 0; i < quiescenceCount; i++ {
			child := actor.ActorBody(func(cctx *actor.ActorContext) {})

			if _, err := ctx.Hatch(actor.NewIsolated(child)).Unpack(); err != nil {
				fmt.Printf("driver: hatch failed: %v\n", err)
				return
			}

			env := ctx.Recv()
			if _, ok := env.Msg.(actor.Died); ok {
				deaths++
			}
		}

		fmt.Printf("driver: collected %d deaths, exiting\n", deaths)
	})

	if _, err := actor.Hatch(pool, actor.NewIsolated(driver)).Unpack(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	start := time.Now()
	pool.Run(ctx)
	fmt.Printf("run() returned after %s; mailboxes=%d\n", time.Since(start), pool.Stats().Mailboxes)

	return nil
}
