package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/roasbeef/actorhub/internal/baselib/actor"
	"github.com/spf13/cobra"
)

type helloMsg struct {
	actor.BaseMessage

	n int
}

var fanoutCount int

var fanoutCmd = &cobra.Command{
	Use:   "fanout",
	Short: "Run the fan-out scenario: a parent hatches N children that each say hello and exit",
	RunE:  runFanout,
}

func init() {
	fanoutCmd.Flags().IntVar(
		&fanoutCount, "count", 100, "Number of children to hatch",
	)
}

func runFanout(cmd *cobra.Command, args []string) error {
	pool := actor.NewPool(numWorkers)

	parent := actor.ActorBody(func(ctx *actor.ActorContext) {
		self := ctx.Self()

		for i := 0; i < fanoutCount; i++ {
			i := i
			child := actor.ActorBody(func(cctx *actor.ActorContext) {
				err := cctx.Send(
					self, actor.NewIsolated[actor.Message](helloMsg{n: i}),
				)
				if err != nil {
					fmt.Printf("child %d: send failed: %v\n", i, err)
				}
			})

			if _, err := ctx.Hatch(actor.NewIsolated(child)).Unpack(); err != nil {
				fmt.Printf("parent: hatch %d failed: %v\n", i, err)
				return
			}
		}

		hellos, deaths := 0, 0
		for hellos < fanoutCount || deaths < fanoutCount {
			env := ctx.Recv()
			switch env.Msg.(type) {
			case helloMsg:
				hellos++
			case actor.Died:
				deaths++
			}
		}

		fmt.Printf("parent: saw %d hellos and %d deaths\n", hellos, deaths)
	})

	if _, err := actor.Hatch(pool, actor.NewIsolated(parent)).Unpack(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	pool.Run(ctx)

	return nil
}
