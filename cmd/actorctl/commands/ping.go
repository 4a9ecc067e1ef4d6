package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/roasbeef/actorhub/internal/baselib/actor"
	"github.com/spf13/cobra"
)

type pingMsg struct {
	actor.BaseMessage

	src actor.ActorId
}

type pongMsg struct {
	actor.BaseMessage
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Run the ping scenario: parent hatches a child, pings it, observes Pong then Died",
	RunE:  runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	pool := actor.NewPool(numWorkers)

	child := actor.ActorBody(func(ctx *actor.ActorContext) {
		env := ctx.Recv()
		ping, ok := env.Msg.(pingMsg)
		if !ok {
			return
		}

		err := ctx.Send(ping.src, actor.NewIsolated[actor.Message](pongMsg{}))
		if err != nil {
			fmt.Printf("child: send failed: %v\n", err)
		}
	})

	parent := actor.ActorBody(func(ctx *actor.ActorContext) {
		childID, err := ctx.Hatch(actor.NewIsolated(child)).Unpack()
		if err != nil {
			fmt.Printf("parent: hatch failed: %v\n", err)
			return
		}

		err = ctx.Send(childID, actor.NewIsolated[actor.Message](
			pingMsg{src: ctx.Self()},
		))
		if err != nil {
			fmt.Printf("parent: send failed: %v\n", err)
			return
		}

		reply := ctx.Recv()
		if _, ok := reply.Msg.(pongMsg); ok {
			fmt.Printf("parent: received Pong from %d\n", reply.Src)
		}

		died := ctx.Recv()
		if d, ok := died.Msg.(actor.Died); ok {
			fmt.Printf("parent: received Died{%d}\n", d.ID)
		}
	})

	if _, err := actor.Hatch(pool, actor.NewIsolated(parent)).Unpack(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	pool.Run(ctx)

	return nil
}
