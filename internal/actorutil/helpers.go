package actorutil

import (
	"context"
	"sync"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/roasbeef/actorhub/internal/baselib/actor"
)

// AskAwait hatches a short-lived actor that sends a request built by
// build (given its own id to reply to) and blocks until exactly one
// reply arrives, or ctx is done. It is the ask/await convenience the
// runtime's bare Send/Recv primitives don't provide on their own: a
// request/response exchange from code that isn't itself an actor.
func AskAwait(
	ctx context.Context,
	p *actor.Pool,
	dst actor.ActorId,
	build func(replyTo actor.ActorId) actor.Message,
) (actor.Envelope, error) {

	replyCh := make(chan actor.Envelope, 1)

	asker := actor.ActorBody(func(actx *actor.ActorContext) {
		msg := build(actx.Self())

		err := actx.Send(dst, actor.NewIsolated(msg))
		if err != nil {
			return
		}

		replyCh <- actx.Recv()
	})

	if _, err := actor.Hatch(p, actor.NewIsolated(asker)).Unpack(); err != nil {
		return actor.Envelope{}, err
	}

	select {
	case env := <-replyCh:
		return env, nil
	case <-ctx.Done():
		return actor.Envelope{}, ctx.Err()
	}
}

// TellAll sends a freshly built, fire-and-forget message to every
// destination in dsts.
func TellAll(p *actor.Pool, dsts []actor.ActorId, build func() actor.Message) {
	for _, dst := range dsts {
		_ = actor.Send(p, dst, actor.NewIsolated(build()))
	}
}

// ParallelAsk runs AskAwait against every destination in dsts
// concurrently and returns one Result per destination, in the same
// order.
func ParallelAsk(
	ctx context.Context,
	p *actor.Pool,
	dsts []actor.ActorId,
	build func(replyTo actor.ActorId) actor.Message,
) []fn.Result[actor.Envelope] {

	results := make([]fn.Result[actor.Envelope], len(dsts))

	var wg sync.WaitGroup
	wg.Add(len(dsts))

	for i, dst := range dsts {
		go func(i int, dst actor.ActorId) {
			defer wg.Done()

			env, err := AskAwait(ctx, p, dst, build)
			if err != nil {
				results[i] = fn.Err[actor.Envelope](err)
				return
			}

			results[i] = fn.Ok(env)
		}(i, dst)
	}

	wg.Wait()

	return results
}
