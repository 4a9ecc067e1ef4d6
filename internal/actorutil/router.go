// Package actorutil provides convenience helpers for working with the
// actorhub runtime (internal/baselib/actor) without every caller having
// to hand-roll the same hatch/send/recv bridging code.
package actorutil

import (
	"sync/atomic"

	"github.com/roasbeef/actorhub/internal/baselib/actor"
)

// Router hatches a fixed-size group of sibling actors sharing a body
// factory and distributes sends across them round-robin. It adapts the
// round-robin pool idiom onto actorhub's single Pool/Actor model: where
// a pool of independent request/response actors would keep one ActorRef
// per member, a Router keeps plain ActorIds hatched into the same Pool,
// since actorhub actors communicate by Send/Recv rather than typed
// Ask/Tell references.
type Router struct {
	ids  []actor.ActorId
	next atomic.Uint64
}

// RouterConfig configures a Router. Exactly one of Pool or Parent should
// be nil: hatching from Parent sets the router's members' parent link to
// the hatching actor; hatching from Pool directly makes them top-level
// actors.
type RouterConfig struct {
	Pool    *actor.Pool
	Parent  *actor.ActorContext
	Size    int
	Factory func(idx int) actor.ActorBody
}

// NewRouter hatches cfg.Size actors built by cfg.Factory and returns a
// Router over them.
func NewRouter(cfg RouterConfig) (*Router, error) {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}

	r := &Router{ids: make([]actor.ActorId, cfg.Size)}

	for i := 0; i < cfg.Size; i++ {
		body := cfg.Factory(i)
		handle := actor.NewIsolated(body)

		var (
			id  actor.ActorId
			err error
		)
		if cfg.Parent != nil {
			id, err = cfg.Parent.Hatch(handle).Unpack()
		} else {
			id, err = actor.Hatch(cfg.Pool, handle).Unpack()
		}
		if err != nil {
			return nil, err
		}

		r.ids[i] = id
	}

	return r, nil
}

// Next returns the next destination in round-robin order.
func (r *Router) Next() actor.ActorId {
	idx := r.next.Add(1) % uint64(len(r.ids))
	return r.ids[idx]
}

// Send delivers payload to the next member in round-robin order.
func (r *Router) Send(p *actor.Pool, payload *actor.Isolated[actor.Message]) error {
	return actor.Send(p, r.Next(), payload)
}

// Broadcast sends a freshly built message to every member of the router.
// build is called once per member so each gets its own Isolated handle.
func (r *Router) Broadcast(p *actor.Pool, build func() actor.Message) error {
	for _, id := range r.ids {
		err := actor.Send(p, id, actor.NewIsolated(build()))
		if err != nil {
			return err
		}
	}

	return nil
}

// Size returns the number of members in the router.
func (r *Router) Size() int {
	return len(r.ids)
}

// Ids returns a copy of the router's member ids.
func (r *Router) Ids() []actor.ActorId {
	ids := make([]actor.ActorId, len(r.ids))
	copy(ids, r.ids)

	return ids
}
