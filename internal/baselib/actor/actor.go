package actor

import (
	"context"
	"sync"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ActorBody is the user-supplied continuation body. It runs to
// completion (or forever, suspending at Recv/Jield/Backoff) inside its
// own goroutine, driven one resume slice at a time by a worker.
type ActorBody func(ctx *ActorContext)

// sliceOutcome is what a resume slice reports back to the worker that
// drove it. It is the Go realization of a
// "{resume() -> next_actor_or_null, is_finished}" contract: rather than
// returning a nullable Actor value, the body reports directly which of
// the three worker-loop classifications applies.
type sliceOutcome int

const (
	// outcomeParked means the body parked itself into the IdleSet
	// (via recv_yield or jield) before yielding the slice. The
	// scheduler structures already own the actor; the worker does
	// nothing further.
	outcomeParked sliceOutcome = iota

	// outcomeYielded means the body voluntarily yielded (via backoff)
	// without parking. The worker re-enqueues the actor at the
	// WorkQueue tail.
	outcomeYielded

	// outcomeFinished means the body returned; the actor has
	// terminated. The worker unregisters its mailbox and notifies its
	// parent.
	outcomeFinished
)

// Actor is the identity, continuation, and scheduling handle for one
// hatched actor. Go has no stackless coroutines, so a resumable
// continuation with resume/is_finished semantics is realized as a
// single goroutine (the body) driven by a worker through a pair of
// unbuffered handshake channels: the worker sends on dispatchCh to grant
// one resume slice, and blocks reading yieldCh for the outcome. The body
// goroutine is blocked on one of these channels at every instant except
// while it is actively executing user code inside the slice, which
// gives the single-owner invariant without a stack-copying runtime.
type Actor struct {
	id       ActorId
	parentID ActorId
	pool     *Pool

	body ActorBody
	ctx  *ActorContext

	dispatchCh chan struct{}
	yieldCh    chan sliceOutcome

	launchOnce sync.Once
}

func newActor(id, parentID ActorId, pool *Pool, body ActorBody) *Actor {
	a := &Actor{
		id:         id,
		parentID:   parentID,
		pool:       pool,
		body:       body,
		dispatchCh: make(chan struct{}),
		yieldCh:    make(chan sliceOutcome),
	}
	a.ctx = &ActorContext{actor: a}

	return a
}

// launch starts the body goroutine. It blocks on the first dispatch
// before running any user code, so the first call to resume is what
// actually starts execution.
func (a *Actor) launch() {
	go func() {
		<-a.dispatchCh
		a.body(a.ctx)
		a.yieldCh <- outcomeFinished
	}()
}

// resume grants the actor one resume slice and blocks until it
// suspends or finishes, returning the outcome for the worker to
// classify.
func (a *Actor) resume() sliceOutcome {
	a.launchOnce.Do(a.launch)

	a.dispatchCh <- struct{}{}
	return <-a.yieldCh
}

// ActorContext is the handle an ActorBody uses to interact with the
// runtime: Recv, Send, Self, Backoff, Jield, and Hatch of children. It is
// only ever touched by the single goroutine running the actor's body, so
// it needs no internal synchronization of its own.
type ActorContext struct {
	actor *Actor
}

// Self returns the current actor's id.
func (c *ActorContext) Self() ActorId {
	return c.actor.id
}

// Recv is the cooperative compound operation: return the next message,
// parking the actor until one exists. The empty-check against the
// mailbox and the IdleSet insertion happen as one critical section
// under the mailbox's own lock (mailhub.popOrPark / mailbox.tryPopOrPark),
// so a concurrent send can never land in the gap between them and go
// unobserved — the lost-wakeup window a split tryPop-then-park would
// otherwise open. It loops the park step until a message is actually
// observed, tolerating spurious wakes.
func (c *ActorContext) Recv() Envelope {
	a := c.actor

	for {
		e, ok := a.pool.hub.popOrPark(a.id, a.pool.sched, a)
		if ok {
			return e
		}

		log.TraceS(context.Background(), "actor parked", "actor_id", a.id)

		a.yieldCh <- outcomeParked
		<-a.dispatchCh
	}
}

// Jield parks the actor unconditionally. It is intended only for callers
// that have already arranged an external wake path (Recv arranges its
// own by re-checking the mailbox in a loop; direct Jield callers must
// arrange a Send to themselves or equivalent).
func (c *ActorContext) Jield() {
	a := c.actor

	a.pool.sched.parkIdle(a)

	log.TraceS(context.Background(), "actor parked", "actor_id", a.id)

	a.yieldCh <- outcomeParked
	<-a.dispatchCh
}

// Backoff re-enqueues the actor at the WorkQueue tail, surrendering the
// worker to another actor for one slice. Used for voluntary fairness.
func (c *ActorContext) Backoff() {
	a := c.actor

	a.yieldCh <- outcomeYielded
	<-a.dispatchCh
}

// Send is the isolated send operation, callable from within an actor
// body; the sender is stamped as the current actor.
func (c *ActorContext) Send(dst ActorId, payload *Isolated[Message]) error {
	return send(c.actor.pool, c.actor.id, dst, payload)
}

// Hatch spawns a child actor with the current actor as parent.
func (c *ActorContext) Hatch(body *Isolated[ActorBody]) fn.Result[ActorId] {
	return hatch(c.actor.pool, c.actor.id, body)
}
