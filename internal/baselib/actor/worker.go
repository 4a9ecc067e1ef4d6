package actor

import "context"

// worker is one of the Pool's N OS-thread-backed goroutines. Its loop
// dequeues one runnable actor, resumes it once, and classifies the
// outcome.
type worker struct {
	id   int
	pool *Pool
}

func (w *worker) run() {
	defer w.pool.wg.Done()

	for {
		log.TraceS(context.Background(), "worker waiting", "worker_id", w.id)

		a, ok := w.pool.sched.popBlocking()
		if !ok {
			return
		}

		log.TraceS(
			context.Background(), "worker resuming actor",
			"worker_id", w.id, "actor_id", a.id,
		)

		switch a.resume() {
		case outcomeParked:
			// The body already moved itself into the IdleSet;
			// the scheduler structures own it now.

		case outcomeYielded:
			w.pool.sched.pushRunnable(a)

		case outcomeFinished:
			w.finish(a)
		}
	}
}

// finish handles an actor whose continuation has completed: its mailbox
// is torn down and, unless it was a top-level hatch, its parent is sent
// a Died message.
func (w *worker) finish(a *Actor) {
	w.pool.hub.drain(a.id)

	if err := w.pool.hub.unregister(a.id); err != nil {
		log.ErrorS(
			context.Background(), "actor finished with no mailbox to tear down",
			"actor_id", a.id, "err", err,
		)
	}

	log.DebugS(
		context.Background(), "actor terminated", "actor_id", a.id,
		"parent_id", a.parentID,
	)

	if a.parentID == SystemActorId {
		return
	}

	died := Envelope{Src: SystemActorId, Msg: Died{ID: a.id}}

	w.pool.hub.deliver(a.parentID, died, w.pool.sched)
}
