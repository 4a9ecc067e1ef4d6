package actor

import "sync"

// mailbox is a FIFO queue of Envelopes addressed to one actor, guarded by
// its own lock so that the hub's index lock never has to be held across
// an enqueue or dequeue.
type mailbox struct {
	mu    sync.Mutex
	queue []Envelope
}

func newMailbox() *mailbox {
	return &mailbox{}
}

// push appends e to the tail and reports the queue depth after the
// append, for mailbox-depth telemetry.
func (m *mailbox) push(e Envelope) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queue = append(m.queue, e)

	return len(m.queue)
}

// tryPop pops the head Envelope, if any.
func (m *mailbox) tryPop() (Envelope, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.popLocked()
}

func (m *mailbox) popLocked() (Envelope, bool) {
	if len(m.queue) == 0 {
		return Envelope{}, false
	}

	e := m.queue[0]
	m.queue[0] = Envelope{}
	m.queue = m.queue[1:]

	return e, true
}

// tryPopOrPark pops the head Envelope if one is queued; otherwise it
// inserts a into sched's IdleSet before releasing the mailbox lock. The
// empty-check and the IdleSet insertion happen as one critical section
// under m.mu, the same lock pushAndWake holds across its append and
// wake attempt: whichever of the two calls runs first for a given
// actor, the other is guaranteed to observe its effect, so a send that
// lands between an empty check and a park can never go unwoken.
func (m *mailbox) tryPopOrPark(sched *scheduler, a *Actor) (Envelope, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.popLocked(); ok {
		return e, true
	}

	sched.parkIdle(a)

	return Envelope{}, false
}

// pushAndWake appends e to the tail and, still holding the mailbox
// lock, asks sched to move dst out of the IdleSet if it is currently
// parked there. See tryPopOrPark for why this must share the same lock.
func (m *mailbox) pushAndWake(e Envelope, sched *scheduler, dst ActorId) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queue = append(m.queue, e)
	depth := len(m.queue)

	sched.wake(dst)

	return depth
}

func (m *mailbox) isEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.queue) == 0
}

func (m *mailbox) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.queue)
}

// drain removes and returns every queued Envelope, for use when a
// mailbox is being torn down.
func (m *mailbox) drain() []Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()

	drained := m.queue
	m.queue = nil

	return drained
}
