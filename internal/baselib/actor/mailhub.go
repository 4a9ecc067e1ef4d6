package actor

import "sync"

// MailHub is the index mapping ActorIds to mailboxes, guarded by its own
// lock. Presence in the hub is the authoritative liveness signal used by
// the pool's supervision loop: a mailbox exists iff its owning actor has
// been hatched and has not yet terminated.
//
// The index lock is taken only long enough to locate (or fail to locate)
// a mailbox; the mailbox's own lock then protects the enqueue/dequeue, so
// no send ever blocks on a hub-wide lock while a message is being copied.
type MailHub struct {
	mu    sync.RWMutex
	boxes map[ActorId]*mailbox
}

// NewMailHub constructs an empty hub.
func NewMailHub() *MailHub {
	return &MailHub{
		boxes: make(map[ActorId]*mailbox),
	}
}

// register creates an empty mailbox for id. Fails with
// ErrAlreadyRegistered if id already has one.
func (h *MailHub) register(id ActorId) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.boxes[id]; ok {
		return ErrAlreadyRegistered
	}

	h.boxes[id] = newMailbox()

	return nil
}

// unregister removes and drops id's mailbox. Only the worker that
// observed the actor's termination should call this. It reports
// ErrNotRegistered if id had no mailbox, which signals a worker trying
// to tear down an actor twice.
func (h *MailHub) unregister(id ActorId) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.boxes[id]; !ok {
		return ErrNotRegistered
	}

	delete(h.boxes, id)

	return nil
}

// lookup locates dst's mailbox under the index lock only, then releases
// it before the caller touches the mailbox itself.
func (h *MailHub) lookup(dst ActorId) (*mailbox, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	box, ok := h.boxes[dst]

	return box, ok
}

// deliver atomically appends msg to dst's mailbox and wakes dst if it is
// currently parked in sched's IdleSet, reporting whether dst had a
// registered mailbox. A false return is not an error: the destination
// is dead and the message is silently dropped.
func (h *MailHub) deliver(dst ActorId, e Envelope, sched *scheduler) (delivered bool, depth int) {
	box, ok := h.lookup(dst)
	if !ok {
		return false, 0
	}

	return true, box.pushAndWake(e, sched, dst)
}

// tryPop is a non-blocking pop of dst's head message.
func (h *MailHub) tryPop(dst ActorId) (Envelope, bool) {
	box, ok := h.lookup(dst)
	if !ok {
		return Envelope{}, false
	}

	return box.tryPop()
}

// popOrPark pops dst's head message if one is queued; otherwise it parks
// a into sched's IdleSet before the calling actor surrenders its
// worker, atomically with the empty check (see mailbox.tryPopOrPark).
// dst must be a's own id: this is the receive-side half of the
// deliver/popOrPark pair that rules out a lost wakeup between a
// concurrent send and this actor parking.
func (h *MailHub) popOrPark(dst ActorId, sched *scheduler, a *Actor) (Envelope, bool) {
	box, ok := h.lookup(dst)
	if !ok {
		return Envelope{}, false
	}

	return box.tryPopOrPark(sched, a)
}

// isEmpty reports whether dst's mailbox has no queued messages. A dst
// with no mailbox is considered empty.
func (h *MailHub) isEmpty(dst ActorId) bool {
	box, ok := h.lookup(dst)
	if !ok {
		return true
	}

	return box.isEmpty()
}

// drain removes and returns all remaining Envelopes for dst, for use
// when tearing down a terminated actor's mailbox.
func (h *MailHub) drain(dst ActorId) []Envelope {
	box, ok := h.lookup(dst)
	if !ok {
		return nil
	}

	return box.drain()
}

// Len reports the number of registered mailboxes in the hub. The pool's
// supervision loop polls this to detect quiescence.
func (h *MailHub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.boxes)
}
