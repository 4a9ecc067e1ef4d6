package actor

import "sync"

// scheduler holds the WorkQueue (a FIFO deque of runnable actors) and the
// IdleSet (actors parked awaiting mail), both guarded by one work_lock
// paired with one work_cond. An ActorId present in the IdleSet is never
// present in the WorkQueue, and vice versa; together with the
// continuation handshake in actor.go this gives "an actor appears in at
// most one of {WorkQueue, IdleSet, in-flight}" at any instant.
type scheduler struct {
	mu       sync.Mutex
	cond     *sync.Cond
	runnable []*Actor
	idle     map[ActorId]*Actor
	stopping bool
}

func newScheduler() *scheduler {
	s := &scheduler{
		idle: make(map[ActorId]*Actor),
	}
	s.cond = sync.NewCond(&s.mu)

	return s
}

// pushRunnable enqueues a at the WorkQueue tail and signals one waiter.
func (s *scheduler) pushRunnable(a *Actor) {
	s.mu.Lock()
	s.runnable = append(s.runnable, a)
	s.mu.Unlock()

	s.cond.Signal()
}

// parkIdle moves a into the IdleSet. Called by the actor's own body
// goroutine when it suspends via recv_yield or jield.
func (s *scheduler) parkIdle(a *Actor) {
	s.mu.Lock()
	s.idle[a.id] = a
	s.mu.Unlock()
}

// wake moves id out of the IdleSet and onto the WorkQueue tail if it is
// currently parked, signalling one waiter. Reports whether id was
// parked. This is the probe in step 4 of send: mailbox.pushAndWake calls
// it after appending, while still holding the mailbox lock, so
// the parked receiver either is observed here and woken, or has already
// begun a resume slice and will re-check its mailbox on the next
// recv_yield — no lost-wakeup window.
func (s *scheduler) wake(id ActorId) bool {
	s.mu.Lock()
	a, ok := s.idle[id]
	if ok {
		delete(s.idle, id)
		s.runnable = append(s.runnable, a)
	}
	s.mu.Unlock()

	if ok {
		s.cond.Signal()
	}

	return ok
}

// popBlocking waits for a runnable actor, or reports false once stopping
// has been set and the WorkQueue has drained.
func (s *scheduler) popBlocking() (*Actor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.runnable) == 0 && !s.stopping {
		s.cond.Wait()
	}

	if len(s.runnable) == 0 {
		return nil, false
	}

	a := s.runnable[0]
	s.runnable[0] = nil
	s.runnable = s.runnable[1:]

	return a, true
}

// stop sets the stop flag and broadcasts so every worker blocked in
// popBlocking wakes and observes it.
func (s *scheduler) stop() {
	s.mu.Lock()
	s.stopping = true
	s.mu.Unlock()

	s.cond.Broadcast()
}

// snapshot reports the current runnable and idle counts, for Pool.Stats.
func (s *scheduler) snapshot() (runnable, idle int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.runnable), len(s.idle)
}

// dropIdle clears the IdleSet, discarding any actors still parked.
// Called on pool shutdown to avoid leaking actors still blocked on a
// message that will never arrive.
func (s *scheduler) dropIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.idle = make(map[ActorId]*Actor)
}
