package actor

import (
	"testing"

	"pgregory.net/rapid"
)

// TestMailboxFIFOInvariant checks invariant 3 from the testable
// properties: for any pair of sends from the same source to the same
// destination, popping the mailbox yields them in the order they were
// pushed, for arbitrary push sequences.
func TestMailboxFIFOInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		box := newMailbox()

		n := rapid.IntRange(0, 50).Draw(t, "n")

		pushed := make([]int, n)
		for i := 0; i < n; i++ {
			v := rapid.Int().Draw(t, "value")
			pushed[i] = v
			box.push(Envelope{Msg: testMessage{value: v}})
		}

		for i := 0; i < n; i++ {
			e, ok := box.tryPop()
			if !ok {
				t.Fatalf("mailbox drained early at index %d", i)
			}
			if e.Msg.(testMessage).value != pushed[i] {
				t.Fatalf(
					"FIFO violated: want %d at index %d, got %d",
					pushed[i], i, e.Msg.(testMessage).value,
				)
			}
		}

		if !box.isEmpty() {
			t.Fatal("mailbox should be empty after popping every pushed value")
		}
	})
}

// TestSchedulerNoLostWakeup checks invariant 4: for a destination parked
// in the IdleSet, waking it always moves exactly that actor onto the
// WorkQueue, regardless of how many unrelated actors are parked
// alongside it.
func TestSchedulerNoLostWakeup(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newScheduler()

		numIdle := rapid.IntRange(1, 20).Draw(t, "numIdle")
		target := rapid.IntRange(0, numIdle-1).Draw(t, "target")

		var actors []*Actor
		for i := 0; i < numIdle; i++ {
			a := &Actor{id: ActorId(i)}
			actors = append(actors, a)
			s.parkIdle(a)
		}

		woke := s.wake(actors[target].id)
		if !woke {
			t.Fatal("wake on a parked id must report true")
		}

		runnable, idle := s.snapshot()
		if runnable != 1 {
			t.Fatalf("want exactly one runnable actor, got %d", runnable)
		}
		if idle != numIdle-1 {
			t.Fatalf("want %d still idle, got %d", numIdle-1, idle)
		}

		got, ok := s.popBlocking()
		if !ok || got != actors[target] {
			t.Fatal("the woken actor must be the one popped")
		}
	})
}
