package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// These tests implement the concrete scenarios from the runtime's
// testable-properties section directly against a real Pool.

type pingMsg struct {
	BaseMessage

	Src ActorId
}

type pongMsg struct {
	BaseMessage
}

type helloMsg struct {
	BaseMessage

	N int
}

func runPool(t *testing.T, p *Pool, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	p.Run(ctx)
}

// S1 — Ping: parent hatches a child that replies Pong then exits; parent
// expects Pong then Died.
func TestScenarioPing(t *testing.T) {
	t.Parallel()

	p := NewPool(2)

	type outcome struct {
		childID ActorId
		gotPong bool
		diedID  ActorId
		gotDied bool
	}
	results := make(chan outcome, 1)

	childBody := func(ctx *ActorContext) {
		env := ctx.Recv()
		ping := env.Msg.(pingMsg)
		err := ctx.Send(ping.Src, NewIsolated[Message](pongMsg{}))
		require.NoError(t, err)
	}

	parentBody := func(ctx *ActorContext) {
		childID, err := ctx.Hatch(NewIsolated(ActorBody(childBody))).Unpack()
		require.NoError(t, err)

		err = ctx.Send(childID, NewIsolated[Message](pingMsg{Src: ctx.Self()}))
		require.NoError(t, err)

		var out outcome
		out.childID = childID

		first := ctx.Recv()
		if _, ok := first.Msg.(pongMsg); ok {
			out.gotPong = true
		}

		second := ctx.Recv()
		if died, ok := second.Msg.(Died); ok {
			out.gotDied = true
			out.diedID = died.ID
		}

		results <- out
	}

	_, err := Hatch(p, NewIsolated(ActorBody(parentBody))).Unpack()
	require.NoError(t, err)

	runPool(t, p, 2*time.Second)

	select {
	case out := <-results:
		require.True(t, out.gotPong)
		require.True(t, out.gotDied)
		require.Equal(t, out.childID, out.diedID)
	default:
		t.Fatal("parent actor never completed recv sequence")
	}
}

// S2 — Fan-out: parent hatches 100 children, each sends Hello{i} and
// exits; parent does 200 recvs and must see 100 distinct Hello ids and
// 100 distinct Died ids.
func TestScenarioFanOut(t *testing.T) {
	t.Parallel()

	const n = 100

	p := NewPool(4)

	type result struct {
		hellos map[int]bool
		deaths map[ActorId]bool
	}
	results := make(chan result, 1)

	parentBody := func(ctx *ActorContext) {
		self := ctx.Self()

		for i := 0; i < n; i++ {
			i := i
			body := ActorBody(func(cctx *ActorContext) {
				err := cctx.Send(self, NewIsolated[Message](helloMsg{N: i}))
				require.NoError(t, err)
			})

			_, err := ctx.Hatch(NewIsolated(body)).Unpack()
			require.NoError(t, err)
		}

		res := result{
			hellos: make(map[int]bool),
			deaths: make(map[ActorId]bool),
		}

		for i := 0; i < 2*n; i++ {
			env := ctx.Recv()
			switch msg := env.Msg.(type) {
			case helloMsg:
				res.hellos[msg.N] = true
			case Died:
				res.deaths[msg.ID] = true
			}
		}

		results <- res
	}

	_, err := Hatch(p, NewIsolated(ActorBody(parentBody))).Unpack()
	require.NoError(t, err)

	runPool(t, p, 5*time.Second)

	select {
	case res := <-results:
		require.Len(t, res.hellos, n)
		require.Len(t, res.deaths, n)
		for i := 0; i < n; i++ {
			require.True(t, res.hellos[i], "missing hello %d", i)
		}
	default:
		t.Fatal("parent actor never completed recv sequence")
	}
}

// S3 — Park/wake race: A parks on an empty mailbox; B sends to A
// concurrently. A must resume and observe the message regardless of
// interleaving.
func TestScenarioParkWakeRace(t *testing.T) {
	t.Parallel()

	for i := 0; i < 20; i++ {
		p := NewPool(2)

		received := make(chan bool, 1)

		aBody := func(ctx *ActorContext) {
			env := ctx.Recv()
			_, ok := env.Msg.(pingMsg)
			received <- ok
		}

		aID, err := Hatch(p, NewIsolated(ActorBody(aBody))).Unpack()
		require.NoError(t, err)

		bBody := func(ctx *ActorContext) {
			err := ctx.Send(aID, NewIsolated[Message](pingMsg{Src: ctx.Self()}))
			require.NoError(t, err)
		}

		_, err = Hatch(p, NewIsolated(ActorBody(bBody))).Unpack()
		require.NoError(t, err)

		runPool(t, p, 2*time.Second)

		select {
		case ok := <-received:
			require.True(t, ok)
		default:
			t.Fatal("actor A never received the message")
		}
	}
}

// S4 — Backoff fairness: two actors each loop Backoff N times
// incrementing their own counter; with 2 workers both counters must
// reach N without either starving.
func TestScenarioBackoffFairness(t *testing.T) {
	t.Parallel()

	const n = 1000

	p := NewPool(2)

	counters := make(chan int, 2)

	loopBody := func(ctx *ActorContext) {
		count := 0
		for i := 0; i < n; i++ {
			count++
			ctx.Backoff()
		}
		counters <- count
	}

	_, err := Hatch(p, NewIsolated(ActorBody(loopBody))).Unpack()
	require.NoError(t, err)
	_, err = Hatch(p, NewIsolated(ActorBody(loopBody))).Unpack()
	require.NoError(t, err)

	runPool(t, p, 10*time.Second)

	require.Len(t, counters, 2)
	c1 := <-counters
	c2 := <-counters
	require.Equal(t, n, c1)
	require.Equal(t, n, c2)
}

// S5 — Orphan send: B exits without draining its mailbox; a later send
// to B from A must return normally, not as an error.
func TestScenarioOrphanSend(t *testing.T) {
	t.Parallel()

	p := NewPool(2)

	settled := make(chan struct{}, 1)

	bBody := func(ctx *ActorContext) {
		// Exits immediately without ever draining its mailbox.
	}

	bID, err := Hatch(p, NewIsolated(ActorBody(bBody))).Unpack()
	require.NoError(t, err)

	aBody := func(ctx *ActorContext) {
		// Give B a chance to terminate and be unregistered.
		for i := 0; i < 100; i++ {
			ctx.Backoff()
		}

		err := ctx.Send(bID, NewIsolated[Message](pingMsg{Src: ctx.Self()}))
		require.NoError(t, err, "send to a dead actor must not be an error")

		settled <- struct{}{}
	}

	_, err = Hatch(p, NewIsolated(ActorBody(aBody))).Unpack()
	require.NoError(t, err)

	runPool(t, p, 2*time.Second)

	select {
	case <-settled:
	default:
		t.Fatal("actor A never completed its send to the dead actor B")
	}
}

// S6 — Quiescence: a single actor hatches 10 children that each
// immediately exit, collects 10 Died messages, then exits itself; Run
// must return with every worker joined.
func TestScenarioQuiescence(t *testing.T) {
	t.Parallel()

	const n = 10

	p := NewPool(3)

	done := make(chan int, 1)

	driverBody := func(ctx *ActorContext) {
		deaths := 0

		for i := 0; i < n; i++ {
			childBody := ActorBody(func(cctx *ActorContext) {})

			_, err := ctx.Hatch(NewIsolated(childBody)).Unpack()
			require.NoError(t, err)

			env := ctx.Recv()
			if _, ok := env.Msg.(Died); ok {
				deaths++
			}
		}

		done <- deaths
	}

	_, err := Hatch(p, NewIsolated(ActorBody(driverBody))).Unpack()
	require.NoError(t, err)

	runPool(t, p, 5*time.Second)

	require.Equal(t, 0, p.Stats().Mailboxes)

	select {
	case deaths := <-done:
		require.Equal(t, n, deaths)
	default:
		t.Fatal("driver actor never completed")
	}
}
