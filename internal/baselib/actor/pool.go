package actor

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// defaultPollInterval is how often Run polls the mailhub for
// quiescence, within the recommended 10-50ms band.
const defaultPollInterval = 20 * time.Millisecond

// poolConfig holds Pool construction options, following a plain
// struct-plus-functional-options shape.
type poolConfig struct {
	pollInterval time.Duration
	eventActorID ActorId
	eventWake    io.Writer
}

func defaultPoolConfig() *poolConfig {
	return &poolConfig{
		pollInterval: defaultPollInterval,
		eventActorID: SystemActorId,
	}
}

// PoolOption configures a Pool at construction time.
type PoolOption func(*poolConfig)

// WithPollInterval overrides the supervision loop's polling cadence.
func WithPollInterval(d time.Duration) PoolOption {
	return func(c *poolConfig) {
		c.pollInterval = d
	}
}

// WithEventWake designates actorID as the event-queue actor: every send
// to it also writes one byte to w, best-effort, as the
// event_wake_fd/event_queue_actor_id pairing.
func WithEventWake(actorID ActorId, w io.Writer) PoolOption {
	return func(c *poolConfig) {
		c.eventActorID = actorID
		c.eventWake = w
	}
}

// Pool owns the workers, hub, scheduler structures, stop flag, and id
// counter for one runtime instance. It is created by the user and
// destroyed when Run returns.
type Pool struct {
	// InstanceID disambiguates telemetry and log lines when more than
	// one Pool runs in the same process.
	InstanceID uuid.UUID

	hub   *MailHub
	sched *scheduler

	idCounter atomic.Int64

	numWorkers int
	wg         sync.WaitGroup

	pollInterval time.Duration
	eventActorID ActorId
	eventWake    io.Writer
}

// NewPool constructs a pool and spawns numWorkers worker goroutines.
// Workers hold a non-owning reference to the pool; the pool must outlive
// every worker, which Run guarantees by joining them before returning.
func NewPool(numWorkers int, opts ...PoolOption) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}

	cfg := defaultPoolConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Pool{
		InstanceID:   uuid.New(),
		hub:          NewMailHub(),
		sched:        newScheduler(),
		numWorkers:   numWorkers,
		pollInterval: cfg.pollInterval,
		eventActorID: cfg.eventActorID,
		eventWake:    cfg.eventWake,
	}

	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		w := &worker{id: i, pool: p}
		go w.run()
	}

	log.InfoS(
		context.Background(), "pool started",
		"instance_id", p.InstanceID, "workers", numWorkers,
	)

	return p
}

// Run is the supervision loop: it polls the mailhub at pollInterval and,
// once it observes zero registered mailboxes, stops the scheduler and
// joins every worker before returning. It also returns early, performing
// the same shutdown, if ctx is cancelled. Run cannot otherwise fail.
func (p *Pool) Run(ctx context.Context) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n := p.hub.Len()

			log.TraceS(ctx, "supervision tick", "mailboxes", n)

			if n == 0 {
				p.shutdown()
				return
			}

		case <-ctx.Done():
			p.shutdown()
			return
		}
	}
}

func (p *Pool) shutdown() {
	// Any actor still parked in the IdleSet at this point would
	// otherwise leak; drop it explicitly.
	p.sched.dropIdle()
	p.sched.stop()
	p.wg.Wait()

	log.InfoS(
		context.Background(), "pool stopped", "instance_id", p.InstanceID,
	)
}

// Stats is a point-in-time snapshot of pool occupancy.
type Stats struct {
	Mailboxes int
	Runnable  int
	Idle      int
	Workers   int
}

// Stats reports the current mailbox, runnable, idle, and worker counts.
func (p *Pool) Stats() Stats {
	runnable, idle := p.sched.snapshot()

	return Stats{
		Mailboxes: p.hub.Len(),
		Runnable:  runnable,
		Idle:      idle,
		Workers:   p.numWorkers,
	}
}
