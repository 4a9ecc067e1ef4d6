package actor

import (
	"context"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Hatch spawns a top-level actor in p with no parent. Its Died message,
// when it terminates, is never sent — parent_id 0 is reserved precisely
// so the top-level hatch path never attempts that delivery.
func Hatch(p *Pool, body *Isolated[ActorBody]) fn.Result[ActorId] {
	return hatch(p, SystemActorId, body)
}

func hatch(p *Pool, parentID ActorId, handle *Isolated[ActorBody]) fn.Result[ActorId] {
	body, err := handle.Take()
	if err != nil {
		return fn.Err[ActorId](err)
	}

	id := ActorId(p.idCounter.Add(1))

	a := newActor(id, parentID, p, body)

	if err := p.hub.register(id); err != nil {
		return fn.Err[ActorId](err)
	}

	log.DebugS(
		context.Background(), "actor hatched", "actor_id", id,
		"parent_id", parentID,
	)

	p.sched.pushRunnable(a)

	return fn.Ok(id)
}

// Send delivers msg to dst from the system source (outside any actor).
// Isolation is taken from payload, which must not have been used by a
// prior Send or Hatch.
func Send(p *Pool, dst ActorId, payload *Isolated[Message]) error {
	return send(p, SystemActorId, dst, payload)
}

func send(p *Pool, src, dst ActorId, payload *Isolated[Message]) error {
	msg, err := payload.Take()
	if err != nil {
		return err
	}

	delivered, depth := p.hub.deliver(dst, Envelope{Src: src, Msg: msg}, p.sched)
	if delivered {
		log.TraceS(
			context.Background(), "message enqueued", "src", src,
			"dst", dst, "mailbox_depth", depth,
		)
	} else {
		log.DebugS(
			context.Background(), "message dropped, no mailbox",
			"src", src, "dst", dst,
		)
	}

	if p.eventActorID != SystemActorId && dst == p.eventActorID {
		if werr := writeWakeByte(p.eventWake); werr != nil {
			log.WarnS(
				context.Background(), "wake descriptor write failed",
				"err", werr,
			)

			return ErrWakeFdWriteFailed
		}
	}

	return nil
}
