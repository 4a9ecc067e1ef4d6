package actor

import "errors"

// Error taxonomy for the runtime. These are programming errors or
// environmental conditions; none of them are routine control flow.
var (
	// ErrIsolationViolation is returned when a send or hatch payload has
	// already been consumed once. It is returned to the caller of Send
	// or Hatch; the runtime does not abort the calling actor's
	// continuation, which keeps running.
	ErrIsolationViolation = errors.New("actor: isolation violation")

	// ErrAlreadyRegistered is returned by MailHub.register when an
	// ActorId already has a mailbox.
	ErrAlreadyRegistered = errors.New("actor: mailbox already registered")

	// ErrNotRegistered is returned by MailHub.unregister when an ActorId
	// has no mailbox.
	ErrNotRegistered = errors.New("actor: mailbox not registered")

	// ErrWakeFdWriteFailed is returned when the best-effort write to the
	// event wake descriptor fails after retrying on EINTR-equivalents.
	ErrWakeFdWriteFailed = errors.New("actor: wake descriptor write failed")
)
