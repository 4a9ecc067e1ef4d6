package actor

import (
	"errors"
	"io"
	"syscall"
)

// wakeByte is the single byte written to the event wake descriptor per
// send to the designated event-queue actor. Its value is arbitrary; the
// descriptor is a level trigger for an external event loop, not a
// message channel.
const wakeByte = 'x'

// writeWakeByte writes one byte to w, retrying on EINTR and tolerating
// short writes. The write is best-effort: any other write error is
// returned, not retried, and send reports it as ErrWakeFdWriteFailed.
func writeWakeByte(w io.Writer) error {
	if w == nil {
		return nil
	}

	buf := [1]byte{wakeByte}

	for {
		n, err := w.Write(buf[:])
		if err == nil && n == 1 {
			return nil
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil {
			return err
		}

		// Short write with no error: tolerated, since the wake is
		// best-effort.
		return nil
	}
}
