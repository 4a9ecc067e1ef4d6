package actor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsolatedTakeOnce(t *testing.T) {
	t.Parallel()

	h := NewIsolated(testMessage{value: 1})

	msg, err := h.Take()
	require.NoError(t, err)
	require.Equal(t, 1, msg.value)

	_, err = h.Take()
	require.ErrorIs(t, err, ErrIsolationViolation)
}

func TestIsolatedNilHandle(t *testing.T) {
	t.Parallel()

	var h *Isolated[testMessage]

	_, err := h.Take()
	require.ErrorIs(t, err, ErrIsolationViolation)
}

func TestIsolatedConcurrentTakeOnlyOneWins(t *testing.T) {
	t.Parallel()

	h := NewIsolated(testMessage{value: 1})

	const n = 50
	results := make(chan error, n)

	for i := 0; i < n; i++ {
		go func() {
			_, err := h.Take()
			results <- err
		}()
	}

	var successes int
	for i := 0; i < n; i++ {
		if err := <-results; err == nil {
			successes++
		}
	}

	require.Equal(t, 1, successes, "exactly one concurrent Take should win")
}
