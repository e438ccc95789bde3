package appointments

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type commitRecorder struct {
	mu     sync.Mutex
	values []string
}

func (r *commitRecorder) record(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
}

func (r *commitRecorder) committed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make([]string, len(r.values))
	copy(copied, r.values)
	return copied
}

func waitForCommits(t *testing.T, recorder *commitRecorder, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(recorder.committed()) >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d commits, got %d", want, len(recorder.committed()))
}

func TestDebouncerCommitsLastEditOnly(t *testing.T) {
	recorder := &commitRecorder{}
	debouncer := NewDebouncer(30*time.Millisecond, 1, recorder.record)
	defer debouncer.Stop()

	for _, value := range []string{"j", "jo", "joh", "john"} {
		debouncer.Edit(value)
		time.Sleep(5 * time.Millisecond)
	}

	waitForCommits(t, recorder, 1)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []string{"john"}, recorder.committed(), "intermediate values must never commit")
}

func TestDebouncerEachIdlePeriodCommitsOnce(t *testing.T) {
	recorder := &commitRecorder{}
	debouncer := NewDebouncer(20*time.Millisecond, 1, recorder.record)
	defer debouncer.Stop()

	debouncer.Edit("alpha")
	waitForCommits(t, recorder, 1)

	debouncer.Edit("beta")
	waitForCommits(t, recorder, 2)

	assert.Equal(t, []string{"alpha", "beta"}, recorder.committed())
}

func TestDebouncerMinLengthCommitsEmpty(t *testing.T) {
	recorder := &commitRecorder{}
	debouncer := NewDebouncer(20*time.Millisecond, 3, recorder.record)
	defer debouncer.Stop()

	debouncer.Edit("jo")
	waitForCommits(t, recorder, 1)

	assert.Equal(t, []string{""}, recorder.committed(), "short input commits as no-filter, not as the raw value")
}

func TestDebouncerPendingAndLast(t *testing.T) {
	recorder := &commitRecorder{}
	debouncer := NewDebouncer(30*time.Millisecond, 1, recorder.record)
	defer debouncer.Stop()

	assert.False(t, debouncer.Pending())

	debouncer.Edit("john")
	assert.True(t, debouncer.Pending())
	assert.Equal(t, "john", debouncer.Last())

	waitForCommits(t, recorder, 1)
	assert.False(t, debouncer.Pending())
}

func TestDebouncerStopCancelsPendingCommit(t *testing.T) {
	recorder := &commitRecorder{}
	debouncer := NewDebouncer(20*time.Millisecond, 1, recorder.record)

	debouncer.Edit("john")
	debouncer.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, recorder.committed(), "no commit may fire after teardown")

	debouncer.Edit("ignored")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, recorder.committed(), "edits after teardown are dropped")
}
