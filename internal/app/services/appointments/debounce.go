package appointments

import (
	"sync"
	"time"
	"unicode/utf8"
)

const (
	DefaultDebounceQuietPeriod = 500 * time.Millisecond
	DefaultDebounceMinLength   = 1
)

// Debouncer turns a rapid stream of search-text edits into a single committed
// value once the input has been stable for the quiet period. Edits arriving
// faster than the quiet period never commit intermediate values: only the
// last edit commits, after the input goes idle. Values shorter than the
// minimum length commit as an empty string, meaning "no filter".
type Debouncer struct {
	quiet     time.Duration
	minLength int
	commit    func(string)

	mu      sync.Mutex
	timer   *time.Timer
	last    string
	pending bool
	stopped bool
}

func NewDebouncer(quiet time.Duration, minLength int, commit func(string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultDebounceQuietPeriod
	}
	if minLength <= 0 {
		minLength = DefaultDebounceMinLength
	}
	return &Debouncer{
		quiet:     quiet,
		minLength: minLength,
		commit:    commit,
	}
}

// Edit records a new input value and re-arms the quiet-period timer. Any
// pending commit for an earlier value is cancelled first.
func (d *Debouncer) Edit(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.last = value
	d.pending = true
	d.timer = time.AfterFunc(d.quiet, func() {
		d.fire(value)
	})
}

func (d *Debouncer) fire(value string) {
	d.mu.Lock()
	if d.stopped || value != d.last {
		// Superseded by a newer edit or by teardown.
		d.mu.Unlock()
		return
	}
	d.pending = false
	committed := value
	if utf8.RuneCountInString(committed) < d.minLength {
		committed = ""
	}
	d.mu.Unlock()

	d.commit(committed)
}

// Pending reports whether a quiet period is currently running.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Last returns the most recent edit, committed or not.
func (d *Debouncer) Last() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Stop tears the controller down. A timer that already fired will find the
// controller stopped and never reach the commit callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
