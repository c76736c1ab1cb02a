package service

import (
	"sync"
	"time"
)

type autosaveJob struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	stopped bool
}

// NewAutosaveJob creates an [AutosaveJob] with the given debounce quiet
// period. If delay is zero or negative it defaults to 500 milliseconds.
// The job is idle until Schedule is called.
func NewAutosaveJob(delay time.Duration) AutosaveJob {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &autosaveJob{delay: delay}
}

// Schedule implements [AutosaveJob]. Each call replaces the pending save and
// restarts the quiet-period timer, so only the last save of a burst fires.
func (j *autosaveJob) Schedule(save func()) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.stopped {
		return
	}

	j.pending = save

	if j.timer == nil {
		j.timer = time.AfterFunc(j.delay, j.fire)
		return
	}
	j.timer.Reset(j.delay)
}

// Cancel implements [AutosaveJob]. It drops the pending save without flushing
// it; the job keeps accepting Schedule calls.
func (j *autosaveJob) Cancel() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pending = nil
	if j.timer != nil {
		j.timer.Stop()
	}
}

// Stop implements [AutosaveJob]. It cancels the pending save without flushing
// it and the job accepts no further Schedule calls.
func (j *autosaveJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopped = true
	j.pending = nil
	if j.timer != nil {
		j.timer.Stop()
	}
}

func (j *autosaveJob) fire() {
	j.mu.Lock()
	save := j.pending
	j.pending = nil
	j.mu.Unlock()

	if save != nil {
		save()
	}
}
