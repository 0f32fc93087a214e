// Package jobs implements the shell's job table: a fixed-capacity registry
// of launched process groups and their run states. The table is the single
// source of truth shared by the main loop, the builtins and the signal
// bridge, and it doubles as the blocking primitive the main loop uses to
// wait for the foreground job to finish or stop.
package jobs

import "sync"

// DefaultCapacity is the number of job slots when the configuration doesn't
// say otherwise.
const DefaultCapacity = 16

// Job is a snapshot of one tracked job. The PID is the kernel process id of
// the job's process-group leader; because every job is launched into a
// fresh group led by that process, PID is also the group id signals are
// addressed to. JID is the shell-local job id shown to the user.
type Job struct {
	PID     int
	JID     int
	State   State
	Cmdline string
}

// Table is a fixed-capacity job registry. All methods are safe for
// concurrent use; mutations wake any goroutine blocked in
// WaitNotForeground.
type Table struct {
	mu   sync.Mutex
	cond *sync.Cond

	slots []Job
}

// NewTable creates a Table with the given number of slots. Non-positive
// capacities fall back to DefaultCapacity.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	t := &Table{slots: make([]Job, capacity)}
	t.cond = sync.NewCond(&t.mu)

	return t
}

// Add registers a new job and returns its assigned job id: the smallest id
// in [1, capacity] not held by a live job. Ids are reclaimed when a job is
// removed, so users see low, predictable numbers. Returns ErrInvalidPid for
// pid < 1 and ErrTooManyJobs when no slot is free.
func (t *Table) Add(pid int, state State, cmdline string) (int, error) {
	if pid < 1 {
		return 0, ErrInvalidPid
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	jid := t.freeJID()
	if jid == 0 {
		return 0, ErrTooManyJobs
	}

	for i := range t.slots {
		if t.slots[i].State == Undefined {
			t.slots[i] = Job{PID: pid, JID: jid, State: state, Cmdline: cmdline}
			t.cond.Broadcast()

			return jid, nil
		}
	}

	return 0, ErrTooManyJobs
}

// freeJID returns the smallest unused job id, or 0 if the table is full.
// Caller holds t.mu.
func (t *Table) freeJID() int {
	taken := make([]bool, len(t.slots)+1)
	for i := range t.slots {
		if t.slots[i].JID != 0 {
			taken[t.slots[i].JID] = true
		}
	}

	for jid := 1; jid <= len(t.slots); jid++ {
		if !taken[jid] {
			return jid
		}
	}

	return 0
}

// Remove clears the slot holding pid and reports whether a job was removed.
// The reaper is the only caller that should remove running jobs: a slot is
// cleared exactly when the kernel has confirmed the process exited.
func (t *Table) Remove(pid int) bool {
	if pid < 1 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i].State != Undefined && t.slots[i].PID == pid {
			t.slots[i] = Job{}
			t.cond.Broadcast()

			return true
		}
	}

	return false
}

// ByPID returns a snapshot of the job with the given process id.
func (t *Table) ByPID(pid int) (Job, bool) {
	if pid < 1 {
		return Job{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i].State != Undefined && t.slots[i].PID == pid {
			return t.slots[i], true
		}
	}

	return Job{}, false
}

// ByJID returns a snapshot of the job with the given job id.
func (t *Table) ByJID(jid int) (Job, bool) {
	if jid < 1 {
		return Job{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i].State != Undefined && t.slots[i].JID == jid {
			return t.slots[i], true
		}
	}

	return Job{}, false
}

// SetState updates the state of the job with the given pid and reports
// whether such a job exists.
func (t *Table) SetState(pid int, state State) bool {
	if pid < 1 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i].State != Undefined && t.slots[i].PID == pid {
			t.slots[i].State = state
			t.cond.Broadcast()

			return true
		}
	}

	return false
}

// ForegroundPID returns the process id of the foreground job, or 0 if no
// job is in the foreground.
func (t *Table) ForegroundPID() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.foregroundPID()
}

// Caller holds t.mu.
func (t *Table) foregroundPID() int {
	for i := range t.slots {
		if t.slots[i].State == Foreground {
			return t.slots[i].PID
		}
	}

	return 0
}

// JID maps a process id to its job id, or 0 if the pid isn't tracked.
func (t *Table) JID(pid int) int {
	job, ok := t.ByPID(pid)
	if !ok {
		return 0
	}

	return job.JID
}

// Jobs returns snapshots of all live jobs in slot order.
func (t *Table) Jobs() []Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	live := make([]Job, 0, len(t.slots))
	for i := range t.slots {
		if t.slots[i].State != Undefined {
			live = append(live, t.slots[i])
		}
	}

	return live
}

// WaitNotForeground blocks until pid is no longer the foreground job, i.e.
// until the reaper removes it, marks it stopped, or another state change
// displaces it. Wait atomically releases the table lock and sleeps, so a
// state change can never slip between the check and the suspension.
func (t *Table) WaitNotForeground(pid int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for t.foregroundPID() == pid {
		t.cond.Wait()
	}
}
