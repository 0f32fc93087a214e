package jobs

// State is the run state of a tracked job.
type State int

const (
	// Undefined marks an empty job slot. It's the zero value, so a cleared
	// slot is indistinguishable from one that was never used.
	Undefined State = iota

	// Foreground indicates the job owns the keyboard: it receives forwarded
	// interrupt/suspend signals and blocks the main loop until it leaves
	// this state. At most one job is Foreground at a time.
	Foreground

	// Background indicates the job is running detached from the keyboard.
	Background

	// Stopped indicates the job's process group has been suspended and will
	// not run again until continued by bg or fg.
	Stopped
)

// NOTE: This slice needs to be kept in sync with any changes to the State
// values. The labels are part of the jobs builtin's output contract:
// Background jobs display as "Running".
var stateLabels = []string{
	"Undefined",
	"Foreground",
	"Running",
	"Stopped",
}

// String returns the display label used by the jobs builtin.
func (s State) String() string {
	if int(s) < 0 || int(s) >= len(stateLabels) {
		return stateLabels[0]
	}

	return stateLabels[s]
}
