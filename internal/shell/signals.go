package shell

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/Aashka20/UnixShell/internal/jobs"
)

// The keyboard delivers SIGINT and SIGTSTP to the shell because every job
// runs in its own process group; the bridge relays them to the foreground
// job's group. SIGCHLD drives all reaping and state bookkeeping.
const (
	signalInterrupt = unix.SIGINT
	signalStop      = unix.SIGTSTP
	signalChild     = unix.SIGCHLD
)

func (s *Shell) handleSignals() {
	for sig := range s.signalChan {
		switch sig {
		case signalInterrupt:
			s.forwardToForeground(unix.SIGINT)
		case signalStop:
			s.forwardToForeground(unix.SIGTSTP)
		case signalChild:
			s.reapChildren()
		}
	}
}

// forwardToForeground relays a keyboard-generated signal to the foreground
// job's process group, so every process in a multi-process job receives it.
// Without a foreground job the signal is dropped.
func (s *Shell) forwardToForeground(sig unix.Signal) {
	pid := s.table.ForegroundPID()
	if pid == 0 {
		return
	}

	s.log.Debug("forwarding signal to foreground group", "signal", int(sig), "pgid", pid)

	if err := unix.Kill(-pid, sig); err != nil {
		fmt.Fprintf(s.stderr, "Error: kill: %v\n", err)
	}
}

// reapChildren collects every child whose state has already changed without
// blocking on the ones still running. Exited children are removed from the
// table; stopped children are marked Stopped. Termination and stop reports
// are emitted here, once the kernel has confirmed the change, rather than
// when the triggering signal was forwarded.
func (s *Shell) reapChildren() {
	s.launchMu.Lock()
	defer s.launchMu.Unlock()

	for {
		var ws unix.WaitStatus

		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG|unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil || pid <= 0 {
			return
		}

		switch {
		case ws.Stopped():
			if s.table.SetState(pid, jobs.Stopped) {
				job, _ := s.table.ByPID(pid)
				fmt.Fprintf(s.stdout, "Job [%d] (%d) stopped by signal %d\n", job.JID, job.PID, ws.StopSignal())
			}
		case ws.Signaled():
			if job, ok := s.table.ByPID(pid); ok {
				fmt.Fprintf(s.stdout, "Job [%d] (%d) terminated by signal %d\n", job.JID, job.PID, ws.Signal())
			}

			s.table.Remove(pid)
			s.log.Debug("reaped signaled child", "pid", pid, "signal", int(ws.Signal()))
		default:
			// Normal exit. Non-leader pipeline members land here too and
			// Remove reports false for them.
			s.table.Remove(pid)
			s.log.Debug("reaped exited child", "pid", pid, "code", ws.ExitStatus())
		}
	}
}
