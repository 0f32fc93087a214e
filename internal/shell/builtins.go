package shell

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/Aashka20/UnixShell/internal/jobs"
)

func (s *Shell) executeBuiltin(argv []string) (bool, error) {
	switch argv[0] {
	case "quit":
		s.quit()
		return true, nil
	case "jobs":
		s.listJobs()
		return true, nil
	case "bg", "fg":
		if len(argv) < 2 {
			fmt.Fprintln(s.stdout, "Missing process Id or Job id")
			return true, nil
		}
		return true, s.bgfg(argv[0], argv[1])
	case "cd":
		return true, s.changeDirectory(argv[1:])
	default:
		return false, nil
	}
}

// quit exits immediately. No job cleanup: process exit reclaims everything,
// and children run in their own groups so they are not taken down with us.
func (s *Shell) quit() {
	os.Exit(1)
}

func (s *Shell) listJobs() {
	for _, job := range s.table.Jobs() {
		fmt.Fprintf(s.stdout, "[%d] (%d) %s %s\n", job.JID, job.PID, job.State, job.Cmdline)
	}
}

// bgfg resumes a stopped or backgrounded job. bg continues it detached from
// the keyboard; fg continues it as the foreground job and blocks until it
// exits or stops again.
func (s *Shell) bgfg(name, target string) error {
	job, err := s.resolveTarget(target)
	if err != nil {
		fmt.Fprintf(s.stdout, "%s: No such job\n", target)
		return nil
	}

	switch name {
	case "bg":
		s.table.SetState(job.PID, jobs.Background)
		if err := unix.Kill(-job.PID, unix.SIGCONT); err != nil {
			return fmt.Errorf("error continuing job [%d]: %w", job.JID, err)
		}

		s.log.Debug("continued job in background", "jid", job.JID, "pid", job.PID)
		fmt.Fprintf(s.stdout, "[%d] (%d) %s\n", job.JID, job.PID, job.Cmdline)
	case "fg":
		s.table.SetState(job.PID, jobs.Foreground)
		if err := unix.Kill(-job.PID, unix.SIGCONT); err != nil {
			return fmt.Errorf("error continuing job [%d]: %w", job.JID, err)
		}

		s.log.Debug("continued job in foreground", "jid", job.JID, "pid", job.PID)
		s.table.WaitNotForeground(job.PID)
	}

	return nil
}

// resolveTarget maps a bg/fg argument to a job: "%N" is a job id, a bare
// integer is a process id. Anything unparseable resolves to no job.
func (s *Shell) resolveTarget(target string) (jobs.Job, error) {
	if jidStr, ok := strings.CutPrefix(target, "%"); ok {
		jid, err := strconv.Atoi(jidStr)
		if err != nil {
			return jobs.Job{}, jobs.ErrNoSuchJob
		}

		if job, ok := s.table.ByJID(jid); ok {
			return job, nil
		}

		return jobs.Job{}, jobs.ErrNoSuchJob
	}

	pid, err := strconv.Atoi(target)
	if err != nil {
		return jobs.Job{}, jobs.ErrNoSuchJob
	}

	if job, ok := s.table.ByPID(pid); ok {
		return job, nil
	}

	return jobs.Job{}, jobs.ErrNoSuchJob
}

func (s *Shell) changeDirectory(args []string) error {
	var dir string
	if len(args) == 0 {
		dir, _ = os.UserHomeDir()
	} else {
		dir = args[0]
	}

	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("cd: %w", err)
	}

	return nil
}
