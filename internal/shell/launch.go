package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/Aashka20/UnixShell/internal/jobs"
)

// launch starts cmdline as a new job in its own process group. Foreground
// jobs block the caller until they exit or stop; background jobs return
// immediately after printing the job line. Launch failures are command
// errors, not fatal to the shell.
func (s *Shell) launch(cmdline string, argv []string) error {
	argv, background := splitBackground(argv)

	cmds, err := parsePipeline(argv)
	if err != nil {
		return err
	}

	initial := jobs.Foreground
	if background {
		initial = jobs.Background
	}

	// Registration is serialized against the reaper: a child that exits
	// instantly generates SIGCHLD, but reapChildren cannot run its wait
	// loop until the job is in the table.
	s.launchMu.Lock()

	pid, err := s.startGroup(cmds)
	if err != nil {
		s.launchMu.Unlock()
		return err
	}

	jid, err := s.table.Add(pid, initial, cmdline)
	if err != nil {
		// The group is already running and has no table entry to reap
		// through; don't leak it.
		unix.Kill(-pid, unix.SIGKILL)
		s.launchMu.Unlock()
		return err
	}

	s.launchMu.Unlock()

	s.log.Debug("added job", "jid", jid, "pid", pid, "cmdline", cmdline)

	if background {
		fmt.Fprintf(s.stdout, "[%d] (%d) %s\n", jid, pid, cmdline)
		return nil
	}

	s.table.WaitNotForeground(pid)

	return nil
}

// startGroup starts every stage of the job in one fresh process group and
// returns the leader's pid. For a pipeline the downstream stage leads the
// group, so the job's pid doubles as the group id and the job lives until
// its consumer exits; the upstream stage joins the leader's group.
func (s *Shell) startGroup(cmds []command) (int, error) {
	// Parent-side copies of pipe ends and redirection files; the children
	// hold their own descriptors once started.
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	var pipeR, pipeW *os.File
	if len(cmds) == 2 {
		var err error
		pipeR, pipeW, err = os.Pipe()
		if err != nil {
			return 0, fmt.Errorf("error creating pipe: %w", err)
		}
		files = append(files, pipeR, pipeW)
	}

	last := len(cmds) - 1

	leader := exec.Command(cmds[last].argv[0], cmds[last].argv[1:]...)
	leader.Stdin = s.childStdin()
	leader.Stdout = s.stdout
	leader.Stderr = s.stderr
	if pipeR != nil {
		leader.Stdin = pipeR
	}

	redirected, err := applyRedirects(leader, cmds[last])
	files = append(files, redirected...)
	if err != nil {
		return 0, err
	}

	// A fresh group detaches the job from the terminal's foreground group,
	// so keyboard signals reach it only via the bridge's forwarding. exec
	// restores default signal dispositions in the child.
	leader.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := leader.Start(); err != nil {
		return 0, fmt.Errorf("%s: %w", cmds[last].argv[0], err)
	}

	pid := leader.Process.Pid

	if pipeW != nil {
		upstream := exec.Command(cmds[0].argv[0], cmds[0].argv[1:]...)
		upstream.Stdin = s.childStdin()
		upstream.Stdout = pipeW
		upstream.Stderr = s.stderr

		redirected, err := applyRedirects(upstream, cmds[0])
		files = append(files, redirected...)
		if err != nil {
			unix.Kill(-pid, unix.SIGKILL)
			return 0, err
		}

		upstream.SysProcAttr = &syscall.SysProcAttr{Setpgid: true, Pgid: pid}

		if err := upstream.Start(); err != nil {
			unix.Kill(-pid, unix.SIGKILL)
			return 0, fmt.Errorf("%s: %w", cmds[0].argv[0], err)
		}
	}

	return pid, nil
}

// childStdin returns the descriptor children inherit as standard input.
// Only a real file (the terminal) is shared with children; anything else is
// the shell's own command stream and handing it to a child would let the
// child consume command lines.
func (s *Shell) childStdin() io.Reader {
	if f, ok := s.stdin.(*os.File); ok {
		return f
	}

	return nil
}

// applyRedirects opens one stage's redirection files and wires them into
// cmd. Output redirection also captures stderr. The returned files are the
// parent's copies and must be closed after the child starts.
func applyRedirects(cmd *exec.Cmd, c command) ([]*os.File, error) {
	var files []*os.File

	if c.infile != "" {
		f, err := os.Open(c.infile)
		if err != nil {
			return files, err
		}
		files = append(files, f)
		cmd.Stdin = f
	}

	if c.outfile != "" {
		f, err := os.OpenFile(c.outfile, os.O_RDWR|os.O_CREATE, 0o600)
		if err != nil {
			return files, err
		}
		files = append(files, f)
		cmd.Stdout = f
		cmd.Stderr = f
	}

	return files, nil
}
