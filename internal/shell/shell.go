// Package shell implements the read/eval loop, the job-control builtins,
// the process launcher and the signal bridge. All job state lives in the
// jobs.Table shared with the bridge goroutine.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"

	"github.com/Aashka20/UnixShell/internal/config"
	"github.com/Aashka20/UnixShell/internal/jobs"
)

type Shell struct {
	config *config.Config
	log    *slog.Logger
	table  *jobs.Table

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// reader is nil in no-prompt mode; runPlain reads stdin directly.
	reader *readline.Instance

	// launchMu serializes job registration against child reaping, the
	// moral equivalent of blocking SIGCHLD across fork+addjob: a child
	// started while this is held cannot be reaped before it is registered.
	launchMu sync.Mutex

	signalChan chan os.Signal
}

// New creates a Shell reading commands from stdin and writing job reports
// to stdout and command errors to stderr. A nil logger discards all
// diagnostics.
func New(cfg *config.Config, logger *slog.Logger, stdin io.Reader, stdout, stderr io.Writer) (*Shell, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Shell{
		config:     cfg,
		log:        logger,
		table:      jobs.NewTable(cfg.MaxJobs),
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		signalChan: make(chan os.Signal, 1),
	}

	if !cfg.NoPrompt {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      cfg.Prompt,
			HistoryFile: cfg.HistoryFile,
		})
		if err != nil {
			return nil, fmt.Errorf("error initializing readline: %w", err)
		}
		s.reader = rl
	}

	return s, nil
}

// Run executes the read/eval loop until EOF. The signal bridge runs for
// the duration of the loop.
func (s *Shell) Run() error {
	signal.Notify(s.signalChan, signalInterrupt, signalStop, signalChild)
	defer func() {
		// Stop guarantees no further sends, so closing here lets the
		// bridge goroutine drain and exit.
		signal.Stop(s.signalChan)
		close(s.signalChan)
	}()

	go s.handleSignals()

	if s.reader != nil {
		return s.runInteractive()
	}

	return s.runPlain()
}

func (s *Shell) runInteractive() error {
	defer s.reader.Close()

	for {
		line, err := s.reader.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		s.eval(line)
	}
}

func (s *Shell) runPlain() error {
	scanner := bufio.NewScanner(s.stdin)
	for scanner.Scan() {
		s.eval(scanner.Text())
	}

	return scanner.Err()
}

func (s *Shell) eval(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if err := s.Execute(line); err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
	}
}

// Execute runs a single command line: builtins act on the job table
// directly, anything else is launched as a new job.
func (s *Shell) Execute(input string) error {
	argv, err := shellquote.Split(input)
	if err != nil {
		return fmt.Errorf("error parsing command: %w", err)
	}

	if len(argv) == 0 {
		return nil
	}

	if ok, err := s.executeBuiltin(argv); ok {
		return err
	}

	return s.launch(input, argv)
}
