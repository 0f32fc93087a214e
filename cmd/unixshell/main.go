package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	// NOTE: The std lib flag package would be fine, but pflag gives the
	// usual single-dash short flags without the overhead of cobra.
	"github.com/spf13/pflag"

	"github.com/Aashka20/UnixShell/internal/config"
	"github.com/Aashka20/UnixShell/internal/shell"
)

func main() {
	var (
		help       bool
		verbose    bool
		noPrompt   bool
		configPath string
	)

	pflag.BoolVarP(&help, "help", "h", false, "print this message")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "print additional diagnostic information")
	pflag.BoolVarP(&noPrompt, "no-prompt", "p", false, "do not emit a command prompt")
	pflag.StringVar(&configPath, "config", "config.yml", "path to shell configuration file")
	pflag.Parse()

	if help {
		fmt.Fprintf(os.Stderr, "Usage: %s [-hvp]\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if noPrompt {
		cfg.NoPrompt = true
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	s, err := shell.New(cfg, logger, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing shell: %v\n", err)
		os.Exit(1)
	}

	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
