package shell

import "errors"

// The pipeline and redirection syntax is a thin pre-processing step: by the
// time a command starts, its argv holds only the program and its arguments
// and all file-descriptor plumbing has been resolved.

// command is one stage of a job after pre-processing.
type command struct {
	argv    []string
	infile  string
	outfile string
}

// splitBackground strips a trailing "&" marker and reports whether the job
// should run in the background.
func splitBackground(argv []string) ([]string, bool) {
	n := len(argv)
	if n > 0 && argv[n-1] == "&" {
		return argv[:n-1], true
	}

	return argv, false
}

// parsePipeline splits argv on "|" into at most two stages and extracts
// "< file" and "> file" token pairs from each.
func parsePipeline(argv []string) ([]command, error) {
	stages := [][]string{}
	start := 0

	for i, arg := range argv {
		if arg == "|" {
			if len(stages) == 1 {
				return nil, errors.New("at most one | is supported")
			}
			stages = append(stages, argv[start:i])
			start = i + 1
		}
	}
	stages = append(stages, argv[start:])

	cmds := make([]command, 0, len(stages))
	for _, stage := range stages {
		cmd, err := parseRedirects(stage)
		if err != nil {
			return nil, err
		}

		if len(cmd.argv) == 0 {
			return nil, errors.New("missing command")
		}

		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

// parseRedirects pulls two-token redirections out of one stage's argv.
func parseRedirects(argv []string) (command, error) {
	var cmd command

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "<":
			if i+1 >= len(argv) {
				return command{}, errors.New("missing input redirection target")
			}
			cmd.infile = argv[i+1]
			i++
		case ">":
			if i+1 >= len(argv) {
				return command{}, errors.New("missing output redirection target")
			}
			cmd.outfile = argv[i+1]
			i++
		default:
			cmd.argv = append(cmd.argv, argv[i])
		}
	}

	return cmd, nil
}
