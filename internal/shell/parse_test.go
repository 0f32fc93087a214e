package shell

import (
	"reflect"
	"testing"
)

func TestSplitBackground(t *testing.T) {
	tests := []struct {
		name       string
		argv       []string
		wantArgv   []string
		background bool
	}{
		{"foreground", []string{"sleep", "100"}, []string{"sleep", "100"}, false},
		{"background", []string{"sleep", "100", "&"}, []string{"sleep", "100"}, true},
		{"ampersand only strips trailing", []string{"echo", "&", "x"}, []string{"echo", "&", "x"}, false},
		{"empty", nil, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, background := splitBackground(tc.argv)
			if background != tc.background {
				t.Errorf("expected background: got '%t', want '%t'", background, tc.background)
			}
			if !reflect.DeepEqual(got, tc.wantArgv) {
				t.Errorf("expected argv: got '%v', want '%v'", got, tc.wantArgv)
			}
		})
	}
}

func TestParsePipelineSingleStage(t *testing.T) {
	cmds, err := parsePipeline([]string{"sleep", "100"})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if len(cmds) != 1 {
		t.Fatalf("expected stages: got '%d', want '1'", len(cmds))
	}

	if !reflect.DeepEqual(cmds[0].argv, []string{"sleep", "100"}) {
		t.Errorf("expected argv: got '%v'", cmds[0].argv)
	}
}

func TestParsePipelineTwoStages(t *testing.T) {
	cmds, err := parsePipeline([]string{"cat", "in.txt", "|", "wc", "-l"})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if len(cmds) != 2 {
		t.Fatalf("expected stages: got '%d', want '2'", len(cmds))
	}

	if !reflect.DeepEqual(cmds[0].argv, []string{"cat", "in.txt"}) {
		t.Errorf("expected upstream argv: got '%v'", cmds[0].argv)
	}

	if !reflect.DeepEqual(cmds[1].argv, []string{"wc", "-l"}) {
		t.Errorf("expected downstream argv: got '%v'", cmds[1].argv)
	}
}

func TestParsePipelineRejectsMultipleStages(t *testing.T) {
	if _, err := parsePipeline([]string{"a", "|", "b", "|", "c"}); err == nil {
		t.Error("expected error for more than one |")
	}
}

func TestParsePipelineRejectsEmptyStage(t *testing.T) {
	if _, err := parsePipeline([]string{"a", "|"}); err == nil {
		t.Error("expected error for empty stage")
	}
}

func TestParseRedirects(t *testing.T) {
	cmd, err := parseRedirects([]string{"sort", "<", "in.txt", ">", "out.txt", "-r"})
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if !reflect.DeepEqual(cmd.argv, []string{"sort", "-r"}) {
		t.Errorf("expected argv: got '%v'", cmd.argv)
	}

	if cmd.infile != "in.txt" {
		t.Errorf("expected infile: got '%s'", cmd.infile)
	}

	if cmd.outfile != "out.txt" {
		t.Errorf("expected outfile: got '%s'", cmd.outfile)
	}
}

func TestParseRedirectsMissingTarget(t *testing.T) {
	if _, err := parseRedirects([]string{"sort", "<"}); err == nil {
		t.Error("expected error for missing input target")
	}

	if _, err := parseRedirects([]string{"sort", ">"}); err == nil {
		t.Error("expected error for missing output target")
	}
}
