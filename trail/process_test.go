package trail

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantScore   string
		wantRatings string
	}{
		{"sample", sample, "36", "81"},
		{"sample-trailing-newline", sample + "\n", "36", "81"},
		{"no-trailheads", "123\n456\n789", "0", "0"},
		{"no-peaks", "012\n345\n678", "0", "0"},
		{"line", "0123456789", "1", "1"},
		{"both-ends", "0123456789876543210", "2", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Process(tt.input)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if got != tt.wantScore {
				t.Errorf("Process = %q, want %q", got, tt.wantScore)
			}
			got, err = ProcessRatings(tt.input)
			if err != nil {
				t.Fatalf("ProcessRatings: %v", err)
			}
			if got != tt.wantRatings {
				t.Errorf("ProcessRatings = %q, want %q", got, tt.wantRatings)
			}
		})
	}
}

func TestProcessEmpty(t *testing.T) {
	got, err := Process("")
	if err == nil {
		t.Fatalf("Process(\"\") = %q, want error", got)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Process(\"\") error = %v, want *ParseError", err)
	}
	if _, ok := errors.Cause(err).(*ParseError); !ok {
		t.Errorf("Cause(%v) is %T, want *ParseError", err, errors.Cause(err))
	}
	if !strings.HasPrefix(err.Error(), "parse height map: parse failed at line 1") {
		t.Errorf("error = %q", err)
	}
}

func TestSolverWorkers(t *testing.T) {
	// Tile the sample so there are enough trailheads to spread out.
	var rows []string
	for _, line := range strings.Split(sample, "\n") {
		rows = append(rows, strings.Repeat(line, 4))
	}
	in := strings.Repeat(strings.Join(rows, "\n")+"\n", 4)

	var want string
	for _, workers := range []int{1, 2, 8, 0} {
		s := &Solver{Workers: workers, Logger: zaptest.NewLogger(t)}
		got, err := s.Process(in)
		if err != nil {
			t.Fatal(err)
		}
		if want == "" {
			want = got
		}
		if got != want {
			t.Errorf("Workers=%d: Process = %q, want %q", workers, got, want)
		}
	}
}

func TestSolverDeterministic(t *testing.T) {
	s := new(Solver)
	a, err := s.Process(sample)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Process(sample)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Process not deterministic: %q then %q", a, b)
	}
}

func TestSolverReusesGraph(t *testing.T) {
	s := &Solver{Logger: zaptest.NewLogger(t)}
	if _, err := s.Process(sample); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ProcessRatings(sample + "\n"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.graphs); got != 1 {
		t.Errorf("cached %d graphs, want 1", got)
	}
	if _, err := s.Process("0123456789"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.graphs); got != 2 {
		t.Errorf("cached %d graphs, want 2", got)
	}
}
