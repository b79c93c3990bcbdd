package shell

import (
	"context"
	"strings"
)

// Response scripts one Recorder result.
type Response struct {
	Output string
	Err    error
}

// Recorder is a Runner test double that records every argv it receives
// and replays scripted responses in call order. When the script runs out
// it keeps returning the final response.
type Recorder struct {
	Calls     [][]string
	Responses []Response
}

func (r *Recorder) Run(_ context.Context, argv []string) (string, error) {
	r.Calls = append(r.Calls, argv)
	if len(r.Responses) == 0 {
		return "", nil
	}
	idx := len(r.Calls) - 1
	if idx >= len(r.Responses) {
		idx = len(r.Responses) - 1
	}
	return r.Responses[idx].Output, r.Responses[idx].Err
}

// CommandLines renders recorded calls one per line for assertions.
func (r *Recorder) CommandLines() string {
	lines := make([]string, 0, len(r.Calls))
	for _, argv := range r.Calls {
		lines = append(lines, strings.Join(argv, " "))
	}
	return strings.Join(lines, "\n")
}
