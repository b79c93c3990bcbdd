package launch

import (
	"context"
	"strings"
)

// Scripted is a Launcher test double. Outcomes maps an executable name to
// the probe it should report; unlisted executables report NotFound. Every
// argv handed to Launch is recorded in call order.
type Scripted struct {
	Outcomes map[string]Probe
	Attempts [][]string
}

func (s *Scripted) Launch(_ context.Context, argv []string) Probe {
	s.Attempts = append(s.Attempts, argv)
	if len(argv) == 0 {
		return Probe{Outcome: NotFound}
	}
	if probe, ok := s.Outcomes[strings.ToLower(argv[0])]; ok {
		return probe
	}
	return Probe{Outcome: NotFound}
}

// Probed reports whether an executable name was handed to Launch.
func (s *Scripted) Probed(exe string) bool {
	for _, argv := range s.Attempts {
		if len(argv) > 0 && strings.EqualFold(argv[0], exe) {
			return true
		}
	}
	return false
}
