// Package volume is the audio output control surface.
package volume

import (
	"log/slog"

	"github.com/rbright/taskar/internal/action"
)

// Mixer is the host audio-endpoint interface. The production mixer wraps
// volume-go (Core Audio on Windows, amixer on Linux, osascript on macOS).
type Mixer interface {
	Get() (int, error)
	Set(level int) error
	Mute() error
	Unmute() error
}

// step is the relative change applied by Increase and Decrease.
const step = 5

// Surface exposes the volume action vocabulary with the uniform result
// contract. A mixer probe failure at construction marks the capability
// missing; calls then degrade to an "unavailable" result.
type Surface struct {
	mixer       Mixer
	unavailable string
	logger      *slog.Logger
}

// New probes the system mixer once and returns the surface, degraded when
// the host has no usable audio endpoint.
func New(logger *slog.Logger) *Surface {
	return NewWithMixer(systemMixer{}, logger)
}

// NewWithMixer builds the surface around any mixer, probing it once.
func NewWithMixer(mixer Mixer, logger *slog.Logger) *Surface {
	s := &Surface{mixer: mixer, logger: logger}
	if _, err := mixer.Get(); err != nil {
		s.unavailable = err.Error()
		if logger != nil {
			logger.Warn("volume control unavailable", "error", err.Error())
		}
	}
	return s
}

// Set applies an absolute level. Levels outside [0,100] are rejected
// before any platform mechanism is invoked.
func (s *Surface) Set(level int) action.Result {
	if level < 0 || level > 100 {
		return action.Failure(action.ClassValidation, "Volume must be between 0 and 100, got %d.", level)
	}
	if s.unavailable != "" {
		return action.Unavailable("volume control", s.unavailable)
	}
	if err := s.mixer.Set(level); err != nil {
		return action.Failure(action.ClassLaunchError, "Setting the volume failed (%v).", err)
	}
	return action.Success("Volume set to %d%%.", level)
}

// Increase raises the level by 5 points, clamped to 100.
func (s *Surface) Increase() action.Result {
	return s.adjust(step)
}

// Decrease lowers the level by 5 points, clamped to 0.
func (s *Surface) Decrease() action.Result {
	return s.adjust(-step)
}

func (s *Surface) adjust(delta int) action.Result {
	if s.unavailable != "" {
		return action.Unavailable("volume control", s.unavailable)
	}
	current, err := s.mixer.Get()
	if err != nil {
		return action.Failure(action.ClassLaunchError, "Reading the current volume failed (%v).", err)
	}

	target := current + delta
	if target > 100 {
		target = 100
	}
	if target < 0 {
		target = 0
	}
	if err := s.mixer.Set(target); err != nil {
		return action.Failure(action.ClassLaunchError, "Setting the volume failed (%v).", err)
	}
	return action.Success("Volume set to %d%%.", target)
}

// Mute silences the output.
func (s *Surface) Mute() action.Result {
	if s.unavailable != "" {
		return action.Unavailable("volume control", s.unavailable)
	}
	if err := s.mixer.Mute(); err != nil {
		return action.Failure(action.ClassLaunchError, "Muting failed (%v).", err)
	}
	return action.Success("Muted.")
}

// Unmute restores the output.
func (s *Surface) Unmute() action.Result {
	if s.unavailable != "" {
		return action.Unavailable("volume control", s.unavailable)
	}
	if err := s.mixer.Unmute(); err != nil {
		return action.Failure(action.ClassLaunchError, "Unmuting failed (%v).", err)
	}
	return action.Success("Unmuted.")
}
