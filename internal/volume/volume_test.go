package volume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/taskar/internal/action"
)

// fakeMixer records level changes; getErr makes the capability probe fail.
type fakeMixer struct {
	level  int
	muted  bool
	getErr error
	sets   []int
}

func (m *fakeMixer) Get() (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.level, nil
}

func (m *fakeMixer) Set(level int) error {
	m.level = level
	m.sets = append(m.sets, level)
	return nil
}

func (m *fakeMixer) Mute() error   { m.muted = true; return nil }
func (m *fakeMixer) Unmute() error { m.muted = false; return nil }

func TestSetOutOfRangeIsValidationWithoutMixerCall(t *testing.T) {
	mixer := &fakeMixer{level: 40}
	s := NewWithMixer(mixer, nil)

	for _, level := range []int{-1, 101, 250} {
		result := s.Set(level)
		require.False(t, result.OK, "level %d", level)
		require.Equal(t, action.ClassValidation, result.Class)
	}
	require.Empty(t, mixer.sets, "no platform mechanism may be invoked")
}

func TestSetAppliesLevel(t *testing.T) {
	mixer := &fakeMixer{level: 40}
	s := NewWithMixer(mixer, nil)

	result := s.Set(70)
	require.True(t, result.OK)
	require.Equal(t, []int{70}, mixer.sets)
}

func TestIncreaseClampsAtHundred(t *testing.T) {
	mixer := &fakeMixer{level: 97}
	s := NewWithMixer(mixer, nil)

	for i := 0; i < 4; i++ {
		result := s.Increase()
		require.True(t, result.OK)
	}
	require.Equal(t, 100, mixer.level)
	for _, level := range mixer.sets {
		require.LessOrEqual(t, level, 100)
	}
}

func TestDecreaseClampsAtZero(t *testing.T) {
	mixer := &fakeMixer{level: 3}
	s := NewWithMixer(mixer, nil)

	for i := 0; i < 4; i++ {
		result := s.Decrease()
		require.True(t, result.OK)
	}
	require.Equal(t, 0, mixer.level)
	for _, level := range mixer.sets {
		require.GreaterOrEqual(t, level, 0)
	}
}

func TestMuteUnmute(t *testing.T) {
	mixer := &fakeMixer{}
	s := NewWithMixer(mixer, nil)

	require.True(t, s.Mute().OK)
	require.True(t, mixer.muted)
	require.True(t, s.Unmute().OK)
	require.False(t, mixer.muted)
}

func TestMissingCapabilityDegrades(t *testing.T) {
	mixer := &fakeMixer{getErr: errors.New("no audio endpoint")}
	s := NewWithMixer(mixer, nil)

	for _, result := range []action.Result{s.Set(50), s.Increase(), s.Decrease(), s.Mute(), s.Unmute()} {
		require.False(t, result.OK)
		require.Equal(t, action.ClassCapabilityMissing, result.Class)
		require.Contains(t, result.Message, "unavailable")
	}
	require.Empty(t, mixer.sets)
}

func TestValidationBeatsMissingCapability(t *testing.T) {
	s := NewWithMixer(&fakeMixer{getErr: errors.New("no audio endpoint")}, nil)

	result := s.Set(150)
	require.Equal(t, action.ClassValidation, result.Class)
}
