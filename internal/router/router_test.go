package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/brightness"
	"github.com/rbright/taskar/internal/desktop"
	"github.com/rbright/taskar/internal/media"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/power"
	"github.com/rbright/taskar/internal/shell"
	"github.com/rbright/taskar/internal/volume"
	"github.com/rbright/taskar/internal/wiki"
)

// recordingResolver captures the action keys handed to Resolve.
type recordingResolver struct {
	keys   []string
	result action.Result
}

func (r *recordingResolver) Resolve(_ context.Context, actionKey string) action.Result {
	r.keys = append(r.keys, actionKey)
	return r.result
}

type fakeKnowledge struct {
	summary string
	err     error
	topics  []string
}

func (k *fakeKnowledge) Summary(_ context.Context, topic string) (string, error) {
	k.topics = append(k.topics, topic)
	return k.summary, k.err
}

type quietMixer struct{ level int }

func (m *quietMixer) Get() (int, error)   { return m.level, nil }
func (m *quietMixer) Set(level int) error { m.level = level; return nil }
func (m *quietMixer) Mute() error         { return nil }
func (m *quietMixer) Unmute() error       { return nil }

func newTestRouter(resolver *recordingResolver, knowledge Knowledge, runner *shell.Recorder) *Router {
	return &Router{
		Resolver:   resolver,
		Knowledge:  knowledge,
		Volume:     volume.NewWithMixer(&quietMixer{level: 50}, nil),
		Brightness: brightness.New(platform.Windows, runner),
		Power:      power.New(platform.Linux, runner),
		Media:      media.New(platform.Linux, runner),
		Desktop:    desktop.NewWith(platform.Linux, runner, nil, fakeMetricsOK{}, "", nil),
		Now: func() time.Time {
			return time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC)
		},
	}
}

type fakeMetricsOK struct{}

func (fakeMetricsOK) Battery() (desktop.BatteryInfo, error) {
	return desktop.BatteryInfo{Percent: 80, Charging: false}, nil
}
func (fakeMetricsOK) MemoryPercent() (float64, error) { return 42, nil }
func (fakeMetricsOK) CPUPercent() (float64, error)    { return 7, nil }

func TestRouteTime(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	result := r.Route(context.Background(), "what time is it")
	require.True(t, result.OK)
	require.Equal(t, "The current time is 14:05", result.Message)
}

func TestRouteDate(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	result := r.Route(context.Background(), "what's the date today")
	require.True(t, result.OK)
	require.Equal(t, "Today's date is 07 March 2025", result.Message)
}

func TestRouteTimeWinsOverDate(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	// Ordered rules: "time" is checked first.
	result := r.Route(context.Background(), "date and time please")
	require.Contains(t, result.Message, "current time")
}

func TestRouteWikipediaStripsTriggerWord(t *testing.T) {
	knowledge := &fakeKnowledge{summary: "Go is a programming language."}
	r := newTestRouter(&recordingResolver{}, knowledge, &shell.Recorder{})

	result := r.Route(context.Background(), "wikipedia golang")
	require.True(t, result.OK)
	require.Equal(t, []string{"golang"}, knowledge.topics)
	require.Equal(t, "According to Wikipedia: Go is a programming language.", result.Message)
}

func TestRouteWikipediaFailureIsApologetic(t *testing.T) {
	knowledge := &fakeKnowledge{err: errors.New("connection refused")}
	r := newTestRouter(&recordingResolver{}, knowledge, &shell.Recorder{})

	result := r.Route(context.Background(), "wikipedia something obscure")
	require.False(t, result.OK)
	require.Contains(t, result.Message, "Sorry, I couldn't fetch that information.")
	require.Contains(t, result.Message, "connection refused")
}

func TestRouteWikipediaAmbiguousListsOptions(t *testing.T) {
	knowledge := &fakeKnowledge{err: &wiki.AmbiguousError{
		Topic:   "mercury",
		Options: []string{"Mercury (planet)", "Mercury (element)"},
	}}
	r := newTestRouter(&recordingResolver{}, knowledge, &shell.Recorder{})

	result := r.Route(context.Background(), "wikipedia mercury")
	require.False(t, result.OK)
	require.Equal(t, action.ClassAmbiguous, result.Class)
	require.Contains(t, result.Message, "Mercury (planet)")
}

func TestRouteWikipediaCollaboratorAbsent(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	result := r.Route(context.Background(), "wikipedia anything")
	require.False(t, result.OK)
	require.Equal(t, action.ClassCapabilityMissing, result.Class)
}

func TestRouteOpenDelegatesToResolver(t *testing.T) {
	resolver := &recordingResolver{result: action.Success("Opening application: calculator")}
	r := newTestRouter(resolver, nil, &shell.Recorder{})

	result := r.Route(context.Background(), "open calculator")
	require.True(t, result.OK)
	require.Equal(t, []string{"calculator"}, resolver.keys)
}

func TestRouteLaunchDelegatesToResolver(t *testing.T) {
	resolver := &recordingResolver{result: action.Success("Opening application: terminal")}
	r := newTestRouter(resolver, nil, &shell.Recorder{})

	r.Route(context.Background(), "launch the terminal")
	require.Equal(t, []string{"the terminal"}, resolver.keys)
}

func TestRouteVolume(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	result := r.Route(context.Background(), "turn the volume up")
	require.True(t, result.OK)
	require.Contains(t, result.Message, "55%")

	result = r.Route(context.Background(), "set volume to 30")
	require.True(t, result.OK)
	require.Contains(t, result.Message, "30%")

	result = r.Route(context.Background(), "volume 150")
	require.Equal(t, action.ClassValidation, result.Class)

	result = r.Route(context.Background(), "volume")
	require.Equal(t, action.ClassValidation, result.Class)
}

func TestRouteMute(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	require.Equal(t, "Muted.", r.Route(context.Background(), "mute the sound").Message)
	require.Equal(t, "Unmuted.", r.Route(context.Background(), "please unmute").Message)
}

func TestRouteBrightness(t *testing.T) {
	runner := &shell.Recorder{}
	r := newTestRouter(&recordingResolver{}, nil, runner)

	result := r.Route(context.Background(), "brightness 40")
	require.True(t, result.OK)
	require.NotEmpty(t, runner.Calls)

	result = r.Route(context.Background(), "change brightness")
	require.Equal(t, action.ClassValidation, result.Class)
}

func TestRouteStatusQueries(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	require.Contains(t, r.Route(context.Background(), "battery level").Message, "80%")
	require.Contains(t, r.Route(context.Background(), "how much memory").Message, "42%")
	require.Contains(t, r.Route(context.Background(), "cpu usage").Message, "7%")
}

func TestRoutePowerLock(t *testing.T) {
	runner := &shell.Recorder{}
	r := newTestRouter(&recordingResolver{}, nil, runner)

	result := r.Route(context.Background(), "lock the screen")
	require.True(t, result.OK)
	require.Equal(t, [][]string{{"loginctl", "lock-session"}}, runner.Calls)
}

func TestRouteClockDoesNotTriggerLock(t *testing.T) {
	runner := &shell.Recorder{}
	r := newTestRouter(&recordingResolver{}, nil, runner)

	// Word matching keeps "clock" away from the lock rule.
	result := r.Route(context.Background(), "where is the clock widget")
	require.Equal(t, "Sorry, I don't know that yet.", result.Message)
	require.Empty(t, runner.Calls)
}

func TestRouteUnknownQuery(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	result := r.Route(context.Background(), "make me a sandwich")
	require.False(t, result.OK)
	require.Equal(t, "Sorry, I don't know that yet.", result.Message)
}

func TestRouteEmptyQuery(t *testing.T) {
	r := newTestRouter(&recordingResolver{}, nil, &shell.Recorder{})

	result := r.Route(context.Background(), "   ")
	require.Equal(t, action.ClassValidation, result.Class)
}

func TestIsExit(t *testing.T) {
	require.True(t, IsExit("exit"))
	require.True(t, IsExit("please quit now"))
	require.False(t, IsExit("open notepad"))
}
