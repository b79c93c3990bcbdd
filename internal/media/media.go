// Package media is the playback control surface.
package media

import (
	"context"
	"errors"
	"strings"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/shell"
)

// Action is one playback operation.
type Action string

const (
	Play      Action = "play"
	Pause     Action = "pause"
	PlayPause Action = "play-pause"
	Stop      Action = "stop"
	Next      Action = "next"
	Previous  Action = "previous"
)

// sendKeys simulates a Windows media key through WScript.Shell.
func sendKeys(code string) []string {
	return []string{
		"powershell", "-NoProfile", "-Command",
		"(New-Object -ComObject WScript.Shell).SendKeys([char]" + code + ")",
	}
}

// commands maps actions to the platform's media bridge: playerctl on
// Linux, the Music scripting bridge on macOS, media-key simulation on
// Windows (where play and pause are both the toggle key).
var commands = map[platform.Identity]map[Action][]string{
	platform.Linux: {
		Play:      {"playerctl", "play"},
		Pause:     {"playerctl", "pause"},
		PlayPause: {"playerctl", "play-pause"},
		Stop:      {"playerctl", "stop"},
		Next:      {"playerctl", "next"},
		Previous:  {"playerctl", "previous"},
	},
	platform.Darwin: {
		Play:      {"osascript", "-e", `tell application "Music" to play`},
		Pause:     {"osascript", "-e", `tell application "Music" to pause`},
		PlayPause: {"osascript", "-e", `tell application "Music" to playpause`},
		Stop:      {"osascript", "-e", `tell application "Music" to stop`},
		Next:      {"osascript", "-e", `tell application "Music" to next track`},
		Previous:  {"osascript", "-e", `tell application "Music" to previous track`},
	},
	platform.Windows: {
		Play:      sendKeys("179"),
		Pause:     sendKeys("179"),
		PlayPause: sendKeys("179"),
		Stop:      sendKeys("178"),
		Next:      sendKeys("176"),
		Previous:  sendKeys("177"),
	},
}

// Surface performs media actions through per-platform commands.
type Surface struct {
	platform platform.Identity
	runner   shell.Runner
}

// New builds the surface for one platform over a command runner.
func New(id platform.Identity, runner shell.Runner) *Surface {
	return &Surface{platform: id, runner: runner}
}

// Perform executes one playback action. "No active player" is reported
// distinctly from the bridge tool being missing.
func (s *Surface) Perform(ctx context.Context, act Action) action.Result {
	argv, ok := commands[s.platform][act]
	if !ok {
		return action.Failure(action.ClassUnsupported, "Media %s is not supported on %s.", act, s.platform)
	}

	if _, err := s.runner.Run(ctx, argv); err != nil {
		if errors.Is(err, shell.ErrToolMissing) {
			return action.Unavailable("media control", err.Error())
		}
		if isNoPlayer(err) {
			return action.Failure(action.ClassNotFound, "There is no active media player to control.")
		}
		return action.Failure(action.ClassLaunchError, "Media %s failed (%v).", act, err)
	}
	return action.Success("Media: %s.", act)
}

// isNoPlayer matches the bridge tool's no-target replies.
func isNoPlayer(err error) bool {
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "no players found") ||
		strings.Contains(text, "no player could handle") ||
		strings.Contains(text, "isn't running")
}
