package desktop

import (
	"context"
	"errors"
	"strings"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/shell"
)

// WindowAction is one operation on the currently focused window.
type WindowAction string

const (
	Minimize WindowAction = "minimize"
	Maximize WindowAction = "maximize"
	Close    WindowAction = "close"
)

// windowCommands maps actions onto the platform's focused-window tool:
// xdotool on Linux, keystroke bridges on macOS and Windows.
var windowCommands = map[platform.Identity]map[WindowAction][]string{
	platform.Linux: {
		Minimize: {"xdotool", "getactivewindow", "windowminimize"},
		Maximize: {"xdotool", "getactivewindow", "windowsize", "100%", "100%"},
		Close:    {"xdotool", "getactivewindow", "windowclose"},
	},
	platform.Darwin: {
		Minimize: {"osascript", "-e", `tell application "System Events" to keystroke "m" using command down`},
		Maximize: {"osascript", "-e", `tell application "System Events" to keystroke "f" using {command down, control down}`},
		Close:    {"osascript", "-e", `tell application "System Events" to keystroke "w" using command down`},
	},
	platform.Windows: {
		Minimize: {"powershell", "-NoProfile", "-Command", `(New-Object -ComObject WScript.Shell).SendKeys('% n')`},
		Maximize: {"powershell", "-NoProfile", "-Command", `(New-Object -ComObject WScript.Shell).SendKeys('% x')`},
		Close:    {"powershell", "-NoProfile", "-Command", `(New-Object -ComObject WScript.Shell).SendKeys('%{F4}')`},
	},
}

// Window performs one action on the focused window. No focused window is
// a reported outcome, not a crash.
func (s *Surface) Window(ctx context.Context, act WindowAction) action.Result {
	argv, ok := windowCommands[s.platform][act]
	if !ok {
		return action.Failure(action.ClassUnsupported, "Window %s is not supported on %s.", act, s.platform)
	}

	if _, err := s.runner.Run(ctx, argv); err != nil {
		if errors.Is(err, shell.ErrToolMissing) {
			return action.Unavailable("window control", err.Error())
		}
		if isNoFocusedWindow(err) {
			return action.Failure(action.ClassNotFound, "There is no focused window to %s.", act)
		}
		return action.Failure(action.ClassLaunchError, "Window %s failed (%v).", act, err)
	}
	return action.Success("Window: %s.", act)
}

// isNoFocusedWindow matches the tool's own no-target stderr. The runner
// wraps failures with the argv, so matching must key on tool output
// markers only; any other failure stays a launch error.
func isNoFocusedWindow(err error) bool {
	text := strings.ToLower(err.Error())
	for _, marker := range []string{
		"xgetinputfocus",
		"cannot get focused window",
		"no active window",
		"no window focused",
	} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
