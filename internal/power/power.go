// Package power is the session/power-state control surface.
package power

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/shell"
)

// Action is one power operation.
type Action string

const (
	Shutdown Action = "shutdown"
	Restart  Action = "restart"
	Suspend  Action = "suspend"
	Lock     Action = "lock"
)

// Irreversible reports whether the action discards the running session.
// Callers that want a confirmation gate key off this.
func (a Action) Irreversible() bool {
	return a == Shutdown || a == Restart
}

// commands is the per-platform argv table. Missing entries mean the
// action is unsupported on that platform.
var commands = map[platform.Identity]map[Action][]string{
	platform.Windows: {
		Shutdown: {"shutdown", "/s", "/t", "1"},
		Restart:  {"shutdown", "/r", "/t", "1"},
		Suspend:  {"shutdown", "/h"},
		Lock:     {"rundll32.exe", "user32.dll,LockWorkStation"},
	},
	platform.Darwin: {
		Shutdown: {"osascript", "-e", `tell app "System Events" to shut down`},
		Restart:  {"osascript", "-e", `tell app "System Events" to restart`},
		Suspend:  {"pmset", "sleepnow"},
		Lock:     {"pmset", "displaysleepnow"},
	},
	platform.Linux: {
		Shutdown: {"systemctl", "poweroff"},
		Restart:  {"systemctl", "reboot"},
		Suspend:  {"systemctl", "suspend"},
		Lock:     {"loginctl", "lock-session"},
	},
}

// Surface performs power actions through per-platform commands.
type Surface struct {
	platform platform.Identity
	runner   shell.Runner
}

// New builds the surface for one platform over a command runner.
func New(id platform.Identity, runner shell.Runner) *Surface {
	return &Surface{platform: id, runner: runner}
}

// Perform executes one power action. Privilege refusals are reported
// distinctly from "unsupported on this platform".
func (s *Surface) Perform(ctx context.Context, act Action) action.Result {
	argv, ok := commands[s.platform][act]
	if !ok {
		return action.Failure(action.ClassUnsupported, "%s is not supported on %s.", titleOf(act), s.platform)
	}

	if _, err := s.runner.Run(ctx, argv); err != nil {
		if errors.Is(err, shell.ErrToolMissing) {
			return action.Unavailable(fmt.Sprintf("%s control", act), err.Error())
		}
		if isPrivilegeError(err) {
			return action.Failure(action.ClassPrivilege,
				"%s was refused: insufficient privileges (%v).", titleOf(act), err)
		}
		return action.Failure(action.ClassLaunchError, "%s failed (%v).", titleOf(act), err)
	}

	switch act {
	case Shutdown:
		return action.Success("Shutting down.")
	case Restart:
		return action.Success("Restarting.")
	case Suspend:
		return action.Success("Suspending.")
	default:
		return action.Success("Locking the session.")
	}
}

// isPrivilegeError sniffs the wrapped tool output for access refusals.
func isPrivilegeError(err error) bool {
	text := strings.ToLower(err.Error())
	for _, marker := range []string{
		"denied",
		"not permitted",
		"privilege",
		"authentication required",
		"must be root",
	} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func titleOf(act Action) string {
	text := string(act)
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
