// Package launch probes candidate commands and starts them detached.
package launch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rbright/taskar/internal/platform"
)

// Outcome is the tri-state result of probing one candidate command.
type Outcome int

const (
	// NotFound means the executable is absent; no start was attempted.
	NotFound Outcome = iota
	// Launched means the process was created; the dispatcher's job ends here.
	Launched
	// LaunchError means a start was attempted and failed.
	LaunchError
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case Launched:
		return "launched"
	case LaunchError:
		return "launch_error"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Probe is one candidate attempt: the outcome plus failure detail when
// the outcome is LaunchError.
type Probe struct {
	Outcome Outcome
	Err     error
}

// Launcher starts candidate commands fire-and-forget. The resolver walks
// candidates through this interface so tests can script probe outcomes.
type Launcher interface {
	Launch(ctx context.Context, argv []string) Probe
}

// windowsBuiltins are shell aliases resolvable only through cmd.exe, so a
// PATH lookup miss must not rule them out on Windows.
var windowsBuiltins = map[string]struct{}{
	"start": {},
	"cmd":   {},
}

// Detached is the production Launcher. It gates on PATH presence and then
// starts the process without waiting for it; launched applications outlive
// the assistant and their exit status is not taskar's concern.
type Detached struct {
	Platform platform.Identity
}

func (d Detached) Launch(ctx context.Context, argv []string) Probe {
	if len(argv) == 0 {
		return Probe{Outcome: NotFound}
	}

	exe := argv[0]
	if _, err := exec.LookPath(exe); err != nil {
		if !d.isWindowsBuiltin(exe) {
			return Probe{Outcome: NotFound}
		}
	}

	cmd := exec.CommandContext(ctx, exe, argv[1:]...)
	if err := cmd.Start(); err != nil {
		return Probe{Outcome: LaunchError, Err: fmt.Errorf("start %s: %w", exe, err)}
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return Probe{Outcome: Launched}
}

func (d Detached) isWindowsBuiltin(exe string) bool {
	if d.Platform != platform.Windows {
		return false
	}
	_, ok := windowsBuiltins[strings.ToLower(exe)]
	return ok
}
