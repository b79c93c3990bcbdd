// Package brightness is the display backlight control surface.
package brightness

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/shell"
)

// Surface sets display brightness through per-platform mechanisms: a WMI
// driver call on Windows, an xrandr output query plus percentage scale on
// Linux, and the brightness scripting bridge on macOS.
type Surface struct {
	platform platform.Identity
	runner   shell.Runner
}

// New builds the surface for one platform over a command runner.
func New(id platform.Identity, runner shell.Runner) *Surface {
	return &Surface{platform: id, runner: runner}
}

// Set applies an absolute brightness level in [0,100].
func (s *Surface) Set(ctx context.Context, level int) action.Result {
	if level < 0 || level > 100 {
		return action.Failure(action.ClassValidation, "Brightness must be between 0 and 100, got %d.", level)
	}

	var err error
	switch s.platform {
	case platform.Windows:
		_, err = s.runner.Run(ctx, []string{
			"powershell", "-NoProfile", "-Command",
			fmt.Sprintf("(Get-WmiObject -Namespace root/WMI -Class WmiMonitorBrightnessMethods).WmiSetBrightness(1,%d)", level),
		})
	case platform.Darwin:
		_, err = s.runner.Run(ctx, []string{"brightness", fmt.Sprintf("%.2f", float64(level)/100)})
	case platform.Linux:
		var output string
		output, err = s.activeOutput(ctx)
		if err == nil {
			_, err = s.runner.Run(ctx, []string{
				"xrandr", "--output", output, "--brightness", fmt.Sprintf("%.2f", float64(level)/100),
			})
		}
	default:
		return action.Failure(action.ClassUnsupported, "Brightness control is not supported on %s.", s.platform)
	}

	if err != nil {
		if errors.Is(err, shell.ErrToolMissing) {
			return action.Unavailable("brightness control", err.Error())
		}
		return action.Failure(action.ClassLaunchError, "Setting the brightness failed (%v).", err)
	}
	return action.Success("Brightness set to %d%%.", level)
}

// activeOutput finds the first connected display output. No connected
// output is a reported failure, not an exception.
func (s *Surface) activeOutput(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, []string{"xrandr", "--query"})
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "connected" {
			return fields[0], nil
		}
	}
	return "", fmt.Errorf("no connected display output found")
}
