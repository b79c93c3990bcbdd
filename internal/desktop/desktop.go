// Package desktop is the window, screenshot, and system-status control surface.
package desktop

import (
	"log/slog"

	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/shell"
)

// Surface bundles focused-window control, display capture, and system
// metrics. Capturer and Metrics are optional host integrations: a nil
// field means the capability is absent and calls degrade to an
// "unavailable" result.
type Surface struct {
	platform platform.Identity
	runner   shell.Runner
	capturer Capturer
	metrics  Metrics
	shotDir  string
	logger   *slog.Logger
}

// New builds the surface with the default host integrations attached.
func New(id platform.Identity, runner shell.Runner, screenshotDir string, logger *slog.Logger) *Surface {
	return &Surface{
		platform: id,
		runner:   runner,
		capturer: displayCapturer{},
		metrics:  hostMetrics{},
		shotDir:  screenshotDir,
		logger:   logger,
	}
}

// NewWith builds the surface with explicit integrations; nil marks a
// capability as absent. Used by tests and degraded hosts.
func NewWith(id platform.Identity, runner shell.Runner, capturer Capturer, metrics Metrics, screenshotDir string, logger *slog.Logger) *Surface {
	return &Surface{
		platform: id,
		runner:   runner,
		capturer: capturer,
		metrics:  metrics,
		shotDir:  screenshotDir,
		logger:   logger,
	}
}
