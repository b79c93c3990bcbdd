// Package doctor runs runtime readiness diagnostics for config, platform
// tools, and the knowledge-lookup endpoint.
package doctor

import (
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/rbright/taskar/internal/config"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/registry"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// surfaceTools lists the binaries each control surface leans on per
// platform. A missing tool only degrades its surface at runtime; the
// doctor exists to make that degradation visible up front.
var surfaceTools = map[platform.Identity]map[string][]string{
	platform.Linux: {
		"volume":     {"amixer"},
		"brightness": {"xrandr"},
		"media":      {"playerctl"},
		"window":     {"xdotool"},
		"power":      {"systemctl", "loginctl"},
	},
	platform.Darwin: {
		"volume":     {"osascript"},
		"brightness": {"brightness"},
		"media":      {"osascript"},
		"window":     {"osascript"},
		"power":      {"osascript", "pmset"},
	},
	platform.Windows: {
		"brightness": {"powershell"},
		"media":      {"powershell"},
		"window":     {"powershell"},
		"power":      {"shutdown"},
	},
}

// Run executes environment/config/runtime checks for a loaded config.
func Run(cfg config.Loaded, id platform.Identity, reg *registry.Registry) Report {
	checks := []Check{}

	checks = append(checks, Check{
		Name:    "config",
		Pass:    true,
		Message: fmt.Sprintf("loaded %q", cfg.Path),
	})
	checks = append(checks, Check{
		Name:    "platform",
		Pass:    true,
		Message: id.String(),
	})

	checks = append(checks, checkRegistry(id, reg))

	for _, surface := range []string{"volume", "brightness", "media", "window", "power"} {
		for _, bin := range surfaceTools[id][surface] {
			checks = append(checks, checkBinary(bin, fmt.Sprintf("%s surface tool", surface)))
		}
	}

	if cfg.Config.Notify.Enable {
		checks = append(checks, checkBinary("busctl", "desktop notification mirror"))
	}

	checks = append(checks, checkWikiReachable(cfg.Config.Wiki))

	return Report{Checks: checks}
}

// checkRegistry verifies every launch entry declares candidates for the
// active platform; web entries always pass.
func checkRegistry(id platform.Identity, reg *registry.Registry) Check {
	var missing []string
	total := 0
	for _, entry := range reg.Entries() {
		total++
		if entry.Descriptor.IsWeb() {
			continue
		}
		if len(entry.Descriptor.CandidatesFor(id)) == 0 {
			missing = append(missing, entry.Key)
		}
	}

	if len(missing) > 0 {
		return Check{
			Name:    "registry",
			Pass:    false,
			Message: fmt.Sprintf("%d entries; no %s candidates for: %s", total, id, strings.Join(missing, ", ")),
		}
	}
	return Check{
		Name:    "registry",
		Pass:    true,
		Message: fmt.Sprintf("%d entries, all with %s candidates", total, id),
	}
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(bin string, okMsg string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s (%s)", path, okMsg)}
}

// checkWikiReachable probes the configured knowledge-lookup base URL.
func checkWikiReachable(cfg config.WikiConfig) Check {
	base := strings.TrimSpace(cfg.URL)
	if base == "" {
		return Check{Name: "wiki.ready", Pass: false, Message: "wiki.url is empty"}
	}

	client := http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(strings.TrimRight(base, "/") + "/api/rest_v1/page/summary/Wikipedia")
	if err != nil {
		return Check{Name: "wiki.ready", Pass: false, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Check{Name: "wiki.ready", Pass: false, Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, base)}
	}
	return Check{Name: "wiki.ready", Pass: true, Message: fmt.Sprintf("reachable at %s", base)}
}
