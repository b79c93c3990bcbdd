// Package resolver turns action keys into launched processes or opened
// websites through an ordered candidate fallback walk.
package resolver

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/launch"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/registry"
)

// Opener issues a fire-and-forget web open request. The result reflects
// only that the request was issued, never that a browser rendered it.
type Opener interface {
	Open(url string) error
}

// Resolver walks the capability registry for the active platform.
type Resolver struct {
	Registry  *registry.Registry
	Platform  platform.Identity
	Launcher  launch.Launcher
	Opener    Opener
	SearchURL string
	Logger    *slog.Logger
}

// Resolve maps an action key onto a concrete action. Candidates are tried
// in declaration order; the first successful launch wins. Keys with no
// registry match get one raw-token probe, then an explicitly marked
// web-search fallback.
func (r *Resolver) Resolve(ctx context.Context, actionKey string) action.Result {
	key := strings.ToLower(strings.TrimSpace(actionKey))
	if key == "" {
		return action.Failure(action.ClassValidation, "Tell me what to open.")
	}

	entry, ok := r.Registry.Lookup(key)
	if !ok {
		return r.resolveUnmatched(ctx, key)
	}

	if entry.Descriptor.IsWeb() {
		if err := r.Opener.Open(entry.Descriptor.URL); err != nil {
			r.log("web open failed", "key", entry.Key, "url", entry.Descriptor.URL, "error", err.Error())
			return action.Failure(action.ClassLaunchError, "I couldn't open %s (%v).", entry.Descriptor.URL, err)
		}
		return action.Success("Opening website: %s", entry.Key)
	}

	return r.walkCandidates(ctx, entry)
}

// walkCandidates is the fallback walk: NotFound and LaunchError candidates
// are skipped (logged, not surfaced individually) and the walk continues;
// the first Launched outcome short-circuits. A launch failure is surfaced
// only when the final candidate produced it.
func (r *Resolver) walkCandidates(ctx context.Context, entry registry.Entry) action.Result {
	var lastErr error
	for _, argv := range entry.Descriptor.CandidatesFor(r.Platform) {
		probe := r.Launcher.Launch(ctx, argv)
		switch probe.Outcome {
		case launch.Launched:
			return action.Success("Opening application: %s", entry.Key)
		case launch.LaunchError:
			lastErr = probe.Err
			r.log("candidate launch failed", "key", entry.Key, "argv", argv, "error", probe.Err.Error())
		default:
			lastErr = nil
			r.log("candidate not present", "key", entry.Key, "argv", argv)
		}
	}

	if lastErr != nil {
		return action.Failure(action.ClassLaunchError,
			"%s could not be started on this system (%v).", titleCase(entry.Key), lastErr)
	}
	return action.Failure(action.ClassNotFound,
		"%s not found on this system using the configured commands.", titleCase(entry.Key))
}

// resolveUnmatched probes the raw token as an executable, then falls back
// to a web search. The fallback is marked so callers can tell it apart
// from a confirmed resolution.
func (r *Resolver) resolveUnmatched(ctx context.Context, key string) action.Result {
	probe := r.Launcher.Launch(ctx, []string{key})
	if probe.Outcome == launch.Launched {
		return action.Success("Opening application: %s", key)
	}
	if probe.Outcome == launch.LaunchError {
		r.log("raw token launch failed", "key", key, "error", probe.Err.Error())
	}

	searchURL := r.SearchURL + url.QueryEscape(key)
	if err := r.Opener.Open(searchURL); err != nil {
		r.log("fallback search open failed", "key", key, "url", searchURL, "error", err.Error())
		return action.Failure(action.ClassNotFound,
			"I couldn't find %q and the web search fallback failed (%v).", key, err)
	}
	return action.FallbackSuccess("I couldn't find %q here, so I opened a web search: %s", key, searchURL)
}

func (r *Resolver) log(msg string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.Info(msg, args...)
}

func titleCase(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
