// Package router classifies free-text queries into intents and dispatches
// them to the resolver and control surfaces.
package router

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/brightness"
	"github.com/rbright/taskar/internal/desktop"
	"github.com/rbright/taskar/internal/media"
	"github.com/rbright/taskar/internal/power"
	"github.com/rbright/taskar/internal/volume"
	"github.com/rbright/taskar/internal/wiki"
)

// Knowledge is the external factual-lookup collaborator.
type Knowledge interface {
	Summary(ctx context.Context, topic string) (string, error)
}

// AppResolver resolves open-application/open-website intents.
type AppResolver interface {
	Resolve(ctx context.Context, actionKey string) action.Result
}

// Router dispatches one query at a time. Rules are ordered; the first
// matching rule wins. Knowledge may be nil when the collaborator is
// absent, which degrades lookups to an "unavailable" result.
type Router struct {
	Resolver   AppResolver
	Knowledge  Knowledge
	Volume     *volume.Surface
	Brightness *brightness.Surface
	Power      *power.Surface
	Media      *media.Surface
	Desktop    *desktop.Surface
	Now        func() time.Time
	Logger     *slog.Logger
}

// IsExit reports whether the query asks to end the session. The
// surrounding loop owns termination; Route never does.
func IsExit(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(q, "exit") || strings.Contains(q, "quit")
}

// Route classifies and executes one query. Every failure is converted to
// a user-facing result here or below; nothing escapes the call.
func (r *Router) Route(ctx context.Context, query string) action.Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return action.Failure(action.ClassValidation, "Say something and I'll try to help.")
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	switch {
	case strings.Contains(q, "time"):
		return action.Success("The current time is %s", now().Format("15:04"))
	case strings.Contains(q, "date"):
		return action.Success("Today's date is %s", now().Format("02 January 2006"))
	case strings.Contains(q, "wikipedia"):
		return r.lookup(ctx, strings.TrimSpace(strings.ReplaceAll(q, "wikipedia", "")))
	}

	if result, handled := r.routeSurface(ctx, q); handled {
		return result
	}

	switch {
	case strings.Contains(q, "open"):
		return r.Resolver.Resolve(ctx, strings.TrimSpace(strings.ReplaceAll(q, "open", "")))
	case strings.Contains(q, "launch"):
		return r.Resolver.Resolve(ctx, strings.TrimSpace(strings.ReplaceAll(q, "launch", "")))
	}

	return action.Failure(action.ClassNotFound, "Sorry, I don't know that yet.")
}

// lookup runs the knowledge collaborator, converting its failures into an
// apologetic message with the detail inlined.
func (r *Router) lookup(ctx context.Context, topic string) action.Result {
	if r.Knowledge == nil {
		return action.Unavailable("knowledge lookup", "")
	}
	if topic == "" {
		return action.Failure(action.ClassValidation, "Tell me a topic to look up.")
	}

	summary, err := r.Knowledge.Summary(ctx, topic)
	if err != nil {
		var ambiguous *wiki.AmbiguousError
		if errors.As(err, &ambiguous) {
			return action.Failure(action.ClassAmbiguous,
				"%q could mean several things: %s. Which one did you mean?",
				ambiguous.Topic, strings.Join(ambiguous.Options, ", "))
		}
		if r.Logger != nil {
			r.Logger.Warn("knowledge lookup failed", "topic", topic, "error", err.Error())
		}
		return action.Failure(action.ClassNotFound, "Sorry, I couldn't fetch that information. (%v)", err)
	}
	return action.Success("According to Wikipedia: %s", summary)
}
