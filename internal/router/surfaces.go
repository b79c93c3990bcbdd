package router

import (
	"context"
	"strconv"
	"strings"

	"github.com/rbright/taskar/internal/action"
	"github.com/rbright/taskar/internal/desktop"
	"github.com/rbright/taskar/internal/media"
	"github.com/rbright/taskar/internal/power"
)

// routeSurface matches the control-surface vocabularies. Surface triggers
// use whole-word matching so that e.g. "clock" never trips the "lock"
// rule; the open/time/date/wikipedia core triggers keep their original
// substring behavior in Route.
func (r *Router) routeSurface(ctx context.Context, q string) (action.Result, bool) {
	words := wordSet(q)

	switch {
	case words["unmute"]:
		return r.Volume.Unmute(), true
	case words["mute"]:
		return r.Volume.Mute(), true
	case words["volume"]:
		return r.routeVolume(q, words), true
	case words["brightness"]:
		if level, ok := firstNumber(q); ok {
			return r.Brightness.Set(ctx, level), true
		}
		return action.Failure(action.ClassValidation, "Tell me a brightness level between 0 and 100."), true

	case words["screenshot"]:
		return r.Desktop.Screenshot(""), true
	case words["minimize"] || words["minimise"]:
		return r.Desktop.Window(ctx, desktop.Minimize), true
	case words["maximize"] || words["maximise"]:
		return r.Desktop.Window(ctx, desktop.Maximize), true
	case words["close"] && words["window"]:
		return r.Desktop.Window(ctx, desktop.Close), true

	case words["battery"]:
		return r.Desktop.Status(desktop.Battery), true
	case words["memory"] || words["ram"]:
		return r.Desktop.Status(desktop.Memory), true
	case words["cpu"] || words["processor"]:
		return r.Desktop.Status(desktop.CPU), true

	case words["shutdown"] || (words["shut"] && words["down"]):
		return r.Power.Perform(ctx, power.Shutdown), true
	case words["restart"] || words["reboot"]:
		return r.Power.Perform(ctx, power.Restart), true
	case words["hibernate"] || words["suspend"] || words["sleep"]:
		return r.Power.Perform(ctx, power.Suspend), true
	case words["lock"]:
		return r.Power.Perform(ctx, power.Lock), true

	case words["pause"]:
		return r.Media.Perform(ctx, media.Pause), true
	case words["resume"]:
		return r.Media.Perform(ctx, media.Play), true
	case words["play"]:
		return r.Media.Perform(ctx, media.PlayPause), true
	case words["stop"] && (words["music"] || words["media"] || words["playback"] || words["song"]):
		return r.Media.Perform(ctx, media.Stop), true
	case words["next"] && (words["track"] || words["song"] || words["music"]):
		return r.Media.Perform(ctx, media.Next), true
	case (words["previous"] || words["prev"]) && (words["track"] || words["song"] || words["music"]):
		return r.Media.Perform(ctx, media.Previous), true
	}

	return action.Result{}, false
}

// routeVolume picks between relative and absolute volume changes.
func (r *Router) routeVolume(q string, words map[string]bool) action.Result {
	switch {
	case words["up"] || words["increase"] || words["raise"] || words["louder"]:
		return r.Volume.Increase()
	case words["down"] || words["decrease"] || words["lower"] || words["quieter"]:
		return r.Volume.Decrease()
	}
	if level, ok := firstNumber(q); ok {
		return r.Volume.Set(level)
	}
	return action.Failure(action.ClassValidation, "Tell me a volume level between 0 and 100, or say up or down.")
}

// wordSet splits a query into lowercase words, stripping punctuation.
func wordSet(q string) map[string]bool {
	words := map[string]bool{}
	for _, field := range strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '-')
	}) {
		words[field] = true
	}
	return words
}

// firstNumber extracts the first integer token from the query.
func firstNumber(q string) (int, bool) {
	for _, field := range strings.FieldsFunc(q, func(r rune) bool {
		return !('0' <= r && r <= '9')
	}) {
		if value, err := strconv.Atoi(field); err == nil {
			return value, true
		}
	}
	return 0, false
}
