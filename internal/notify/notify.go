// Package notify mirrors assistant responses to desktop notifications.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rbright/taskar/internal/shell"
)

// Notifier sends freedesktop notifications over DBus via busctl. Failures
// are logged and swallowed; notification is a best-effort mirror, never a
// reason to fail a query.
type Notifier struct {
	AppName   string
	TimeoutMS int
	Runner    shell.Runner
	Logger    *slog.Logger
}

// Send posts one notification with the response text as its summary.
func (n *Notifier) Send(ctx context.Context, summary string) {
	args := []string{
		"busctl",
		"--user",
		"call",
		"org.freedesktop.Notifications",
		"/org/freedesktop/Notifications",
		"org.freedesktop.Notifications",
		"Notify",
		"susssasa{sv}i",
		n.AppName,
		"0",
		"",
		summary,
		"",
		"0", // actions array length
		"0", // hints map length
		fmt.Sprintf("%d", n.TimeoutMS),
	}

	if _, err := n.Runner.Run(ctx, args); err != nil {
		if n.Logger != nil {
			n.Logger.Warn("desktop notify failed", "error", err.Error())
		}
	}
}
