package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rbright/taskar/internal/brightness"
	"github.com/rbright/taskar/internal/cli"
	"github.com/rbright/taskar/internal/config"
	"github.com/rbright/taskar/internal/desktop"
	"github.com/rbright/taskar/internal/doctor"
	"github.com/rbright/taskar/internal/launch"
	"github.com/rbright/taskar/internal/logging"
	"github.com/rbright/taskar/internal/media"
	"github.com/rbright/taskar/internal/notify"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/power"
	"github.com/rbright/taskar/internal/registry"
	"github.com/rbright/taskar/internal/resolver"
	"github.com/rbright/taskar/internal/router"
	"github.com/rbright/taskar/internal/shell"
	"github.com/rbright/taskar/internal/version"
	"github.com/rbright/taskar/internal/volume"
	"github.com/rbright/taskar/internal/wiki"
)

type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	r := Runner{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("taskar"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("taskar"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	id := platform.Detect()
	if parsed.Platform != "" {
		id, err = platform.Parse(parsed.Platform)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: %v\n", err)
			return 2
		}
	}

	reg := registry.New(registry.Builtin(), registry.FromConfig(cfgLoaded.Config))

	logger.Info("command start",
		"command", parsed.Command,
		"platform", id.String(),
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(cfgLoaded, id, reg)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandAsk:
		return r.commandAsk(ctx, cfgLoaded.Config, id, reg, parsed.Query, logger)
	case cli.CommandRun:
		return r.commandRun(ctx, cfgLoaded.Config, id, reg, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// buildRouter wires the dispatcher: registry resolution, control
// surfaces, and the knowledge collaborator.
func buildRouter(cfg config.Config, id platform.Identity, reg *registry.Registry, logger *slog.Logger) *router.Router {
	runner := shell.Exec{}

	return &router.Router{
		Resolver: &resolver.Resolver{
			Registry:  reg,
			Platform:  id,
			Launcher:  launch.Detached{Platform: id},
			Opener:    resolver.BrowserOpener{},
			SearchURL: cfg.Search.URL,
			Logger:    logger,
		},
		Knowledge:  wiki.New(cfg.Wiki.URL, cfg.Wiki.Sentences, cfg.Wiki.MaxOptions),
		Volume:     volume.New(logger),
		Brightness: brightness.New(id, runner),
		Power:      power.New(id, runner),
		Media:      media.New(id, runner),
		Desktop:    desktop.New(id, runner, cfg.Screenshot.Dir, logger),
		Logger:     logger,
	}
}

func (r Runner) commandAsk(ctx context.Context, cfg config.Config, id platform.Identity, reg *registry.Registry, query string, logger *slog.Logger) int {
	rt := buildRouter(cfg, id, reg, logger)

	result := rt.Route(ctx, query)
	logger.Info("query handled", "query", query, "ok", result.OK, "fallback", result.Fallback, "class", string(result.Class))
	fmt.Fprintln(r.Stdout, result.Message)
	if result.OK {
		return 0
	}
	return 1
}

// commandRun is the interactive loop. Only an exit/quit phrase ends it;
// failed queries print their message and the loop continues.
func (r Runner) commandRun(ctx context.Context, cfg config.Config, id platform.Identity, reg *registry.Registry, logger *slog.Logger) int {
	rt := buildRouter(cfg, id, reg, logger)

	var notifier *notify.Notifier
	if cfg.Notify.Enable {
		notifier = &notify.Notifier{
			AppName:   cfg.Notify.AppName,
			TimeoutMS: cfg.Notify.TimeoutMS,
			Runner:    shell.Exec{},
			Logger:    logger,
		}
	}

	respond := func(text string) {
		fmt.Fprintln(r.Stdout, text)
		if notifier != nil {
			notifier.Send(ctx, text)
		}
	}

	respond(fmt.Sprintf("Hello! I am %s. How can I help you today?", cfg.Assistant.Name))

	scanner := bufio.NewScanner(r.Stdin)
	for {
		fmt.Fprint(r.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if router.IsExit(query) {
			respond("Goodbye! Have a nice day.")
			return 0
		}

		result := rt.Route(ctx, query)
		logger.Info("query handled", "query", query, "ok", result.OK, "fallback", result.Fallback, "class", string(result.Class))
		respond(result.Message)

		if ctx.Err() != nil {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(r.Stderr, "error: read input: %v\n", err)
		return 1
	}
	respond("Goodbye! Have a nice day.")
	return 0
}
