package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rbright/taskar/internal/platform"
)

// Parse reads key=value configuration content over a base config.
//
// Top-level assignments set scalar settings. `app NAME { ... }` blocks
// declare launch targets (one platform assignment per candidate, repeats
// append in order) and `site NAME { ... }` blocks declare web targets.
func Parse(content string, base Config) (Config, []Warning, error) {
	cfg := base

	var (
		inApp   bool
		inSite  bool
		app     AppConfig
		site    SiteConfig
		opening int
	)

	for i, rawLine := range strings.Split(content, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case inApp:
			if line == "}" {
				if len(app.Commands) == 0 {
					return Config{}, nil, fmt.Errorf("line %d: app %q declares no commands", lineNo, app.Name)
				}
				cfg.Apps = append(cfg.Apps, app)
				inApp = false
				continue
			}
			if err := parseAppLine(&app, line); err != nil {
				return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case inSite:
			if line == "}" {
				if strings.TrimSpace(site.URL) == "" {
					return Config{}, nil, fmt.Errorf("line %d: site %q declares no url", lineNo, site.Name)
				}
				cfg.Sites = append(cfg.Sites, site)
				inSite = false
				continue
			}
			key, value, err := splitAssignment(line)
			if err != nil {
				return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if key != "url" {
				return Config{}, nil, fmt.Errorf("line %d: unknown key %q in site block", lineNo, key)
			}
			site.URL = value
		case strings.HasPrefix(line, "app ") || strings.HasPrefix(line, "site "):
			name, isApp, err := parseBlockHeader(line)
			if err != nil {
				return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			opening = lineNo
			if isApp {
				inApp = true
				app = AppConfig{Name: name, Commands: map[platform.Identity][]CommandConfig{}}
			} else {
				inSite = true
				site = SiteConfig{Name: name}
			}
		default:
			key, value, err := splitAssignment(line)
			if err != nil {
				return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := applySetting(&cfg, key, value); err != nil {
				return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}

	if inApp {
		return Config{}, nil, fmt.Errorf("line %d: unclosed app block %q", opening, app.Name)
	}
	if inSite {
		return Config{}, nil, fmt.Errorf("line %d: unclosed site block %q", opening, site.Name)
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

// parseBlockHeader parses `app NAME {` or `site NAME {`.
func parseBlockHeader(line string) (name string, isApp bool, err error) {
	if !strings.HasSuffix(line, "{") {
		return "", false, fmt.Errorf("expected '{' at end of block header: %q", line)
	}
	fields, err := parseArgv(strings.TrimSpace(strings.TrimSuffix(line, "{")))
	if err != nil {
		return "", false, err
	}
	if len(fields) != 2 {
		return "", false, fmt.Errorf("expected '<app|site> NAME {': %q", line)
	}
	name = strings.ToLower(strings.TrimSpace(fields[1]))
	if name == "" {
		return "", false, fmt.Errorf("block name must not be empty")
	}
	return name, fields[0] == "app", nil
}

// parseAppLine handles one platform = command assignment inside an app block.
func parseAppLine(app *AppConfig, line string) error {
	key, value, err := splitAssignment(line)
	if err != nil {
		return err
	}

	id, err := platform.Parse(key)
	if err != nil {
		return fmt.Errorf("unknown key %q in app block (expected windows, mac, or linux)", key)
	}

	argv, err := parseArgv(value)
	if err != nil {
		return err
	}
	if len(argv) == 0 {
		return fmt.Errorf("%s command must not be empty", key)
	}

	app.Commands[id] = append(app.Commands[id], CommandConfig{Raw: value, Argv: argv})
	return nil
}

// splitAssignment parses `key = value`, unquoting the value.
func splitAssignment(line string) (string, string, error) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", fmt.Errorf("expected key = value, got %q", line)
	}
	return strings.ToLower(strings.TrimSpace(key)), unquote(strings.TrimSpace(value)), nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// applySetting routes one top-level assignment to its config field.
func applySetting(cfg *Config, key string, value string) error {
	switch key {
	case "assistant.name":
		cfg.Assistant.Name = value
	case "notify.enable":
		return parseBool(key, value, &cfg.Notify.Enable)
	case "notify.app_name":
		cfg.Notify.AppName = value
	case "notify.timeout_ms":
		return parseInt(key, value, &cfg.Notify.TimeoutMS)
	case "screenshot.dir":
		cfg.Screenshot.Dir = value
	case "wiki.url":
		cfg.Wiki.URL = value
	case "wiki.sentences":
		return parseInt(key, value, &cfg.Wiki.Sentences)
	case "wiki.max_options":
		return parseInt(key, value, &cfg.Wiki.MaxOptions)
	case "search.url":
		cfg.Search.URL = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func parseBool(key, value string, dst *bool) error {
	parsed, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return fmt.Errorf("%s expects true or false, got %q", key, value)
	}
	*dst = parsed
	return nil
}

func parseInt(key, value string, dst *int) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s expects an integer, got %q", key, value)
	}
	*dst = parsed
	return nil
}
