package config

import (
	"fmt"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.Assistant.Name) == "" {
		return nil, fmt.Errorf("assistant.name must not be empty")
	}
	if cfg.Notify.Enable && strings.TrimSpace(cfg.Notify.AppName) == "" {
		return nil, fmt.Errorf("notify.app_name must not be empty when notify.enable=true")
	}
	if cfg.Notify.TimeoutMS < 0 {
		return nil, fmt.Errorf("notify.timeout_ms must be >= 0")
	}
	if !isHTTPURL(cfg.Wiki.URL) {
		return nil, fmt.Errorf("wiki.url must start with http:// or https://")
	}
	if cfg.Wiki.Sentences <= 0 {
		return nil, fmt.Errorf("wiki.sentences must be > 0")
	}
	if cfg.Wiki.MaxOptions <= 0 {
		return nil, fmt.Errorf("wiki.max_options must be > 0")
	}
	if !isHTTPURL(cfg.Search.URL) {
		return nil, fmt.Errorf("search.url must start with http:// or https://")
	}

	seen := map[string]struct{}{}
	for _, app := range cfg.Apps {
		if _, dup := seen[app.Name]; dup {
			warnings = append(warnings, Warning{
				Message: fmt.Sprintf("app %q declared more than once; later declaration shadows nothing (first match wins)", app.Name),
			})
		}
		seen[app.Name] = struct{}{}
	}
	for _, site := range cfg.Sites {
		if !isHTTPURL(site.URL) {
			return nil, fmt.Errorf("site %q url must start with http:// or https://", site.Name)
		}
		if _, dup := seen[site.Name]; dup {
			warnings = append(warnings, Warning{
				Message: fmt.Sprintf("site %q duplicates an earlier app or site declaration", site.Name),
			})
		}
		seen[site.Name] = struct{}{}
	}

	return warnings, nil
}

func isHTTPURL(value string) bool {
	value = strings.TrimSpace(value)
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
