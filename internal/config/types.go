// Package config resolves, parses, validates, and defaults taskar configuration.
package config

import "github.com/rbright/taskar/internal/platform"

// Config is the fully materialized runtime configuration used by taskar.
type Config struct {
	Assistant  AssistantConfig
	Notify     NotifyConfig
	Screenshot ScreenshotConfig
	Wiki       WikiConfig
	Search     SearchConfig
	Apps       []AppConfig
	Sites      []SiteConfig
}

// AssistantConfig controls how the assistant presents itself.
type AssistantConfig struct {
	Name string
}

// NotifyConfig controls the optional desktop-notification mirror.
type NotifyConfig struct {
	Enable    bool
	AppName   string
	TimeoutMS int
}

// ScreenshotConfig controls where captures land when the caller gives no path.
type ScreenshotConfig struct {
	Dir string
}

// WikiConfig controls the knowledge-lookup collaborator endpoint.
type WikiConfig struct {
	URL        string
	Sentences  int
	MaxOptions int
}

// SearchConfig controls the web-search fallback for unresolved action keys.
type SearchConfig struct {
	URL string
}

// CommandConfig stores a raw command string and its parsed argv form.
type CommandConfig struct {
	Raw  string
	Argv []string
}

// AppConfig is one user-declared launch target: ordered candidate commands
// per platform, appended to the builtin registry in declaration order.
type AppConfig struct {
	Name     string
	Commands map[platform.Identity][]CommandConfig
}

// SiteConfig is one user-declared web target.
type SiteConfig struct {
	Name string
	URL  string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
