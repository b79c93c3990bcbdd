package registry

import (
	"strings"

	"github.com/rbright/taskar/internal/config"
	"github.com/rbright/taskar/internal/platform"
)

// FromConfig converts user-declared app and site blocks into registry
// entries, preserving their declaration order (apps first, then sites,
// as the parser appends them).
func FromConfig(cfg config.Config) []Entry {
	entries := make([]Entry, 0, len(cfg.Apps)+len(cfg.Sites))

	for _, app := range cfg.Apps {
		candidates := map[platform.Identity][][]string{}
		for id, commands := range app.Commands {
			for _, command := range commands {
				candidates[id] = append(candidates[id], command.Argv)
			}
		}
		entries = append(entries, Entry{
			Key:        strings.ToLower(app.Name),
			Descriptor: Descriptor{Candidates: candidates},
		})
	}

	for _, site := range cfg.Sites {
		entries = append(entries, Entry{
			Key:        strings.ToLower(site.Name),
			Descriptor: Descriptor{URL: site.URL},
		})
	}

	return entries
}
