package registry

import "github.com/rbright/taskar/internal/platform"

// Builtin returns the default action table. Order matters: containment
// lookup walks entries in this order. Concrete binaries are a data table;
// adding a target is an edit here or an `app`/`site` block in config,
// never a dispatch-code change.
func Builtin() []Entry {
	return []Entry{
		{
			Key: "notepad",
			Descriptor: Descriptor{Candidates: map[platform.Identity][][]string{
				platform.Windows: {{"notepad"}},
				platform.Darwin:  {{"open", "-a", "TextEdit"}},
				platform.Linux:   {{"gedit"}, {"xed"}, {"nano"}},
			}},
		},
		{
			Key: "calculator",
			Descriptor: Descriptor{Candidates: map[platform.Identity][][]string{
				platform.Windows: {{"calc"}},
				platform.Darwin:  {{"open", "-a", "Calculator"}},
				platform.Linux:   {{"gnome-calculator"}, {"kcalc"}, {"xcalc"}},
			}},
		},
		{
			Key: "task manager",
			Descriptor: Descriptor{Candidates: map[platform.Identity][][]string{
				platform.Windows: {{"taskmgr"}},
				platform.Darwin:  {{"open", "-a", "Activity Monitor"}},
				platform.Linux:   {{"gnome-system-monitor"}, {"plasma-systemmonitor"}, {"xterm", "-e", "top"}},
			}},
		},
		{
			Key: "terminal",
			Descriptor: Descriptor{Candidates: map[platform.Identity][][]string{
				platform.Windows: {{"wt"}, {"cmd", "/c", "start", "cmd"}},
				platform.Darwin:  {{"open", "-a", "Terminal"}},
				platform.Linux:   {{"gnome-terminal"}, {"konsole"}, {"xterm"}},
			}},
		},
		{
			Key: "email client",
			Descriptor: Descriptor{Candidates: map[platform.Identity][][]string{
				platform.Windows: {{"outlook"}},
				platform.Darwin:  {{"open", "-a", "Mail"}},
				platform.Linux:   {{"thunderbird"}, {"evolution"}},
			}},
		},
		{Key: "youtube", Descriptor: Descriptor{URL: "https://youtube.com"}},
		{Key: "google", Descriptor: Descriptor{URL: "https://google.com"}},
	}
}
