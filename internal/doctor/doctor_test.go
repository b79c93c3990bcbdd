package doctor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rbright/taskar/internal/config"
	"github.com/rbright/taskar/internal/platform"
	"github.com/rbright/taskar/internal/registry"
	"github.com/stretchr/testify/require"
)

func TestReportOKAndString(t *testing.T) {
	report := Report{Checks: []Check{
		{Name: "one", Pass: true, Message: "good"},
		{Name: "two", Pass: false, Message: "bad"},
	}}

	require.False(t, report.OK())
	text := report.String()
	require.Contains(t, text, "[OK] one: good")
	require.Contains(t, text, "[FAIL] two: bad")
}

func TestReportOKAllPassing(t *testing.T) {
	report := Report{Checks: []Check{{Name: "one", Pass: true}}}
	require.True(t, report.OK())
}

func TestCheckBinaryFound(t *testing.T) {
	check := checkBinary("sh", "shell available")
	require.True(t, check.Pass)
	require.Contains(t, check.Message, "shell available")
}

func TestCheckBinaryMissing(t *testing.T) {
	check := checkBinary("definitely-not-a-real-binary", "unused")
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "binary not found")
}

func TestCheckRegistryAllCandidatesPresent(t *testing.T) {
	reg := registry.New([]registry.Entry{
		{Key: "editor", Descriptor: registry.Descriptor{
			Candidates: map[platform.Identity][][]string{
				platform.Linux: {{"gedit"}},
			},
		}},
		{Key: "google", Descriptor: registry.Descriptor{URL: "https://google.com"}},
	})

	check := checkRegistry(platform.Linux, reg)
	require.True(t, check.Pass)
	require.Contains(t, check.Message, "2 entries")
}

func TestCheckRegistryReportsMissingCandidates(t *testing.T) {
	reg := registry.New([]registry.Entry{
		{Key: "editor", Descriptor: registry.Descriptor{
			Candidates: map[platform.Identity][][]string{
				platform.Windows: {{"notepad"}},
			},
		}},
	})

	check := checkRegistry(platform.Linux, reg)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "editor")
}

func TestCheckWikiReachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rest_v1/page/summary/Wikipedia", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	cfg := config.Default().Wiki
	cfg.URL = server.URL

	check := checkWikiReachable(cfg)
	require.True(t, check.Pass)
	require.Contains(t, check.Message, "reachable at")
}

func TestCheckWikiReachableFailureStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	cfg := config.Default().Wiki
	cfg.URL = server.URL

	check := checkWikiReachable(cfg)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "HTTP 503")
}

func TestCheckWikiReachableEmptyBaseURL(t *testing.T) {
	cfg := config.Default().Wiki
	cfg.URL = ""

	check := checkWikiReachable(cfg)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "wiki.url is empty")
}

func TestRunIncludesNotifyCheckOnlyWhenEnabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	cfg := config.Loaded{Path: "/tmp/config.conf", Config: config.Default()}
	cfg.Config.Wiki.URL = server.URL
	reg := registry.New(registry.Builtin())

	hasCheck := func(report Report, name string) bool {
		for _, check := range report.Checks {
			if check.Name == name {
				return true
			}
		}
		return false
	}

	report := Run(cfg, platform.Linux, reg)
	require.False(t, hasCheck(report, "busctl"))

	cfg.Config.Notify.Enable = true
	cfg.Config.Notify.AppName = "taskar"
	report = Run(cfg, platform.Linux, reg)
	require.True(t, hasCheck(report, "busctl"))
}
