package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 2, 5)
}

func TestSummaryTrimsToConfiguredSentences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/w/api.php":
			require.Equal(t, "gopher", r.URL.Query().Get("search"))
			fmt.Fprint(w, `["gopher",["Gopher"],[""],["https://en.wikipedia.org/wiki/Gopher"]]`)
		case "/api/rest_v1/page/summary/Gopher":
			fmt.Fprint(w, `{"type":"standard","extract":"First sentence. Second sentence. Third sentence."}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	summary, err := client.Summary(context.Background(), "gopher")
	require.NoError(t, err)
	require.Equal(t, "First sentence. Second sentence.", summary)
}

func TestSummaryNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["nothing",[],[],[]]`)
	})

	_, err := client.Summary(context.Background(), "nothing at all")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSummaryDisambiguationBoundsOptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/w/api.php":
			fmt.Fprint(w, `["mercury",["Mercury","Mercury (planet)","Mercury (element)","Mercury Records","Freddie Mercury","Project Mercury"],[],[]]`)
		default:
			fmt.Fprint(w, `{"type":"disambiguation","extract":"Mercury may refer to:"}`)
		}
	})
	client.MaxOptions = 3

	_, err := client.Summary(context.Background(), "mercury")
	var ambiguous *AmbiguousError
	require.True(t, errors.As(err, &ambiguous))
	require.Equal(t, "mercury", ambiguous.Topic)
	require.Len(t, ambiguous.Options, 3)
	require.Contains(t, ambiguous.Error(), "Mercury (planet)")
}

func TestSummaryTitleSpacesBecomeUnderscores(t *testing.T) {
	var summaryPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/w/api.php":
			fmt.Fprint(w, `["go",["Go (programming language)"],[],[]]`)
		default:
			summaryPath = r.URL.Path
			fmt.Fprint(w, `{"type":"standard","extract":"Go is a language."}`)
		}
	})

	_, err := client.Summary(context.Background(), "go programming")
	require.NoError(t, err)
	require.Contains(t, summaryPath, "Go_(programming_language)")
}

func TestSummaryHTTPNotFoundStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/w/api.php" {
			fmt.Fprint(w, `["ghost",["Ghost Page"],[],[]]`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Summary(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSummaryEmptyTopic(t *testing.T) {
	client := New("https://en.wikipedia.org", 2, 5)

	_, err := client.Summary(context.Background(), "   ")
	require.Error(t, err)
}

func TestTrimSentences(t *testing.T) {
	tests := []struct {
		text string
		n    int
		want string
	}{
		{"One. Two. Three.", 2, "One. Two."},
		{"Only one.", 2, "Only one."},
		{"No terminator at all", 2, "No terminator at all"},
		{"Q? A! B.", 2, "Q? A!"},
		{"Whatever.", 0, "Whatever."},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, trimSentences(tc.text, tc.n), "text %q", tc.text)
	}
}
