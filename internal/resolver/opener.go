package resolver

import "github.com/pkg/browser"

// BrowserOpener opens URLs in the default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// RecordingOpener is an Opener test double that records opened URLs.
type RecordingOpener struct {
	URLs []string
	Err  error
}

func (o *RecordingOpener) Open(url string) error {
	o.URLs = append(o.URLs, url)
	return o.Err
}
