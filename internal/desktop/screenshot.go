package desktop

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/kbinani/screenshot"

	"github.com/rbright/taskar/internal/action"
)

// Capturer grabs the primary display. It is an optional host integration.
type Capturer interface {
	Capture() (image.Image, error)
}

// displayCapturer is the production Capturer over the screenshot library.
type displayCapturer struct{}

func (displayCapturer) Capture() (image.Image, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("no active display")
	}
	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(0))
	if err != nil {
		return nil, fmt.Errorf("capture display 0: %w", err)
	}
	return img, nil
}

// Screenshot captures the primary display as PNG. An empty path selects
// a timestamped file under the configured (or default) directory;
// intermediate directories are created as needed.
func (s *Surface) Screenshot(path string) action.Result {
	if s.capturer == nil {
		return action.Unavailable("screen capture", "")
	}

	if path == "" {
		dir, err := s.screenshotDir()
		if err != nil {
			return action.Failure(action.ClassLaunchError, "Choosing a screenshot directory failed (%v).", err)
		}
		path = filepath.Join(dir, time.Now().Format("screenshot-20060102-150405.png"))
	}

	img, err := s.capturer.Capture()
	if err != nil {
		return action.Failure(action.ClassLaunchError, "Taking the screenshot failed (%v).", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return action.Failure(action.ClassLaunchError, "Creating %q failed (%v).", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return action.Failure(action.ClassLaunchError, "Writing the screenshot failed (%v).", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return action.Failure(action.ClassLaunchError, "Encoding the screenshot failed (%v).", err)
	}
	return action.Success("Screenshot saved to %s.", path)
}

// screenshotDir resolves the default capture directory.
func (s *Surface) screenshotDir() (string, error) {
	if s.shotDir != "" {
		return s.shotDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Pictures", "taskar"), nil
}
