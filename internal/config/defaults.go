package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		Assistant: AssistantConfig{Name: "Taskar"},
		Notify: NotifyConfig{
			Enable:    false,
			AppName:   "taskar",
			TimeoutMS: 4000,
		},
		Screenshot: ScreenshotConfig{Dir: ""},
		Wiki: WikiConfig{
			URL:        "https://en.wikipedia.org",
			Sentences:  2,
			MaxOptions: 5,
		},
		Search: SearchConfig{URL: "https://www.google.com/search?q="},
	}
}
