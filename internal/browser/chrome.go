package browser

import "os"

// wellKnownChromePaths are common Chrome/Chromium install locations,
// checked in order when nothing else resolves.
var wellKnownChromePaths = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// detectChromePath resolves the Chrome binary to launch: the configured
// path first, then the CHROME_PATH environment variable, then well-known
// install locations. Returns "" to let chromedp auto-detect.
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	if path := os.Getenv("CHROME_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, path := range wellKnownChromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
