//go:build linux

package browser

import "os/exec"

var defaultOpeners = []string{
	"xdg-open",
	"sensible-browser",
	"x-www-browser",
	"wslview",
}

func findPlatformBrowser(rawURL string) (string, []string) {
	for _, opener := range defaultOpeners {
		if _, err := exec.LookPath(opener); err == nil {
			return opener, []string{rawURL}
		}
	}
	return "", nil
}
