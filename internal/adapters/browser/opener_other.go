//go:build !darwin && !linux && !windows

package browser

func findPlatformBrowser(rawURL string) (string, []string) {
	return "xdg-open", []string{rawURL}
}
