//go:build darwin

package browser

func findPlatformBrowser(rawURL string) (string, []string) {
	return "open", []string{rawURL}
}
