package browser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty", "", "no URL"},
		{"file scheme", "file:///etc/passwd", "unsupported URL scheme"},
		{"javascript scheme", "javascript:alert(1)", "unsupported URL scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	assert.NoError(t, validateURL("https://github.com/acme/app/pull/1"))
}

func TestFindBrowser_EnvPrecedence(t *testing.T) {
	t.Setenv("BROWSER", "firefox"+string(os.PathListSeparator)+"chromium")
	t.Setenv("REVUE_BROWSER", "")

	browser, args := findBrowser("https://example.com")
	assert.Equal(t, "firefox", browser)
	assert.Equal(t, []string{"https://example.com"}, args)

	t.Setenv("REVUE_BROWSER", "lynx")
	browser, _ = findBrowser("https://example.com")
	assert.Equal(t, "lynx", browser)
}
