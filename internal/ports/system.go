package ports

import "time"

// Clock abstracts the current time
type Clock interface {
	Now() time.Time
}

// URLOpener opens a URL in the user's browser
type URLOpener interface {
	Open(url string) error
}

// Clipboard copies text to the system clipboard
type Clipboard interface {
	Copy(text string) error
}
