package ports

import "context"

// SettingsReader reads stored preference values
type SettingsReader interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, bool, error)
}

// SettingsWriter stores preference values
type SettingsWriter interface {
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
}

// SettingsRepository is the composite interface
type SettingsRepository interface {
	SettingsReader
	SettingsWriter
	Close() error
}
