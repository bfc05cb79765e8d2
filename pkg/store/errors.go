package store

import "github.com/shuldan/appconfig/pkg/errors"

var newStoreCode = errors.WithPrefix("STORE")

var (
	ErrMalformedKey      = newStoreCode().New(`malformed setting key {{.key}}: expected "Section:Key" with exactly two non-empty parts`)
	ErrStoreNotConnected = newStoreCode().New("setting store is not connected")
	ErrFailedToOpenStore = newStoreCode().New("failed to open settings store")
	ErrParseSettingsFile = newStoreCode().New("failed to parse settings file {{.path}}: {{.reason}}")
)
