package settings

import "github.com/shuldan/appconfig/pkg/errors"

var newSettingsCode = errors.WithPrefix("SETTINGS")

var (
	ErrSettingMissing = newSettingsCode().New("required setting {{.key}} is missing: no value was found in the backing store")
	ErrSettingEmpty   = newSettingsCode().New("required setting {{.key}} was found but its value is an empty string")
	ErrSettingBlank   = newSettingsCode().New("required setting {{.key}} was found but its value contains only whitespace")
	ErrNotADate       = newSettingsCode().New("setting {{.key}} has value {{.value}}, which cannot be parsed; a valid date is required")
	ErrNotABoolean    = newSettingsCode().New("setting {{.key}} has value {{.value}}; the only valid values are True and False")
)
