package settings

import (
	"strings"
	"time"

	"github.com/shuldan/appconfig/pkg/contracts"
)

// Setting keys as they appear in the backing store, addressed as "Section:Key".
const (
	KeyEmailTemplatesPath       = "AppSettings:EmailTemplatesPath"
	KeyPaymentGatewayServiceURL = "AppSettings:PaymentGatewayServiceUrl"
	KeyFiscalYearStart          = "AppSettings:FiscalYearStart"
	KeyNotifyOnUpload           = "AppSettings:NotifyOnUpload"
)

// DBConnectionName is the logical name of the application database
// connection in the backing store.
const DBConnectionName = "ApplicationDb"

// Fiscal year starts on the 1st of October unless configured otherwise.
// The year component carries no meaning.
var defaultFiscalYearStart = time.Date(1, time.October, 1, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type appSettings struct {
	store       contracts.SettingStore
	connections contracts.ConnectionProvider
}

var _ contracts.AppSettings = (*appSettings)(nil)

// New wraps a backing store with the typed accessors. The connection
// provider is usually the same adapter instance, but any source of named
// connections will do.
func New(store contracts.SettingStore, connections contracts.ConnectionProvider) contracts.AppSettings {
	return &appSettings{store: store, connections: connections}
}

// EmailTemplatesPath returns the template directory, always prefixed
// with a path separator.
func (s *appSettings) EmailTemplatesPath() (string, error) {
	value, err := s.required(KeyEmailTemplatesPath)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(value, `\`) && !strings.HasPrefix(value, `/`) {
		value = `\` + value
	}
	return value, nil
}

// PaymentGatewayServiceURL returns the gateway base URL, always ending
// with a trailing slash.
func (s *appSettings) PaymentGatewayServiceURL() (string, error) {
	value, err := s.required(KeyPaymentGatewayServiceURL)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(value, "/") {
		value += "/"
	}
	return value, nil
}

// FiscalYearStart returns the configured start of the fiscal year, or
// the 1st of October when the setting is absent or blank. Callers must
// not rely on the year component.
func (s *appSettings) FiscalYearStart() (time.Time, error) {
	value, found := s.store.Value(KeyFiscalYearStart)
	if classify(value, found) != present {
		return defaultFiscalYearStart, nil
	}

	trimmed := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrNotADate.
		WithDetail("key", KeyFiscalYearStart).
		WithDetail("value", value)
}

// NotifyOnUpload reports whether upload notifications are enabled.
// Defaults to true when the setting is absent or blank.
func (s *appSettings) NotifyOnUpload() (bool, error) {
	value, found := s.store.Value(KeyNotifyOnUpload)
	if classify(value, found) != present {
		return true, nil
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, ErrNotABoolean.
		WithDetail("key", KeyNotifyOnUpload).
		WithDetail("value", value)
}

// DBConnectionInformation returns the fully populated connection record
// for the application database.
func (s *appSettings) DBConnectionInformation() (contracts.ConnectionInfo, error) {
	info, found := s.connections.ConnectionInfo(DBConnectionName)

	key := "ConnectionStrings:" + DBConnectionName
	switch classify(info.ConnectionString, found) {
	case missing:
		return contracts.ConnectionInfo{}, ErrSettingMissing.WithDetail("key", key)
	case empty:
		return contracts.ConnectionInfo{}, ErrSettingEmpty.WithDetail("key", key)
	case blank:
		return contracts.ConnectionInfo{}, ErrSettingBlank.WithDetail("key", key)
	}

	return info, nil
}

func (s *appSettings) required(key string) (string, error) {
	value, found := s.store.Value(key)
	switch classify(value, found) {
	case missing:
		return "", ErrSettingMissing.WithDetail("key", key)
	case empty:
		return "", ErrSettingEmpty.WithDetail("key", key)
	case blank:
		return "", ErrSettingBlank.WithDetail("key", key)
	}
	return value, nil
}
