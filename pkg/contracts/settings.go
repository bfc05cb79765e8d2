package contracts

import "time"

type StoreState int

const (
	StoreStateUnloaded StoreState = iota
	StoreStateLoaded
	StoreStateFailed
)

func (s StoreState) String() string {
	switch s {
	case StoreStateUnloaded:
		return "unloaded"
	case StoreStateLoaded:
		return "loaded"
	case StoreStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type SettingStore interface {
	Load() error
	Value(key string) (string, bool)
	Set(key, value string) error
	State() StoreState
}

type ConnectionInfo struct {
	Name             string
	ConnectionString string
	Provider         string
}

type ConnectionProvider interface {
	ConnectionInfo(name string) (ConnectionInfo, bool)
}

type AppSettings interface {
	EmailTemplatesPath() (string, error)
	PaymentGatewayServiceURL() (string, error)
	FiscalYearStart() (time.Time, error)
	NotifyOnUpload() (bool, error)
	DBConnectionInformation() (ConnectionInfo, error)
}
