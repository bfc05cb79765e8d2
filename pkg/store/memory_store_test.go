package store

import (
	"testing"

	"github.com/shuldan/appconfig/pkg/contracts"
	"github.com/shuldan/appconfig/pkg/errors"
)

func TestMemoryStoreLoadAndValue(t *testing.T) {
	st := NewMemoryStore(map[string]string{"AppSettings:Foo": "Bar"})

	if st.State() != contracts.StoreStateUnloaded {
		t.Errorf("expected unloaded state, got %s", st.State())
	}
	if err := st.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if st.State() != contracts.StoreStateLoaded {
		t.Errorf("expected loaded state, got %s", st.State())
	}

	value, ok := st.Value("AppSettings:Foo")
	if !ok || value != "Bar" {
		t.Errorf("expected Bar, got %q (found=%v)", value, ok)
	}
	if _, ok := st.Value("AppSettings:Missing"); ok {
		t.Error("expected missing key to be absent")
	}
}

func TestMemoryStoreSetVisibleAfterReload(t *testing.T) {
	st := NewMemoryStore(nil)
	if err := st.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := st.Set("AppSettings:New", "value"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok := st.Value("AppSettings:New"); ok {
		t.Error("expected value invisible before reload")
	}

	if err := st.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if value, ok := st.Value("AppSettings:New"); !ok || value != "value" {
		t.Errorf("expected value after reload, got %q (found=%v)", value, ok)
	}
}

func TestMemoryStoreSetMalformedKey(t *testing.T) {
	st := NewMemoryStore(nil)

	if err := st.Set("BadKey", "x"); !errors.Is(err, ErrMalformedKey) {
		t.Errorf("expected ErrMalformedKey, got %v", err)
	}
}

func TestMemoryStoreConnections(t *testing.T) {
	st := NewMemoryStore(nil).WithConnection(contracts.ConnectionInfo{
		Name:             "ApplicationDb",
		ConnectionString: "file:test.db",
		Provider:         "sqlite3",
	})

	info, ok := st.ConnectionInfo("ApplicationDb")
	if !ok || info.Provider != "sqlite3" {
		t.Errorf("unexpected connection info: %+v (found=%v)", info, ok)
	}
	if _, ok := st.ConnectionInfo("Other"); ok {
		t.Error("expected no info for unregistered name")
	}
}
