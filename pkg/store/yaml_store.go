package store

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/shuldan/appconfig/pkg/contracts"
)

type yamlDocument struct {
	Settings    map[string]map[string]string `yaml:"settings"`
	Connections []yamlConnection             `yaml:"connections,omitempty"`
}

type yamlConnection struct {
	Name             string `yaml:"name"`
	ConnectionString string `yaml:"connection_string"`
	Provider         string `yaml:"provider"`
}

// YAMLStore reads settings from a YAML file of section maps. Writes
// re-marshal the whole document and replace the file atomically via a
// temp file and rename.
type YAMLStore struct {
	path        string
	snapshot    map[string]string
	connections map[string]contracts.ConnectionInfo
	state       contracts.StoreState
}

var _ contracts.SettingStore = (*YAMLStore)(nil)
var _ contracts.ConnectionProvider = (*YAMLStore)(nil)

func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{
		path:  path,
		state: contracts.StoreStateUnloaded,
	}
}

func (y *YAMLStore) Load() error {
	doc, err := y.read()
	if err != nil {
		y.state = contracts.StoreStateFailed
		return err
	}

	snapshot := make(map[string]string)
	for section, values := range doc.Settings {
		for name, value := range values {
			snapshot[JoinKey(section, name)] = value
		}
	}

	connections := make(map[string]contracts.ConnectionInfo, len(doc.Connections))
	for _, c := range doc.Connections {
		connections[c.Name] = contracts.ConnectionInfo{
			Name:             c.Name,
			ConnectionString: c.ConnectionString,
			Provider:         c.Provider,
		}
	}

	y.snapshot = snapshot
	y.connections = connections
	y.state = contracts.StoreStateLoaded
	return nil
}

func (y *YAMLStore) Value(key string) (string, bool) {
	value, ok := y.snapshot[key]
	return value, ok
}

func (y *YAMLStore) State() contracts.StoreState {
	return y.state
}

// Set rewrites the settings file with the new pair added. The read
// snapshot is unchanged until the next Load.
func (y *YAMLStore) Set(key, value string) error {
	section, name, err := SplitKey(key)
	if err != nil {
		return err
	}

	doc, err := y.read()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if doc.Settings == nil {
		doc.Settings = make(map[string]map[string]string)
	}
	if doc.Settings[section] == nil {
		doc.Settings[section] = make(map[string]string)
	}
	doc.Settings[section][name] = value

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(y.path), filepath.Base(y.path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), y.path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (y *YAMLStore) ConnectionInfo(name string) (contracts.ConnectionInfo, bool) {
	info, ok := y.connections[name]
	return info, ok
}

func (y *YAMLStore) read() (yamlDocument, error) {
	var doc yamlDocument

	data, err := os.ReadFile(y.path)
	if err != nil {
		return doc, err
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, ErrParseSettingsFile.
			WithDetail("path", y.path).
			WithDetail("reason", err.Error()).
			WithCause(err)
	}
	return doc, nil
}
