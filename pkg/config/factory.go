package config

import "github.com/shuldan/appconfig/pkg/contracts"

var _ Loader = (*EnvConfigLoader)(nil)
var _ Loader = (*YamlConfigLoader)(nil)
var _ Loader = (*chainLoader)(nil)

func NewEnvConfigLoader(prefix string) Loader {
	return &EnvConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) Loader {
	return &YamlConfigLoader{paths: paths}
}

func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

func NewMapConfig(values map[string]any) contracts.Config {
	return &MapConfig{values: values}
}
