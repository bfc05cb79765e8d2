package config

type chainLoader struct {
	loaders []Loader
}

// Load merges all sources in order; later loaders override earlier
// ones. A source that fails to load is skipped, but at least one source
// must produce values.
func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)
	var lastErr error
	loaded := false

	for _, loader := range c.loaders {
		config, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}
		loaded = true
		mergeMaps(final, config)
	}

	if !loaded {
		return nil, ErrNoConfigSource.WithCause(lastErr)
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if vMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, vMap)
				continue
			}
		}
		dst[k] = v
	}
}
