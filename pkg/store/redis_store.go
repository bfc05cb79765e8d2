package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/shuldan/appconfig/pkg/contracts"
)

type redisConfig struct {
	hashKey        string
	connectionName string
}

type RedisOption func(*redisConfig)

func WithHashKey(key string) RedisOption {
	return func(config *redisConfig) {
		config.hashKey = key
	}
}

func WithRedisConnectionName(name string) RedisOption {
	return func(config *redisConfig) {
		config.connectionName = name
	}
}

// RedisStore keeps all settings in one hash, field per "Section:Key".
type RedisStore struct {
	client   *redis.Client
	config   redisConfig
	snapshot map[string]string
	state    contracts.StoreState
}

var _ contracts.SettingStore = (*RedisStore)(nil)
var _ contracts.ConnectionProvider = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, options ...RedisOption) *RedisStore {
	config := redisConfig{
		hashKey:        "app_settings",
		connectionName: "ApplicationDb",
	}

	for _, option := range options {
		option(&config)
	}

	return &RedisStore{
		client: client,
		config: config,
		state:  contracts.StoreStateUnloaded,
	}
}

func (r *RedisStore) Load() error {
	values, err := r.client.HGetAll(context.Background(), r.config.hashKey).Result()
	if err != nil {
		r.state = contracts.StoreStateFailed
		return err
	}

	snapshot := make(map[string]string, len(values))
	for key, value := range values {
		snapshot[key] = value
	}

	r.snapshot = snapshot
	r.state = contracts.StoreStateLoaded
	return nil
}

func (r *RedisStore) Value(key string) (string, bool) {
	value, ok := r.snapshot[key]
	return value, ok
}

func (r *RedisStore) State() contracts.StoreState {
	return r.state
}

// Set writes the field through a transactional pipeline so the write is
// all-or-nothing on the server side.
func (r *RedisStore) Set(key, value string) error {
	if _, _, err := SplitKey(key); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(context.Background(), r.config.hashKey, key, value)
	_, err := pipe.Exec(context.Background())
	return err
}

func (r *RedisStore) ConnectionInfo(name string) (contracts.ConnectionInfo, bool) {
	if name != r.config.connectionName {
		return contracts.ConnectionInfo{}, false
	}
	return contracts.ConnectionInfo{
		Name:             name,
		ConnectionString: r.client.Options().Addr,
		Provider:         "redis",
	}, true
}
