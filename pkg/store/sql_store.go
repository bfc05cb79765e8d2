package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shuldan/appconfig/pkg/contracts"
)

type sqlConfig struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	pingTimeout     time.Duration
	retryAttempts   int
	retryDelay      time.Duration
	table           string
	connectionName  string
}

type Option func(*sqlConfig)

func WithConnectionPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(config *sqlConfig) {
		config.maxOpenConns = maxOpen
		config.maxIdleConns = maxIdle
		config.connMaxLifetime = maxLifetime
	}
}

func WithPingTimeout(timeout time.Duration) Option {
	return func(config *sqlConfig) {
		config.pingTimeout = timeout
	}
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(config *sqlConfig) {
		config.retryAttempts = attempts
		config.retryDelay = delay
	}
}

func WithTable(table string) Option {
	return func(config *sqlConfig) {
		config.table = table
	}
}

func WithConnectionName(name string) Option {
	return func(config *sqlConfig) {
		config.connectionName = name
	}
}

// SQLStore reads settings from a relational table with one row per
// setting: Section, Key, Value, plus a surrogate id the store assigns
// on insert. Reads are served from the snapshot taken by the last
// Load; Set writes through and is only visible after the next Load.
//
// A store instance holds one connection pool and is not meant to be
// shared across concurrent callers without external synchronization.
type SQLStore struct {
	db       *sql.DB
	driver   string
	dsn      string
	config   sqlConfig
	state    contracts.StoreState
	snapshot map[string]string
}

var _ contracts.SettingStore = (*SQLStore)(nil)
var _ contracts.ConnectionProvider = (*SQLStore)(nil)

func NewSQLStore(driver, dsn string, options ...Option) *SQLStore {
	config := sqlConfig{
		maxOpenConns:    25,
		maxIdleConns:    5,
		connMaxLifetime: time.Hour,
		pingTimeout:     time.Second * 5,
		retryAttempts:   3,
		retryDelay:      time.Second,
		table:           "app_settings",
		connectionName:  "ApplicationDb",
	}

	for _, option := range options {
		option(&config)
	}

	return &SQLStore{
		driver: driver,
		dsn:    dsn,
		config: config,
		state:  contracts.StoreStateUnloaded,
	}
}

func (s *SQLStore) Connect() error {
	if s.db != nil {
		return nil
	}

	var db *sql.DB
	var err error

	for attempt := 0; attempt <= s.config.retryAttempts; attempt++ {
		db, err = sql.Open(s.driver, s.dsn)
		if err == nil {
			db.SetMaxOpenConns(s.config.maxOpenConns)
			db.SetMaxIdleConns(s.config.maxIdleConns)
			db.SetConnMaxLifetime(s.config.connMaxLifetime)

			ctx, cancel := context.WithTimeout(context.Background(), s.config.pingTimeout)
			err = db.PingContext(ctx)
			cancel()

			if err == nil {
				s.db = db
				return nil
			}
			_ = db.Close()
		}

		if attempt < s.config.retryAttempts {
			time.Sleep(s.config.retryDelay)
		}
	}

	return ErrFailedToOpenStore.WithCause(err)
}

func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrStoreNotConnected
	}
	return s.db.PingContext(ctx)
}

// CreateTable creates the settings table when it does not exist yet.
// Administrative convenience for fresh databases.
func (s *SQLStore) CreateTable() error {
	if s.db == nil {
		return ErrStoreNotConnected
	}
	query := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s VARCHAR(36) PRIMARY KEY, %s VARCHAR(255) NOT NULL, %s VARCHAR(255) NOT NULL, %s TEXT)",
		s.quote(s.config.table), s.quote("id"), s.quote("section"), s.quote("key"), s.quote("value"),
	)
	_, err := s.db.Exec(query)
	return err
}

// Load replaces the read snapshot with the full current contents of the
// settings table in one pass. Rows with a NULL value are treated as not
// present. A failed load leaves the store in the failed state and never
// installs a partial snapshot.
func (s *SQLStore) Load() error {
	if s.db == nil {
		s.state = contracts.StoreStateFailed
		return ErrStoreNotConnected
	}

	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s",
		s.quote("section"), s.quote("key"), s.quote("value"), s.quote(s.config.table),
	)

	rows, err := s.db.Query(query)
	if err != nil {
		s.state = contracts.StoreStateFailed
		return err
	}
	defer func() { _ = rows.Close() }()

	snapshot := make(map[string]string)
	for rows.Next() {
		var section, name string
		var value sql.NullString
		if err := rows.Scan(&section, &name, &value); err != nil {
			s.state = contracts.StoreStateFailed
			return err
		}
		if !value.Valid {
			continue
		}
		snapshot[JoinKey(section, name)] = value.String
	}
	if err := rows.Err(); err != nil {
		s.state = contracts.StoreStateFailed
		return err
	}

	s.snapshot = snapshot
	s.state = contracts.StoreStateLoaded
	return nil
}

func (s *SQLStore) Value(key string) (string, bool) {
	value, ok := s.snapshot[key]
	return value, ok
}

func (s *SQLStore) State() contracts.StoreState {
	return s.state
}

// Set persists one new setting row inside a single transaction. The
// read snapshot is not refreshed; callers see the new value after the
// next Load. Failures after the transaction began roll it back and the
// original error is returned unchanged.
func (s *SQLStore) Set(key, value string) error {
	section, name, err := SplitKey(key)
	if err != nil {
		return err
	}
	if s.db == nil {
		return ErrStoreNotConnected
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s) VALUES (%s)",
		s.quote(s.config.table),
		s.quote("id"), s.quote("section"), s.quote("key"), s.quote("value"),
		s.placeholders(4),
	)

	if _, err := tx.Exec(query, uuid.NewString(), section, name, value); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ConnectionInfo exposes the store's own connection under its logical
// name. The record is always fully populated.
func (s *SQLStore) ConnectionInfo(name string) (contracts.ConnectionInfo, bool) {
	if name != s.config.connectionName {
		return contracts.ConnectionInfo{}, false
	}
	return contracts.ConnectionInfo{
		Name:             name,
		ConnectionString: s.dsn,
		Provider:         s.driver,
	}, true
}

// "key" and "value" are reserved words in some engines.
func (s *SQLStore) quote(ident string) string {
	if s.driver == "mysql" {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}

func (s *SQLStore) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if s.driver == "postgres" {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}
