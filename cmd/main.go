package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"golang.org/x/term"

	"github.com/shuldan/appconfig/pkg/config"
	"github.com/shuldan/appconfig/pkg/contracts"
	"github.com/shuldan/appconfig/pkg/logger"
	"github.com/shuldan/appconfig/pkg/settings"
	"github.com/shuldan/appconfig/pkg/store"
)

var (
	app        = kingpin.New("appconfig", "Typed application settings over a pluggable backing store.")
	configPath = app.Flag("config", "Bootstrap configuration file.").Default("appconfig.yaml").String()
	verbose    = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	showCmd = app.Command("show", "Read every typed setting and print it.")

	setCmd    = app.Command("set", "Persist one setting.")
	setKey    = setCmd.Arg("key", `Setting address ("Section:Key").`).Required().String()
	setValue  = setCmd.Arg("value", "Setting value.").String()
	setSecret = setCmd.Flag("secret", "Prompt for the value without echo.").Bool()

	initCmd = app.Command("init", "Create the settings table and seed demonstration rows.")
)

type backingStore interface {
	contracts.SettingStore
	contracts.ConnectionProvider
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logOpts := []logger.Option{logger.WithColor()}
	if *verbose {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}
	log := logger.NewLogger(logOpts...)

	cfg := loadBootstrap(*configPath)

	st, cleanup, err := newStore(cfg)
	if err != nil {
		log.Error("failed to open backing store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	switch command {
	case showCmd.FullCommand():
		err = runShow(st, log)
	case setCmd.FullCommand():
		err = runSet(st, *setKey, *setValue, *setSecret)
	case initCmd.FullCommand():
		err = runInit(st, log)
	}

	if err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func loadBootstrap(path string) contracts.Config {
	loader := config.NewChainLoader(
		config.NewYamlConfigLoader(path),
		config.NewEnvConfigLoader("APPCONFIG_"),
	)

	values, err := loader.Load()
	if err != nil {
		values = map[string]any{}
	}
	return config.NewMapConfig(values)
}

func newStore(cfg contracts.Config) (backingStore, func(), error) {
	noop := func() {}

	switch cfg.GetString("store.kind", "sql") {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.GetString("store.redis_addr", "localhost:6379"),
		})
		return store.NewRedisStore(client), func() { _ = client.Close() }, nil
	case "yaml":
		return store.NewYAMLStore(cfg.GetString("store.path", "settings.yaml")), noop, nil
	default:
		st := store.NewSQLStore(
			cfg.GetString("store.driver", "sqlite3"),
			cfg.GetString("store.dsn", "appconfig.db"),
		)
		if err := st.Connect(); err != nil {
			return nil, noop, err
		}
		return st, func() { _ = st.Close() }, nil
	}
}

func runShow(st backingStore, log contracts.Logger) error {
	if err := st.Load(); err != nil {
		return err
	}
	log.Debug("backing store loaded", "state", st.State())

	typed := settings.New(st, st)

	printValue("EmailTemplatesPath", func() (any, error) {
		v, err := typed.EmailTemplatesPath()
		return v, err
	})
	printValue("PaymentGatewayServiceUrl", func() (any, error) {
		v, err := typed.PaymentGatewayServiceURL()
		return v, err
	})
	printValue("FiscalYearStart", func() (any, error) {
		t, err := typed.FiscalYearStart()
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%s %d", t.Month(), t.Day()), nil
	})
	printValue("NotifyOnUpload", func() (any, error) {
		v, err := typed.NotifyOnUpload()
		return v, err
	})
	printValue("DbConnectionInformation", func() (any, error) {
		info, err := typed.DBConnectionInformation()
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%s [%s] %s", info.Name, info.Provider, info.ConnectionString), nil
	})

	return nil
}

func printValue(name string, read func() (any, error)) {
	value, err := read()
	if err != nil {
		fmt.Printf("%-26s !! %v\n", name, err)
		return
	}
	fmt.Printf("%-26s = %v\n", name, value)
}

func runSet(st backingStore, key, value string, secret bool) error {
	if secret && value == "" {
		fmt.Fprintf(os.Stderr, "value for %s: ", key)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}
		value = string(raw)
	}
	return st.Set(key, value)
}

func runInit(st backingStore, log contracts.Logger) error {
	sqlStore, ok := st.(*store.SQLStore)
	if !ok {
		return fmt.Errorf("init is only supported for SQL backing stores")
	}

	if err := sqlStore.CreateTable(); err != nil {
		return err
	}

	seed := map[string]string{
		settings.KeyEmailTemplatesPath:       `Templates\Emails`,
		settings.KeyPaymentGatewayServiceURL: "http://payments.local/svc",
		settings.KeyFiscalYearStart:          "2000-10-01",
		settings.KeyNotifyOnUpload:           "True",
	}
	for key, value := range seed {
		if err := sqlStore.Set(key, value); err != nil {
			return err
		}
		log.Info("seeded setting", "key", key)
	}

	return nil
}
