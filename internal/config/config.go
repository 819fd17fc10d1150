package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	LedgerDisabled = ""
	LedgerPostgres = "postgres"
	LedgerSQLite   = "sqlite"
)

type Config struct {
	TelegramBotToken    string        `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramPollTimeout int           `env:"TELEGRAM_POLL_TIMEOUT,default=60"`
	TelegramSendTimeout time.Duration `env:"TELEGRAM_SEND_TIMEOUT,default=10s"`

	PaymentProviderToken string        `env:"PAYMENT_PROVIDER_TOKEN"`
	ClickProviderToken   string        `env:"CLICK_PROVIDER_TOKEN"`
	PaymentCurrency      string        `env:"PAYMENT_CURRENCY,default=UZS"`
	DepositMin           int64         `env:"DEPOSIT_MIN,default=1000"`
	DepositMax           int64         `env:"DEPOSIT_MAX,default=10000000"`
	MinorUnitMultiplier  int64         `env:"PAYMENT_MINOR_UNIT_MULTIPLIER,default=100"`
	PaymentTimeout       time.Duration `env:"PAYMENT_GATEWAY_TIMEOUT,default=10s"`

	AlertInterval          time.Duration `env:"ALERT_INTERVAL,default=60s"`
	AlertInitialDelay      time.Duration `env:"ALERT_INITIAL_DELAY,default=10s"`
	AlertNotifyConcurrency int           `env:"ALERT_NOTIFY_CONCURRENCY,default=8"`

	CoinGeckoBaseURL string        `env:"COINGECKO_BASE_URL,default=https://api.coingecko.com/api/v3"`
	CoinGeckoTimeout time.Duration `env:"COINGECKO_TIMEOUT,default=10s"`

	FearGreedBaseURL string        `env:"FEAR_GREED_BASE_URL,default=https://api.alternative.me"`
	FearGreedTimeout time.Duration `env:"FEAR_GREED_TIMEOUT,default=10s"`

	LedgerDriver      string        `env:"LEDGER_DRIVER"`
	DBHost            string        `env:"DB_HOST"`
	DBPort            int           `env:"DB_PORT,default=5432"`
	DBUser            string        `env:"DB_USER"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBName            string        `env:"DB_NAME"`
	DBSSLMode         string        `env:"DB_SSLMODE,default=disable"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=10"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=25"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=30m"`
	SQLitePath        string        `env:"SQLITE_PATH,default=cryptobot.db"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.PaymentProviderToken == "" {
		cfg.PaymentProviderToken = cfg.ClickProviderToken
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.AlertInterval <= 0 {
		errs = append(errs, fmt.Errorf("ALERT_INTERVAL must be positive, got %s", c.AlertInterval))
	}
	if c.AlertInitialDelay < 0 {
		errs = append(errs, fmt.Errorf("ALERT_INITIAL_DELAY must not be negative, got %s", c.AlertInitialDelay))
	}
	if c.AlertNotifyConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("ALERT_NOTIFY_CONCURRENCY must be positive, got %d", c.AlertNotifyConcurrency))
	}
	if c.DepositMin <= 0 || c.DepositMin > c.DepositMax {
		errs = append(errs, fmt.Errorf("deposit bounds %d..%d are invalid", c.DepositMin, c.DepositMax))
	}
	if c.MinorUnitMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("PAYMENT_MINOR_UNIT_MULTIPLIER must be positive, got %d", c.MinorUnitMultiplier))
	}
	for name, timeout := range map[string]time.Duration{
		"TELEGRAM_SEND_TIMEOUT":   c.TelegramSendTimeout,
		"PAYMENT_GATEWAY_TIMEOUT": c.PaymentTimeout,
		"COINGECKO_TIMEOUT":       c.CoinGeckoTimeout,
		"FEAR_GREED_TIMEOUT":      c.FearGreedTimeout,
	} {
		if timeout <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, timeout))
		}
	}
	switch c.LedgerDriver {
	case LedgerDisabled, LedgerSQLite:
	case LedgerPostgres:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			errs = append(errs, errors.New("postgres ledger requires DB_HOST, DB_USER and DB_NAME"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LEDGER_DRIVER %q", c.LedgerDriver))
	}
	return errors.Join(errs...)
}

func (c Config) PaymentsEnabled() bool {
	return c.PaymentProviderToken != ""
}
