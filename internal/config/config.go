package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"ngi-ledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"ledger"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET" default:""`
	}

	Policy struct {
		// De-minimis total below which entries auto-approve on submission.
		// "0" disables auto-approval.
		AutoApproveThreshold string `envconfig:"AUTO_APPROVE_THRESHOLD" default:"500.00"`
		CurrencyPrecision    int32  `envconfig:"CURRENCY_PRECISION" default:"2"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// AutoApproveThreshold parses the configured de-minimis threshold.
func (c *Config) AutoApproveThreshold() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Policy.AutoApproveThreshold)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing auto-approve threshold: %w", err)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("auto-approve threshold must not be negative: %s", d)
	}

	return d, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
