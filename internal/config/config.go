package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	AppEnv  string `mapstructure:"APP_ENV"`

	MySQLHost string `mapstructure:"MYSQL_HOST"`
	MySQLPort string `mapstructure:"MYSQL_PORT"`
	MySQLDB   string `mapstructure:"MYSQL_DB"`
	MySQLUser string `mapstructure:"MYSQL_USER"`
	MySQLPass string `mapstructure:"MYSQL_PASS"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`
	RedisDB   int    `mapstructure:"REDIS_DB"`

	JWTSecret    string `mapstructure:"JWT_SECRET"`
	JWTTTLHours  int    `mapstructure:"JWT_TTL_HOURS"`
	TokenTTLHrs  int    `mapstructure:"TOKEN_TTL_HOURS"`
	IdempTTLSecs int    `mapstructure:"IDEMPOTENCY_TTL_SECONDS"`

	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	MailEnabled bool   `mapstructure:"MAIL_ENABLED"`
	MailRegion  string `mapstructure:"MAIL_REGION"`
	MailSender  string `mapstructure:"MAIL_SENDER"`

	UploadDir string `mapstructure:"UPLOAD_DIR"`
	BaseURL   string `mapstructure:"BASE_URL"`
}

func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "production")

	viper.SetDefault("MYSQL_HOST", "mysql")
	viper.SetDefault("MYSQL_PORT", "3306")
	viper.SetDefault("MYSQL_DB", "investlink")
	viper.SetDefault("MYSQL_USER", "investlink")
	viper.SetDefault("MYSQL_PASS", "investlink")

	viper.SetDefault("REDIS_ADDR", "redis:6379")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("JWT_TTL_HOURS", 24)
	viper.SetDefault("TOKEN_TTL_HOURS", 72)
	viper.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)

	viper.SetDefault("MAIL_ENABLED", false)
	viper.SetDefault("MAIL_REGION", "ap-southeast-1")
	viper.SetDefault("MAIL_SENDER", "no-reply@investlink.local")

	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("BASE_URL", "http://localhost:8080")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Optional .env fallback for local development; absence is fine.
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.TokenTTLHrs <= 0 {
		return errors.New("TOKEN_TTL_HOURS must be positive")
	}
	if c.MailEnabled && c.MailSender == "" {
		return errors.New("MAIL_ENABLED requires MAIL_SENDER")
	}
	return nil
}

func (c *Config) IsDevelopment() bool { return c.AppEnv == "development" }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
