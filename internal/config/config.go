package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env     string `env:"APP_ENV" env-default:"local" env-description:"local or production"`
	AppPort string `env:"APP_PORT" env-default:"8080"`

	MySQLHost string `env:"MYSQL_HOST" env-default:"mysql"`
	MySQLPort string `env:"MYSQL_PORT" env-default:"3306"`
	MySQLDB   string `env:"MYSQL_DB" env-default:"lodge"`
	MySQLUser string `env:"MYSQL_USER" env-default:"lodge"`
	MySQLPass string `env:"MYSQL_PASS" env-default:"lodge"`

	AutoMigrate bool `env:"AUTO_MIGRATE" env-default:"true"`

	RedisAddr     string `env:"REDIS_ADDR" env-default:"redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS" env-default:"300"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	JWTSecret    string        `env:"JWT_SECRET" env-description:"HMAC key for session tokens"`
	JWTTTL       time.Duration `env:"JWT_TTL" env-default:"168h"`
	CookieSecure bool          `env:"COOKIE_SECURE" env-default:"false"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" env-default:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" env-default:"10"`

	// CIDRs of reverse proxies whose X-Forwarded-For is believed. Empty means
	// the socket peer is the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`

	MaxUploadMB int64 `env:"MAX_UPLOAD_MB" env-default:"10"`

	// Fallback hand-off number until an admin stores one.
	WhatsAppNumber string `env:"WHATSAPP_NUMBER"`
}

// Load reads an optional .env file and then the process environment; real
// environment variables win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		desc, _ := cleanenv.GetDescription(&c, nil)
		return nil, fmt.Errorf("config: %w; %s", err, desc)
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
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("MAX_UPLOAD_MB must be positive")
	}
	if _, err := c.TrustedProxyRanges(); err != nil {
		return err
	}
	return nil
}

// TrustedProxyRanges parses TRUSTED_PROXIES.
func (c *Config) TrustedProxyRanges() ([]*net.IPNet, error) {
	var out []*net.IPNet
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		_, n, err := net.ParseCIDR(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", raw, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) MaxUploadBytes() int64 { return c.MaxUploadMB << 20 }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
