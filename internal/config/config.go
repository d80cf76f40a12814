package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"     envDefault:"localhost:8090"`
	APIAddress     string        `env:"API_URL"         envDefault:"http://localhost:8080"`
	PushAddress    string        `env:"PUSH_URL"        envDefault:"wss://cchatbot.pro/socket.io/"`
	PushEnabled    bool          `env:"PUSH_ENABLED"    envDefault:"true"`
	AccessToken    string        `env:"ACCESS_TOKEN"`
	RefreshToken   string        `env:"REFRESH_TOKEN"`
	LoginEmail     string        `env:"LOGIN_EMAIL"`
	LoginPassword  string        `env:"LOGIN_PASSWORD"`
	TenantID       string        `env:"TENANT_ID"`
	TenantSlug     string        `env:"TENANT_SLUG"`
	Database       string        `env:"DATABASE_URI"`
	LogLvl         string        `env:"LOG_LVL"         envDefault:"info"`
	PollInterval   time.Duration `env:"POLL_INTERVAL"   envDefault:"30s"`
	StatusInterval time.Duration `env:"STATUS_INTERVAL" envDefault:"10s"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run the local api")
	flag.StringVar(&cfg.APIAddress, "r", cfg.APIAddress, "platform api address")
	flag.StringVar(&cfg.PushAddress, "p", cfg.PushAddress, "push channel address")
	flag.StringVar(&cfg.TenantID, "t", cfg.TenantID, "tenant id")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN for the wallet cache")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	cfg.APIAddress = strings.TrimSuffix(withScheme(cfg.APIAddress, "http://"), "/")
	cfg.PushAddress = withScheme(cfg.PushAddress, "ws://")

	return cfg
}

func withScheme(addr, scheme string) string {
	for _, prefix := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(addr, prefix) {
			return addr
		}
	}
	return scheme + addr
}
