package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type JWT struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessMin     int
	RefreshDays   int
}

type Redis struct {
	Addr string
}

type Throttle struct {
	Limit     int
	WindowSec int
}

type Seed struct {
	AdminEmail    string
	AdminPassword string
	Demo          bool
}

type Config struct {
	Env      string
	HTTP     HTTP
	DB       DB
	JWT      JWT
	Redis    Redis
	Throttle Throttle
	Seed     Seed
}

func (c *Config) Production() bool { return c.Env == "production" }

// Load reads the yaml config file (if present) with CLINIC_* environment
// overrides on top. The two signing secrets must differ; replaying an access
// token against the refresh endpoint has to fail on key class alone.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("clinic")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 3000)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "clinic")
	v.SetDefault("jwt.issuer", "clinic-api")
	v.SetDefault("jwt.access_min", 15)
	v.SetDefault("jwt.refresh_days", 30)
	v.SetDefault("redis.addr", "")
	v.SetDefault("throttle.limit", 10)
	v.SetDefault("throttle.window_sec", 60)
	v.SetDefault("seed.admin_email", "admin@clinic.test")
	v.SetDefault("seed.admin_password", "admin123")
	v.SetDefault("seed.demo", false)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTP: HTTP{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		DB: DB{
			Host: v.GetString("db.host"),
			Port: v.GetInt("db.port"),
			User: v.GetString("db.user"),
			Pass: v.GetString("db.pass"),
			Name: v.GetString("db.name"),
		},
		JWT: JWT{
			AccessSecret:  v.GetString("jwt.access_secret"),
			RefreshSecret: v.GetString("jwt.refresh_secret"),
			Issuer:        v.GetString("jwt.issuer"),
			AccessMin:     v.GetInt("jwt.access_min"),
			RefreshDays:   v.GetInt("jwt.refresh_days"),
		},
		Redis: Redis{
			Addr: v.GetString("redis.addr"),
		},
		Throttle: Throttle{
			Limit:     v.GetInt("throttle.limit"),
			WindowSec: v.GetInt("throttle.window_sec"),
		},
		Seed: Seed{
			AdminEmail:    v.GetString("seed.admin_email"),
			AdminPassword: v.GetString("seed.admin_password"),
			Demo:          v.GetBool("seed.demo"),
		},
	}

	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		if cfg.Production() {
			return nil, fmt.Errorf("jwt.access_secret and jwt.refresh_secret are required")
		}
		if cfg.JWT.AccessSecret == "" {
			cfg.JWT.AccessSecret = "dev-access-secret"
		}
		if cfg.JWT.RefreshSecret == "" {
			cfg.JWT.RefreshSecret = "dev-refresh-secret"
		}
	}
	if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}
	return cfg, nil
}
