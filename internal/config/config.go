package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Whitelist WhitelistConfig `mapstructure:"whitelist"`
	Kakao     KakaoConfig     `mapstructure:"kakao"`
	Session   SessionConfig   `mapstructure:"session"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite, postgres
	Path            string        `mapstructure:"path"`   // sqlite file path
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN builds the driver-specific connection string.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "postgres" {
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
	}
	return c.Path
}

type TokenizerConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type WhitelistConfig struct {
	Source string            `mapstructure:"source"` // local, s3
	Path   string            `mapstructure:"path"`
	S3     WhitelistS3Config `mapstructure:"s3"`
}

type WhitelistS3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Key       string `mapstructure:"key"`
}

type KakaoConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type SessionConfig struct {
	TTLHours     int    `mapstructure:"ttl_hours"`
	CookieName   string `mapstructure:"cookie_name"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

type AnalysisConfig struct {
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes"`
	RecentWindow    int `mapstructure:"recent_window"`
}

// Load reads configuration from file and environment. configPath may
// be empty, in which case ./configs/config.yaml and ./config.yaml are
// tried; a missing file is fine because every key has a default or an
// env binding.
func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/drambook.db")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("tokenizer.timeout_seconds", 10)
	v.SetDefault("whitelist.source", "local")
	v.SetDefault("whitelist.path", "./data/whiskey_whitelist.csv")
	v.SetDefault("session.ttl_hours", 72)
	v.SetDefault("session.cookie_name", "drambook_session")
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("analysis.cache_ttl_minutes", 5)
	v.SetDefault("analysis.recent_window", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Explicit env bindings for secrets and deploy-time endpoints
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.name", "DB_NAME")
	v.BindEnv("tokenizer.base_url", "TOKENIZER_BASE_URL")
	v.BindEnv("whitelist.s3.access_key", "WHITELIST_S3_ACCESS_KEY")
	v.BindEnv("whitelist.s3.secret_key", "WHITELIST_S3_SECRET_KEY")
	v.BindEnv("whitelist.s3.endpoint", "WHITELIST_S3_ENDPOINT")
	v.BindEnv("kakao.client_id", "KAKAO_CLIENT_ID")
	v.BindEnv("kakao.client_secret", "KAKAO_CLIENT_SECRET")
	v.BindEnv("kakao.redirect_url", "KAKAO_REDIRECT_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
