package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Auth     AuthConfig
	I18n     I18nConfig
	Mapbox   MapboxConfig
	Booking  BookingConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	TourCacheTTL      time.Duration
	TransportCacheTTL time.Duration
	RouteCacheTTL     time.Duration
	SummaryCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret  string
	CookieName string
}

type I18nConfig struct {
	DefaultLanguage    string
	SupportedLanguages []string
	CookieName         string
	PreferenceTTL      time.Duration
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	DrivingProfile string
	RequestTimeout int // seconds
	MaxWaypoints   int
}

type BookingConfig struct {
	WhatsAppPhone string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TourCacheTTL:      time.Duration(viper.GetInt("TOUR_CACHE_TTL")) * time.Second,
			TransportCacheTTL: time.Duration(viper.GetInt("TRANSPORT_CACHE_TTL")) * time.Second,
			RouteCacheTTL:     time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			SummaryCacheTTL:   time.Duration(viper.GetInt("SUMMARY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret:  viper.GetString("AUTH_JWT_SECRET"),
			CookieName: viper.GetString("AUTH_COOKIE_NAME"),
		},
		I18n: I18nConfig{
			DefaultLanguage:    viper.GetString("I18N_DEFAULT_LANGUAGE"),
			SupportedLanguages: parseList(viper.GetString("I18N_SUPPORTED_LANGUAGES")),
			CookieName:         viper.GetString("I18N_COOKIE_NAME"),
			PreferenceTTL:      time.Duration(viper.GetInt("I18N_PREFERENCE_TTL")) * time.Second,
		},
		Mapbox: MapboxConfig{
			AccessToken:    viper.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        viper.GetString("MAPBOX_BASE_URL"),
			DrivingProfile: viper.GetString("MAPBOX_DRIVING_PROFILE"),
			RequestTimeout: viper.GetInt("MAPBOX_REQUEST_TIMEOUT"),
			MaxWaypoints:   viper.GetInt("MAPBOX_MAX_WAYPOINTS"),
		},
		Booking: BookingConfig{
			WhatsAppPhone: viper.GetString("BOOKING_WHATSAPP_PHONE"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.TourCacheTTL == 0 {
		cfg.Cache.TourCacheTTL = 300 * time.Second
	}
	if cfg.Cache.TransportCacheTTL == 0 {
		cfg.Cache.TransportCacheTTL = 300 * time.Second
	}
	if cfg.Cache.RouteCacheTTL == 0 {
		cfg.Cache.RouteCacheTTL = 24 * time.Hour
	}
	if cfg.Cache.SummaryCacheTTL == 0 {
		cfg.Cache.SummaryCacheTTL = time.Hour
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "token"
	}
	if cfg.I18n.DefaultLanguage == "" {
		cfg.I18n.DefaultLanguage = "es"
	}
	if len(cfg.I18n.SupportedLanguages) == 0 {
		cfg.I18n.SupportedLanguages = []string{"es", "en", "fr", "de"}
	}
	if cfg.I18n.CookieName == "" {
		cfg.I18n.CookieName = "lang"
	}
	if cfg.I18n.PreferenceTTL == 0 {
		cfg.I18n.PreferenceTTL = 365 * 24 * time.Hour
	}
	if cfg.Mapbox.BaseURL == "" {
		cfg.Mapbox.BaseURL = "https://api.mapbox.com"
	}
	if cfg.Mapbox.DrivingProfile == "" {
		cfg.Mapbox.DrivingProfile = "mapbox/driving"
	}
	if cfg.Mapbox.RequestTimeout == 0 {
		cfg.Mapbox.RequestTimeout = 30
	}
	if cfg.Mapbox.MaxWaypoints == 0 {
		cfg.Mapbox.MaxWaypoints = 25
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "cart-summary-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
