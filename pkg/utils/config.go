package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Session SessionConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	// PublicBaseURL is the externally reachable base of this client,
	// used to build the payment redirect templates.
	PublicBaseURL string
}

type BackendConfig struct {
	// BaseURL of the CineHub REST backend. Historically this diverged
	// between a local and a hosted value across pages; it is a single
	// deployment-time setting here.
	BaseURL string
	Timeout time.Duration
}

type CatalogConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

type BookingConfig struct {
	SeatRows  int
	SeatCols  int
	UnitPrice int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:4001")
	viper.SetDefault("BACKEND_TIMEOUT", "10s")
	viper.SetDefault("CATALOG_BASE_URL", "https://www.omdbapi.com")
	viper.SetDefault("CATALOG_TIMEOUT", "10s")
	viper.SetDefault("CATALOG_CACHE_TTL", "10m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("SESSION_COOKIE", "cinehub_session")
	viper.SetDefault("SEAT_ROWS", 7)
	viper.SetDefault("SEAT_COLS", 7)
	viper.SetDefault("TICKET_UNIT_PRICE", 150)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			PublicBaseURL: viper.GetString("PUBLIC_BASE_URL"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: viper.GetDuration("BACKEND_TIMEOUT"),
		},
		Catalog: CatalogConfig{
			BaseURL:  viper.GetString("CATALOG_BASE_URL"),
			APIKey:   viper.GetString("CATALOG_API_KEY"),
			Timeout:  viper.GetDuration("CATALOG_TIMEOUT"),
			CacheTTL: viper.GetDuration("CATALOG_CACHE_TTL"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			TTL:        viper.GetDuration("SESSION_TTL"),
			CookieName: viper.GetString("SESSION_COOKIE"),
		},
		Booking: BookingConfig{
			SeatRows:  viper.GetInt("SEAT_ROWS"),
			SeatCols:  viper.GetInt("SEAT_COLS"),
			UnitPrice: viper.GetInt("TICKET_UNIT_PRICE"),
		},
	}

	return config, nil
}
