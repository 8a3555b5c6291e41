package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Admin    AdminConfig
	Salon    SalonConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// AdminConfig holds the seed credentials for the bootstrap admin
// account. The insert is idempotent: an existing admin is not an error.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

// SalonConfig carries business parameters surfaced to clients.
type SalonConfig struct {
	Name             string
	CountryCallingCode string
	OpenMinute       int
	CloseMinute      int
	SlotMinutes      int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ADMIN_NAME", "Administrator")
	viper.SetDefault("SALON_NAME", "Salon Nexus")
	viper.SetDefault("COUNTRY_CALLING_CODE", "55")
	viper.SetDefault("OPEN_MINUTE", 8*60)
	viper.SetDefault("CLOSE_MINUTE", 22*60)
	viper.SetDefault("SLOT_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Admin: AdminConfig{
			Name:     viper.GetString("ADMIN_NAME"),
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Salon: SalonConfig{
			Name:               viper.GetString("SALON_NAME"),
			CountryCallingCode: viper.GetString("COUNTRY_CALLING_CODE"),
			OpenMinute:         viper.GetInt("OPEN_MINUTE"),
			CloseMinute:        viper.GetInt("CLOSE_MINUTE"),
			SlotMinutes:        viper.GetInt("SLOT_MINUTES"),
		},
	}

	return config, nil
}
