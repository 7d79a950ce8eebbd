package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		OpenLibrary
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		// Postgres credentials. When User and Name are both set the server
		// connects to Postgres; otherwise it falls back to a local sqlite
		// file at Path.
		User     string
		Host     string
		Name     string
		Password string
		Port     int
		SSLMode  string

		Path string // sqlite fallback
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	OpenLibrary struct {
		BaseURL string
	}
)

// PostgresDSN builds a libpq-style DSN from the configured credentials.
func (d Database) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// UsePostgres reports whether enough credentials are configured to talk to
// Postgres instead of the sqlite fallback.
func (d Database) UsePostgres() bool {
	return d.User != "" && d.Name != ""
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("db_user", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_name", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("openlibrary_base_url", DefaultOpenLibraryBaseURL)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			User:     v.GetString("DB_USER"),
			Host:     v.GetString("DB_HOST"),
			Name:     v.GetString("DB_NAME"),
			Password: v.GetString("DB_PASSWORD"),
			Port:     v.GetInt("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Path:     v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		OpenLibrary: OpenLibrary{
			BaseURL: v.GetString("OPENLIBRARY_BASE_URL"),
		},
	}
}
