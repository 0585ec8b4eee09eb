package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Store     StoreConfig
	Printer   PrinterConfig
	Documents DocumentsConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// StoreConfig is the venue header printed on every bill and report.
type StoreConfig struct {
	Name           string
	Subtitle       string
	CurrencySymbol string
}

// PrinterDevice is one configured output device: a display name and a
// transport spec ("usb:/dev/usb/lp0", "network:host:port", "none").
type PrinterDevice struct {
	Name string
	Spec string
}

type PrinterConfig struct {
	// Devices are the enumerable output devices, in discovery order,
	// parsed from "Name=spec" entries.
	Devices []PrinterDevice
	// ModelToken extends the device ranking with a printer model
	// keyword, e.g. "tm-t82".
	ModelToken string
}

// DocumentsConfig locates the durable artifact directory.
type DocumentsConfig struct {
	Dir string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "canteen-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "canteen")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("STORE_NAME", "LAKSHMI MULTIPLEX")
	viper.SetDefault("STORE_SUBTITLE", "Theatre Canteen")
	viper.SetDefault("STORE_CURRENCY_SYMBOL", "₹")
	viper.SetDefault("PRINTER_DEVICES", []string{})
	viper.SetDefault("PRINTER_MODEL_TOKEN", "tm-t82")
	viper.SetDefault("DOCUMENTS_DIR", defaultDocumentsDir())
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Store: StoreConfig{
			Name:           viper.GetString("STORE_NAME"),
			Subtitle:       viper.GetString("STORE_SUBTITLE"),
			CurrencySymbol: viper.GetString("STORE_CURRENCY_SYMBOL"),
		},
		Printer: PrinterConfig{
			Devices:    parseDevices(viper.GetStringSlice("PRINTER_DEVICES")),
			ModelToken: viper.GetString("PRINTER_MODEL_TOKEN"),
		},
		Documents: DocumentsConfig{
			Dir: viper.GetString("DOCUMENTS_DIR"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// parseDevices parses "Name=spec" entries; malformed entries are dropped.
func parseDevices(entries []string) []PrinterDevice {
	devices := make([]PrinterDevice, 0, len(entries))
	for _, e := range entries {
		name, spec, ok := strings.Cut(e, "=")
		name = strings.TrimSpace(name)
		spec = strings.TrimSpace(spec)
		if !ok || name == "" || spec == "" {
			log.Printf("Warning: ignoring malformed printer device entry %q", e)
			continue
		}
		devices = append(devices, PrinterDevice{Name: name, Spec: spec})
	}
	return devices
}

// defaultDocumentsDir mirrors the desktop app: artifacts land in the
// user's Documents folder.
func defaultDocumentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./documents"
	}
	return filepath.Join(home, "Documents")
}
