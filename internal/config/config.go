package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary Primary      `koanf:"primary"`
	Server  ServerConfig `koanf:"server"`
	Logger  LoggerConfig `koanf:"logger"`
	Store   StoreConfig  `koanf:"store"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// StoreConfig carries the storefront constants: the currency label printed
// on invoices and chat replies, the WhatsApp destination for shared
// invoices, and the file-export settings.
type StoreConfig struct {
	CurrencyLabel   string `koanf:"currency_label" validate:"required"`
	WhatsAppNumber  string `koanf:"whatsapp_number" validate:"required"`
	InvoiceFilename string `koanf:"invoice_filename" validate:"required"`
	ExportDir       string `koanf:"export_dir" validate:"required"`
}

// defaults are loaded first; STOREFRONT_* environment variables override.
var defaults = map[string]interface{}{
	"primary.env":            "development",
	"server.port":            "8080",
	"server.read_timeout":    "10s",
	"server.write_timeout":   "10s",
	"server.idle_timeout":    "60s",
	"logger.level":           "info",
	"store.currency_label":   "EGP",
	"store.whatsapp_number":  "201098662418",
	"store.invoice_filename": "invoice.txt",
	"store.export_dir":       "./invoices",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("STOREFRONT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STOREFRONT_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
