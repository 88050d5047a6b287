package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	SQLite   SQLiteConfig
	Report   ReportConfig
	Security SecurityConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	Locale   string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLiteConfig struct {
	Path          string
	BusyTimeoutMS int
	JournalMode   string
}

type ReportConfig struct {
	OutputDir    string
	TextFileName string
	PDFFileName  string
}

type SecurityConfig struct {
	// BulkDeletePassword gates the delete-all operation. Compared verbatim.
	BulkDeletePassword string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8083"),
			Locale:   getEnv("APP_LOCALE", "en"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLiteConfig{
			Path:          getEnv("SQLITE_PATH", "products.db"),
			BusyTimeoutMS: getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
			JournalMode:   getEnv("SQLITE_JOURNAL_MODE", "WAL"),
		},
		Report: ReportConfig{
			OutputDir:    getEnv("REPORT_OUTPUT_DIR", "."),
			TextFileName: getEnv("REPORT_TEXT_FILE", "product_report_filtered.txt"),
			PDFFileName:  getEnv("REPORT_PDF_FILE", "product_report_filtered.pdf"),
		},
		Security: SecurityConfig{
			BulkDeletePassword: getEnv("BULK_DELETE_PASSWORD", "hortifruti"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
