package config

import (
	"os"
	"strconv"
	"time"

	"pdf-backend-bench/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	LogLevel       string
	MaxFileSize    int64
	TempDir        string
	PdftotextPath  string
	PdfaltoPath    string
	XsltprocPath   string
	AltoStylesheet string
	TikaURL        string
	TikaTimeout    time.Duration
}

// NewConfig creates a new configuration instance with default values.
// External tool locations default to their well-known install paths; the
// runner falls back to PATH resolution when those do not exist.
func NewConfig() domain.Config {
	return &AppConfig{
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		TempDir:        getEnvOrDefault("TEMP_DIR", ""),
		PdftotextPath:  getEnvOrDefault("PDFTOTEXT_PATH", "/usr/bin/pdftotext"),
		PdfaltoPath:    getEnvOrDefault("PDFALTO_EXECUTABLE", "pdfalto"),
		XsltprocPath:   getEnvOrDefault("XSLTPROC_PATH", "/usr/bin/xsltproc"),
		AltoStylesheet: getEnvOrDefault("ALTO_STYLESHEET", "resources/pdfalto/alto2txt.xsl"),
		TikaURL:        getEnvOrDefault("TIKA_SERVER_URL", "http://localhost:9998"),
		TikaTimeout:    getEnvDurationOrDefault("TIKA_TIMEOUT", 100*time.Second),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum accepted upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetTempDir returns the directory for scoped temporary artifacts.
// Empty means the system default.
func (c *AppConfig) GetTempDir() string {
	return c.TempDir
}

// GetPdftotextPath returns the pdftotext executable location
func (c *AppConfig) GetPdftotextPath() string {
	return c.PdftotextPath
}

// GetPdfaltoPath returns the pdfalto executable location
func (c *AppConfig) GetPdfaltoPath() string {
	return c.PdfaltoPath
}

// GetXsltprocPath returns the xsltproc executable location
func (c *AppConfig) GetXsltprocPath() string {
	return c.XsltprocPath
}

// GetAltoStylesheet returns the ALTO-to-text XSL stylesheet path
func (c *AppConfig) GetAltoStylesheet() string {
	return c.AltoStylesheet
}

// GetTikaURL returns the Tika server base URL
func (c *AppConfig) GetTikaURL() string {
	return c.TikaURL
}

// GetTikaTimeout returns the Tika client timeout
func (c *AppConfig) GetTikaTimeout() time.Duration {
	return c.TikaTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
