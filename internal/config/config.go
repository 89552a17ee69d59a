package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	FMS      FMSConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port    string
	GinMode string
}

// FMSConfig points at the external billing system that receives patient payloads.
type FMSConfig struct {
	URL string
}

type SessionConfig struct {
	Name   string
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "3306"),
			User:         getEnv("DB_USER", "root"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "pms"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 100),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 0),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "4000"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		FMS: FMSConfig{
			URL: getEnv("FMS_URL", "http://localhost:5000/hospital_patients"),
		},
		Session: SessionConfig{
			Name:   getEnv("SESSION_NAME", "pms_session"),
			Secret: getEnv("SESSION_SECRET", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	// The secret lives for the whole process; restarting invalidates old flash cookies.
	if config.Session.Secret == "" {
		config.Session.Secret = randomSecret()
	}

	return config
}

// DSN builds the go-sql-driver/mysql connection string.
func (d DatabaseConfig) DSN() string {
	c := mysql.NewConfig()
	c.User = d.User
	c.Passwd = d.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(d.Host, d.Port)
	c.DBName = d.Database
	c.ParseTime = true
	c.Loc = time.Local
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

// IsRelease reports whether gin runs in release mode.
func (s ServerConfig) IsRelease() bool {
	return s.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Warning: Invalid integer '%s' for %s, using default\n", raw, key)
		return defaultValue
	}
	return n
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("config: generate session secret: %v", err))
	}
	return hex.EncodeToString(buf)
}
