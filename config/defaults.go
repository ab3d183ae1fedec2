// Package config provides centralized default values for the Beckons site server
package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

// loadEnvFile loads environment variables from .env file
func loadEnvFile() {
	envLoaded.Do(func() {
		loadEnvFileOnce()
	})
}

func loadEnvFileOnce() {
	file, err := os.Open(".env")
	if err != nil {
		// .env file is optional, don't error if it doesn't exist
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Split on first = sign
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Only set if not already set in environment
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

func init() {
	// Ensure .env is loaded before any config access
	loadEnvFile()
}

// getEnvInt reads environment variable with fallback to default
func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvString reads environment variable with string fallback
func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// Server Configuration
var (
	Port = getEnvString("PORT", "8080")

	ServerReadTimeout  = time.Duration(getEnvInt("SERVER_READ_TIMEOUT_SECONDS", 15)) * time.Second
	ServerWriteTimeout = time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	ServerIdleTimeout  = time.Duration(getEnvInt("SERVER_IDLE_TIMEOUT_SECONDS", 60)) * time.Second
)

// CMS Backend Configuration
var (
	CMSGraphQLURL     = getEnvString("CMS_GRAPHQL_URL", "https://backend-production-162b.up.railway.app/graphql")
	CMSOrganizationID = getEnvString("CMS_ORGANIZATION_ID", "")
	CMSOrgSlug        = getEnvString("CMS_ORG_SLUG", "beckons")
	CMSEmail          = getEnvString("CMS_EMAIL", "dev@sphereos.local")
	CMSPassword       = getEnvString("CMS_PASSWORD", "password123")
	CMSAuthToken      = getEnvString("CMS_AUTH_TOKEN", "")
	MediaCDNBase      = getEnvString("MEDIA_CDN_BASE", "https://media.sphereos.dev")

	CMSRequestTimeout = time.Duration(getEnvInt("CMS_REQUEST_TIMEOUT_SECONDS", 20)) * time.Second
)

// Editor Configuration
var (
	// Bcrypt hash of the editor password; edit mode is disabled when empty.
	EditorPasswordHash = getEnvString("EDITOR_PASSWORD_HASH", "")
	JWTSecret          = getEnvString("JWT_SECRET", "")

	EditorSessionTTL = time.Duration(getEnvInt("EDITOR_SESSION_TTL_HOURS", 12)) * time.Hour
)

// Lead Storage Configuration
var (
	LeadsDBDriver = getEnvString("LEADS_DB_DRIVER", "sqlite3")
	LeadsDBPath   = getEnvString("LEADS_DB_PATH", "beckons-leads.db")

	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
)

// Email Configuration
var (
	InquiryNotifyEmail = getEnvString("INQUIRY_NOTIFY_EMAIL", "")
)

// Media Configuration
var (
	MediaVariantLarge  = getEnvInt("MEDIA_VARIANT_LARGE_PX", 1920)
	MediaVariantMedium = getEnvInt("MEDIA_VARIANT_MEDIUM_PX", 800)
	MediaVariantThumb  = getEnvInt("MEDIA_VARIANT_THUMB_PX", 200)
)
