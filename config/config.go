package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	UploadDir   string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	LeadNotifyTo  string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Other
	AllowedOrigins []string
	SiteURL        string
	// Admin API key (bcrypt hash of the key presented in X-Admin-Key)
	AdminKeyHash string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	adminKeyHash := getEnv("ADMIN_KEY_HASH", "")
	ValidateAdminKeyHash(adminKeyHash, environment)

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "db/app.db"),
		Environment:       environment,
		UploadDir:         getEnv("UPLOAD_DIR", "static/uploads"),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		EmailFrom:         getEnv("EMAIL_FROM", "leads@oakbridgecapital.co.uk"),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "Oakbridge Capital"),
		LeadNotifyTo:      getEnv("LEAD_NOTIFY_TO", "deals@oakbridgecapital.co.uk"),
		EmailTestMode:     getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SiteURL:           getEnv("SITE_URL", "https://oakbridgecapital.co.uk"),
		AdminKeyHash:      adminKeyHash,
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// ValidateAdminKeyHash checks that the admin key hash is present and looks like
// a bcrypt hash. In production a missing hash disables the whole admin surface,
// so we fail fast there.
func ValidateAdminKeyHash(hash string, environment string) {
	if hash == "" {
		if environment == "production" {
			log.Fatal("[CRITICAL] ADMIN_KEY_HASH is not set. Generate one with: htpasswd -bnBC 10 '' <key> | tr -d ':'")
		}
		log.Println("[WARNING] ADMIN_KEY_HASH is not set. Admin endpoints are disabled.")
		return
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") && !strings.HasPrefix(hash, "$2y$") {
		log.Printf("[WARNING] ADMIN_KEY_HASH does not look like a bcrypt hash; admin authentication will reject all keys")
	}
}
