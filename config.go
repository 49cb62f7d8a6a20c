package main

import "os"

// Config holds everything the server reads from the environment.
// Loaded once at startup; treated as immutable afterwards.
type Config struct {
	Port string

	// ContentBaseURL points the content loader at a remote backend.
	// Empty means same-origin: collections come straight from the
	// local store.
	ContentBaseURL string

	DBPath      string
	ContentFile string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string

	AdminUsername string
	AdminPassword string

	LogLevel string
}

// loadConfig reads the configuration from environment variables.
// Everything is optional and falls back to a development default.
func loadConfig() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		ContentBaseURL: os.Getenv("CONTENT_BASE_URL"),
		DBPath:         getEnv("DB_PATH", "portfolio.db"),
		ContentFile:    getEnv("CONTENT_FILE", "content.yaml"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		ToEmail:        os.Getenv("TO_EMAIL"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
