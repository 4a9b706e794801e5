package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Content store configuration
	SanityProjectID  string `yaml:"SANITY_PROJECT_ID"`
	SanityDataset    string `yaml:"SANITY_DATASET"`
	SanityToken      string `yaml:"SANITY_TOKEN"`
	SanityAPIVersion string `yaml:"SANITY_API_VERSION"`
	SanityUseCDN     string `yaml:"SANITY_USE_CDN"`
	SiteID           string `yaml:"SITE_ID"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// Static output
	PublicDir string `yaml:"PUBLIC_DIR"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	NotifyEmail      string `yaml:"NOTIFY_EMAIL"`

	// Application
	AppPort  string `yaml:"APP_PORT"`
	AppEnv   string `yaml:"APP_ENV"`
	LogLevel string `yaml:"LOG_LEVEL"`
}

var config Config

var defaults = map[string]string{
	"SANITY_DATASET":     "production",
	"SANITY_API_VERSION": "2023-11-01",
	"SANITY_USE_CDN":     "true",
	"GEMINI_MODEL":       "gemini-2.5-flash",
	"PUBLIC_DIR":         "public",
	"APP_PORT":           "8080",
	"APP_ENV":            "development",
	"LOG_LEVEL":          "info",
}

// LoadConfigFrom reads the yaml file at path into the package config. A missing file
// is not an error: every key can also come from the environment. A .env file in the
// working directory is loaded into the environment first.
func LoadConfigFrom(path string) error {
	config = Config{}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		config = Config{}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// GetConfig resolves key from the environment, then the yaml file, then the built-in
// default. Credentials never have a default.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fileValue(key); v != "" {
		return v
	}
	return defaults[key]
}

func GetBoolConfig(key string) bool {
	b, err := strconv.ParseBool(GetConfig(key))
	if err != nil {
		return false
	}
	return b
}

func fileValue(key string) string {
	switch key {
	case "SANITY_PROJECT_ID":
		return config.SanityProjectID
	case "SANITY_DATASET":
		return config.SanityDataset
	case "SANITY_TOKEN":
		return config.SanityToken
	case "SANITY_API_VERSION":
		return config.SanityAPIVersion
	case "SANITY_USE_CDN":
		return config.SanityUseCDN
	case "SITE_ID":
		return config.SiteID
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "PUBLIC_DIR":
		return config.PublicDir
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "NOTIFY_EMAIL":
		return config.NotifyEmail
	case "APP_PORT":
		return config.AppPort
	case "APP_ENV":
		return config.AppEnv
	case "LOG_LEVEL":
		return config.LogLevel
	default:
		return ""
	}
}
