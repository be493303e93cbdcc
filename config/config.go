package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// keyFile is checked for an api_key= line before the environment.
const keyFile = "openrouter.txt"

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	TargetCount    int
	MaxPages       int
	RateLimitMs    int
	MaxRetries     int
	MaxConcurrency int

	OutputDir string
	ChromeBin string

	OpenRouterAPIKey string
	AnalysisModel    string
	AnalysisBaseURL  string
	MaxAnalyze       int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		TargetCount:    getEnvInt("TARGET_COUNT", 1000),
		MaxPages:       getEnvInt("MAX_PAGES", 10),
		RateLimitMs:    getEnvInt("RATE_LIMIT_MS", 3000),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 2),

		OutputDir: getEnv("OUTPUT_DIR", "."),
		ChromeBin: getEnv("CHROME_BIN", ""),

		OpenRouterAPIKey: loadAPIKey(),
		AnalysisModel:    getEnv("ANALYSIS_MODEL", "x-ai/grok-4-fast:free"),
		AnalysisBaseURL:  getEnv("ANALYSIS_BASE_URL", "https://openrouter.ai/api/v1/chat/completions"),
		MaxAnalyze:       getEnvInt("MAX_ANALYZE", 50),
	}
}

// loadAPIKey resolves the analysis key: an api_key= line in openrouter.txt
// wins over the OPENROUTER_API_KEY environment variable.
func loadAPIKey() string {
	if data, err := os.ReadFile(keyFile); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "api_key=") {
				continue
			}
			if key := strings.TrimPrefix(line, "api_key="); key != "" {
				return key
			}
		}
	}
	return os.Getenv("OPENROUTER_API_KEY")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
