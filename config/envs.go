package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string // Host IP for the server
	RESTPort           int    // Port for the REST API
	GinMode            string // Mode for the Gin framework (e.g., release, debug, test)
	MazeSize           int    // Cells per side of every generated maze (odd, >= 5)
	MaxLevel           int    // Number of levels in a run
	JWTSecret          string // Secret key for JWT signing, random per process when empty
	JWTIssuer          string // Issuer claim for JWTs
	SessionIdleSeconds int    // Idle time after which a game session is dropped
	SweepSeconds       int    // Interval between idle session sweeps
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:             getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		MazeSize:           getEnvAsIntWithDefault("MAZE_SIZE", 15),
		MaxLevel:           getEnvAsIntWithDefault("MAX_LEVEL", 4),
		JWTSecret:          getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:          getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		SessionIdleSeconds: getEnvAsIntWithDefault("SESSION_IDLE_SECONDS", 1800),
		SweepSeconds:       getEnvAsIntWithDefault("SWEEP_SECONDS", 60),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// or returns a default value if not set. It logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
