package config

import (
	"fmt"
	"os"
)

const defaultPaystackBaseURL = "https://api.paystack.co"

// Config holds process-wide configuration, read once at startup and passed
// explicitly to the components that need it.
type Config struct {
	JWTSecret         string
	PaystackSecretKey string
	PaystackBaseURL   string
	ServerPort        string
}

// Load reads application configuration from environment variables. A missing
// JWT secret is an error so the process refuses to start instead of failing
// lazily on the first token operation.
func Load() (*Config, error) {
	jwtSecret := os.Getenv("SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is not set")
	}

	paystackBaseURL := os.Getenv("PAYSTACK_BASE_URL")
	if paystackBaseURL == "" {
		paystackBaseURL = defaultPaystackBaseURL
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	return &Config{
		JWTSecret:         jwtSecret,
		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL:   paystackBaseURL,
		ServerPort:        serverPort,
	}, nil
}
