package config

import (
	"log"
	"os"
	"strconv"
)

// Get reads an environment variable with a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt reads an integer environment variable; malformed values fall
// back with a log line so a typo in the environment is not silent.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: key=%s value=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// GetFloat reads a float environment variable; malformed values fall
// back with a log line.
func GetFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: key=%s value=%q is not a number, using %g", key, v, fallback)
		return fallback
	}
	return f
}
