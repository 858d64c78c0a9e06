package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL  string
	SupabaseKey  string
	FetchRetries int
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		return nil, err
	}

	// FETCH_RETRIES включает ограниченные повторы сетевых вызовов,
	// по умолчанию повторы выключены
	retries := 0
	if v := os.Getenv("FETCH_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retries = n
		}
	}

	return &Config{
		SupabaseURL:  os.Getenv("SUPABASE_URL"),
		SupabaseKey:  os.Getenv("SUPABASE_KEY"),
		FetchRetries: retries,
	}, nil
}
