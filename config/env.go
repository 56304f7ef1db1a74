package config

import (
	"fmt"
	"os"
)

type AppEnv struct {
	LogLvl string

	ApiBaseURL   string
	ImageBaseURL string

	AdminOrigin string
}

func GetEnvironment() (env AppEnv, err error) {
	env = AppEnv{
		LogLvl:       getEnv("LOG_LEVEL", "debug"),
		ApiBaseURL:   getEnv("API_BASE_URL", ""),
		ImageBaseURL: getEnv("IMAGE_BASE_URL", ""),
		AdminOrigin:  getEnv("ADMIN_ORIGIN", "*"),
	}

	if env.ApiBaseURL == "" {
		return env, fmt.Errorf("incorrect environment params")
	}

	if env.ImageBaseURL == "" {
		env.ImageBaseURL = env.ApiBaseURL
	}

	return env, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
