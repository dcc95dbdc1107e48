package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
	"time"
)

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

func (config AuthConfig) validate() error {

	var missingFields []string

	if config.JWTSecret == "" {
		missingFields = append(missingFields, "jwt_secret")
	}

	if config.TokenTTL <= 0 {
		missingFields = append(missingFields, "token_ttl")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		return err
	}

	return viper.BindEnv("auth.token_ttl", "TOKEN_TTL")
}
