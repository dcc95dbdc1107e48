package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type AnalyzerConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
}

func (config AnalyzerConfig) validate() error {

	if config.BaseURL == "" {
		return fmt.Errorf("missing variable: analyzer base_url")
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("analyzer request_timeout must be positive")
	}

	return nil
}

func (config AnalyzerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("analyzer.base_url", "ANALYZER_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("analyzer.request_timeout", "ANALYZER_REQUEST_TIMEOUT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("analyzer.max_requests_per_second", "ANALYZER_MAX_REQUESTS_PER_SECOND"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
