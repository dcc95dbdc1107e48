package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type ParserConfig struct {
	// Command is an optional external extractor invoked with the file path
	// as its single argument; it must print JSON to stdout. When empty the
	// in-process document extractor is used.
	Command        string        `mapstructure:"command"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	UploadDir       string        `mapstructure:"upload_dir"`
	UploadMaxAge    time.Duration `mapstructure:"upload_max_age"`
	CleanupSchedule string        `mapstructure:"cleanup_schedule"`
}

func (config ParserConfig) validate() error {

	if config.UploadDir == "" {
		return fmt.Errorf("missing variable: parser upload_dir")
	}

	if config.Command != "" && config.CommandTimeout <= 0 {
		return fmt.Errorf("parser command_timeout must be positive when command is set")
	}

	return nil
}

func (config ParserConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("parser.command", "PARSER_COMMAND"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("parser.command_timeout", "PARSER_COMMAND_TIMEOUT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("parser.upload_dir", "UPLOAD_DIR"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
