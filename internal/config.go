package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	Prefix             string        `env:"QUEUE_PREFIX,default=!q" validate:"required,excludesall= "`
	StaffNames         string        `env:"STAFF_NAMES"`
	BufferSize         int           `env:"BUFFER_SIZE,default=64" validate:"min=1"`
	NumberOfWorkers    int           `env:"NUMBER_OF_WORKERS,default=1" validate:"min=1"`
	SinkTimeout        time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	HealthInterval     time.Duration `env:"HEALTH_INTERVAL,default=30s" validate:"gt=0"`
	TranscriptFilepath string        `env:"TRANSCRIPT_FILEPATH"`
	LimitEntries       *int          `env:"LIMIT_ENTRIES"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	Colours            bool          `env:"COLOURS,default=true"`
}

var validate = validator.New()

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Staff returns the configured staff names, trimmed, without empty entries.
func (c Config) Staff() []string {
	names := lo.Map(strings.Split(c.StaffNames, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Compact(names)
}

// InMemoryTranscript reports whether the transcript lives only for the process lifetime.
func (c Config) InMemoryTranscript() bool {
	return c.TranscriptFilepath == ""
}
