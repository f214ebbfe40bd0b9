package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/beauty-pagination/internal/logger"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// logger validates itself after filling its own defaults
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
	Content    ContentConfig       `mapstructure:"content"`
}

// PaginationConfig drives list pages. CacheSize 0 turns range memoization off.
type PaginationConfig struct {
	PageSize     int `mapstructure:"page_size" validate:"gt=0,lte=100"`
	SiblingCount int `mapstructure:"sibling_count" validate:"gte=0"`
	CacheSize    int `mapstructure:"cache_size" validate:"gte=0"`
}

type ContentConfig struct {
	SnapshotPath string `mapstructure:"snapshot_path"`
}

func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
