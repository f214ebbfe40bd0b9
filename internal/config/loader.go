package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Every key needs an entry here, even a zero one: AutomaticEnv only reaches
// Unmarshal for keys viper already knows.
var defaults = map[string]any{
	"logger.env":                  "dev",
	"logger.level":                "warn",
	"logger.format":               "console",
	"logger.output_target":        "stderr",
	"logger.time_field":           "",
	"logger.time_format":          "",
	"logger.service_name":         "beauty-pagination",
	"logger.service_version":      "",
	"logger.with_caller":          false,
	"logger.stacktrace":           false,
	"logger.stacktrace_min_level": "",
	"logger.debug_file":           "",
	"logger.fields":               map[string]any{},

	"pagination.page_size":     6,
	"pagination.sibling_count": 1,
	"pagination.cache_size":    128,

	"content.snapshot_path": "content.yaml",
}

// Load reads path (YAML) when given, then applies APP_* environment
// overrides, e.g. APP_PAGINATION_PAGE_SIZE=12. An empty path means
// defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
