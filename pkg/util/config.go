package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/saferoutex/pkg"
	"github.com/spf13/viper"
)

// ReadConfig loads ./data/config.(yaml|json|toml) and seeds engine defaults.
// A missing config file is fine, every knob has a default.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	viper.SetDefault("SPEED_KMPH", pkg.DEFAULT_SPEED_KMPH)
	viper.SetDefault("SNAP_TOLERANCE", pkg.MAX_SNAP_DISTANCE)
	viper.SetDefault("GRAPH_CACHE_CAPACITY", pkg.GRAPH_CACHE_CAPACITY)
	viper.SetDefault("GRAPH_CACHE_TTL", pkg.GRAPH_CACHE_TTL)
	viper.SetDefault("RISK_MEMO_CAPACITY", pkg.RISK_MEMO_CAPACITY)
	viper.SetDefault("DATASET_PATH", "./data/risk_data.json")
	viper.SetDefault("RATE_LIMIT_RPS", 0.5)
	viper.SetDefault("RATE_LIMIT_BURST", 30)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
