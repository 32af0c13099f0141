// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available from a config file and those bound from command line flags
type Config struct {
	// half the number of bases buffered around a requested offset
	HalfWindow int `mapstructure:"half-window"`

	// timeout on requests to a DAS server
	Timeout time.Duration `mapstructure:"timeout"`

	// width of sequence lines written as FASTA
	LineWidth int `mapstructure:"line-width"`

	// whether to log window refills to stderr
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers fallback values with Viper. Called once from
// /cmd before any flags are bound.
func SetDefaults() {
	viper.SetDefault("half-window", 1000000)
	viper.SetDefault("timeout", time.Minute)
	viper.SetDefault("line-width", 60)
	viper.SetDefault("verbose", false)
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
