package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultPort       = 8080
	defaultMaxWorkers = 64
)

// Config is assembled once at startup and never mutated afterwards.
type Config struct {
	Port       int
	Mode       DispatchMode
	RouteTable string
	MaxWorkers int
	Debug      bool
}

// resolvePort reads PORT from the environment. Absent, non-numeric or
// out-of-range values fall back to the default instead of propagating.
func resolvePort() int {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	_ = v.BindEnv("port", "PORT")

	port := v.GetInt("port")
	if port < 1 || port > 65535 {
		return defaultPort
	}
	return port
}

func loadConfig(mode, routeTable string, maxWorkers int, debug bool) (*Config, error) {
	switch DispatchMode(mode) {
	case DispatchSequential, DispatchConcurrent:
	default:
		return nil, fmt.Errorf("unknown dispatch mode %q", mode)
	}
	if routeTable != "plain" && routeTable != "json" {
		return nil, fmt.Errorf("unknown route table %q", routeTable)
	}
	if maxWorkers < 1 {
		maxWorkers = defaultMaxWorkers
	}

	return &Config{
		Port:       resolvePort(),
		Mode:       DispatchMode(mode),
		RouteTable: routeTable,
		MaxWorkers: maxWorkers,
		Debug:      debug,
	}, nil
}
