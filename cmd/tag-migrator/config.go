package main

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type Config struct {
	serverURL    string
	sessionToken string
	debug        string
	configFile   string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		serverURL:    env.GetVariableOrDefault(ctx, "VIM_SERVER_URL", ""),
		sessionToken: env.GetVariableOrDefault(ctx, "VIM_SESSION_TOKEN", ""),
		debug:        env.GetVariableOrDefault(ctx, "VIM_CLIENT_DEBUG", "false"),
		configFile:   env.GetVariableOrDefault(ctx, "MIGRATOR_CONFIG_FILE", ""),
	}
}
