package main

import (
	"context"
	"os"

	"github.com/yigit/coursedesk/internal/client"
	"github.com/yigit/coursedesk/internal/client/cli"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

func main() {
	cfg, err := client.LoadConfig()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load client configuration")
		os.Exit(1)
	}

	if err := cli.NewApp(cfg, os.Stdout).RunContext(context.Background(), os.Args); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
