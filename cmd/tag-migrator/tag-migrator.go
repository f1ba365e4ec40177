package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/diwise/tag-migrator/internal/pkg/application/migrator"
	"github.com/diwise/tag-migrator/pkg/vim/client"
)

const (
	appName string = "tag-migrator"
)

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	cfg := LoadConfiguration(ctx)

	runCfg, err := loadRunConfiguration(cfg.configFile)
	if err != nil {
		log.Error("failed to load run configuration", "err", err.Error())
		os.Exit(1)
	}

	c := client.NewManagementClient(cfg.serverURL,
		client.SessionToken(cfg.sessionToken),
		client.Debug(cfg.debug),
	)

	result, err := migrator.Run(ctx, c, runCfg)
	if err != nil {
		log.Error("migration failed", "err", err.Error())
		os.Exit(1)
	}

	log.Info("migration finished",
		slog.Int("categories_created", result.CategoriesCreated),
		slog.Int("categories_updated", result.CategoriesUpdated),
		slog.Int("tags_created", result.TagsCreated),
		slog.Int("assignments_created", result.AssignmentsCreated),
	)
}

func loadRunConfiguration(path string) (*migrator.Config, error) {
	if path == "" {
		return &migrator.Config{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return migrator.LoadConfiguration(f)
}
