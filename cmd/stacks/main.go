package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driven/config/file"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driven/metadata/openlibrary"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driven/storage/sqlite"
	"github.com/bookstack-labs/stacks-cli/internal/adapters/driving/cli"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
	"github.com/bookstack-labs/stacks-cli/internal/core/services"
	"github.com/bookstack-labs/stacks-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)

	// Reload settings when the config file is edited outside of stacks.
	watcher, err := file.NewWatcher(configStore, func() {
		logger.Info("Configuration reloaded")
	})
	if err != nil {
		logger.Warn("config watch unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	settings, err := settingsService.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening library database: %w", err)
	}
	defer store.Close()

	metadataClient := openlibrary.NewClient(settings.MetadataBaseURL)

	libraryService := services.NewLibraryService(store.BookStore(), store.ActivityStore())
	progressService := services.NewProgressService(store.BookStore(), store.ProgressStore(), store.ActivityStore())
	reviewService := services.NewReviewService(store.BookStore(), store.ReviewStore(), store.ActivityStore())
	activityService := services.NewActivityService(store.ActivityStore())
	searchService := services.NewSearchService(metadataClient, store.BookStore())

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Search:   searchService,
		Library:  libraryService,
		Progress: progressService,
		Review:   reviewService,
		Activity: activityService,
		Settings: settingsService,
	})

	// Each search box gets its own orchestrator, bound to the notify
	// callback the view supplies.
	cli.SetTUIConfig(&cli.TUIConfig{
		SearchFactory: func(notify func(domain.SearchState)) driving.IncrementalSearch {
			current, err := settingsService.Get(context.Background())
			if err != nil {
				defaults := domain.DefaultSettings()
				current = &defaults
			}
			return services.NewOrchestrator(services.OrchestratorConfig{
				Remote: metadataClient,
				Snapshot: func() []domain.Book {
					books, err := store.BookStore().List(context.Background())
					if err != nil {
						logger.Warn("catalogue snapshot: %v", err)
						return nil
					}
					return books
				},
				Limit:  current.SearchLimit,
				Delay:  time.Duration(current.DebounceMS) * time.Millisecond,
				Notify: notify,
			})
		},
	})

	return cli.ExecuteContext(ctx)
}
