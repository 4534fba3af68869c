package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/config"
	"github.com/kahvecikaan/toyshop/internal/database"
	"github.com/kahvecikaan/toyshop/internal/repository"
	"gorm.io/gorm"
)

func setup() (*config.Config, hclog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "toyshop",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})
	return cfg, logger, nil
}

// stores holds the repositories selected by the configuration. pinger and
// db are nil for the in-memory store.
type stores struct {
	toys       repository.ToyRepository
	categories repository.CategoryRepository
	pinger     repository.Pinger
	db         *gorm.DB
}

func (s *stores) Close() error {
	if s.db == nil {
		return nil
	}
	return database.Close(s.db)
}

func openStores(cfg *config.Config, logger hclog.Logger) (*stores, error) {
	if cfg.Store == config.StoreMemory {
		return &stores{
			toys:       repository.NewMemoryToyRepository(),
			categories: repository.NewMemoryCategoryRepository(),
		}, nil
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	toys := repository.NewGormToyRepository(db)
	s := &stores{
		toys:       toys,
		categories: repository.NewGormCategoryRepository(db),
		db:         db,
	}
	if p, ok := toys.(repository.Pinger); ok {
		s.pinger = p
	}
	return s, nil
}

func openDatabase(cfg *config.Config, logger hclog.Logger) (*gorm.DB, error) {
	if cfg.Store == config.StoreMemory {
		return nil, fmt.Errorf("STORE=%s has no database; use postgres or sqlite", cfg.Store)
	}

	db, err := database.Open(cfg, logger.Named("gorm"))
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, err
	}

	logger.Info("Connected to database", "store", cfg.Store)
	return db, nil
}

func seed(ctx context.Context, s *stores, logger hclog.Logger) error {
	_, err := database.Seed(ctx, s.categories, s.toys, time.Now().UTC().Truncate(time.Microsecond), logger.Named("seed"))
	return err
}
