package main

import (
	"context"
	"fmt"

	"github.com/Veloruze/shop-comofootball-bot/internal/config"
	"github.com/Veloruze/shop-comofootball-bot/internal/storage"

	"github.com/spf13/viper"
)

// defaultShopURL is the public catalog endpoint of the Como Football shop.
const defaultShopURL = "https://store.comofootball.com/products.json"

// openStorage opens the configured database and runs migrations.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func shopURL() string {
	if url := viper.GetString("shop.url"); url != "" {
		return url
	}
	return defaultShopURL
}
