package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veloruze/shop-comofootball-bot/internal/bot"
	"github.com/Veloruze/shop-comofootball-bot/internal/common"
	"github.com/Veloruze/shop-comofootball-bot/internal/engine"
	"github.com/Veloruze/shop-comofootball-bot/internal/shopify"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot with periodic auto-refresh",
		Long: `Start the Telegram bot, process subscriber commands and refresh the shop
catalog on a fixed interval, notifying subscribers about detected changes.`,
		RunE: runServe,
	}

	// Flags
	cmd.Flags().String("token", "", "Telegram bot token")
	cmd.Flags().String("shop-url", "", "Shop catalog URL")
	cmd.Flags().Duration("interval", time.Hour, "Auto-refresh interval")

	// Bind to viper
	_ = viper.BindPFlag("telegram.token", cmd.Flags().Lookup("token"))
	_ = viper.BindPFlag("shop.url", cmd.Flags().Lookup("shop-url"))
	_ = viper.BindPFlag("refresh.interval", cmd.Flags().Lookup("interval"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	token := viper.GetString("telegram.token")
	if token == "" {
		return common.NewUserError("Telegram token is required (set COMOBOT_TELEGRAM_TOKEN or --token)", common.ErrMissingConfig)
	}

	interval := viper.GetDuration("refresh.interval")
	if interval <= 0 {
		return common.NewUserError("refresh interval must be positive", common.ErrInvalidConfig)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	fetcher := shopify.NewClient(shopURL())
	eng := engine.New(store, fetcher)

	tgBot, err := bot.New(token, store, eng)
	if err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}

	slog.Info("Bot started", "auto_refresh_interval", interval)

	go autoRefreshLoop(ctx, eng, tgBot, interval)

	if err := tgBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("bot stopped: %w", err)
	}
	return nil
}

// autoRefreshLoop refreshes the catalog on a fixed interval and broadcasts
// resulting notifications. A tick that fires while a manual refresh is in
// flight waits for it; the engine serializes cycles internally.
func autoRefreshLoop(ctx context.Context, eng *engine.RefreshEngine, tgBot *bot.Bot, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			slog.Info("Running auto-refresh")
			result, err := eng.Refresh(ctx)
			if err != nil {
				slog.Error("Auto-refresh failed", "error", err)
				continue
			}
			tgBot.Broadcast(ctx, result.Messages)
		}
	}
}
