package main

import (
	"fmt"

	"github.com/Veloruze/shop-comofootball-bot/internal/engine"
	"github.com/Veloruze/shop-comofootball-bot/internal/shopify"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func refreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Run one refresh cycle and print detected changes",
		Long: `Fetch the current shop catalog, classify size listings, compare against
the previous snapshot and print the rendered notifications without sending
them anywhere.`,
		RunE: runRefresh,
	}

	cmd.Flags().String("shop-url", "", "Shop catalog URL")
	_ = viper.BindPFlag("shop.url", cmd.Flags().Lookup("shop-url"))

	return cmd
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store, shopify.NewClient(shopURL()))

	result, err := eng.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	fmt.Printf("Refreshed %d products (skipped %d malformed)\n", result.TotalProducts, result.Skipped)
	if result.FirstRun {
		fmt.Println("First refresh: baseline saved, nothing to compare against yet.")
		return nil
	}
	if len(result.Messages) == 0 {
		fmt.Println("No changes since last refresh.")
		return nil
	}

	for _, msg := range result.Messages {
		fmt.Println()
		fmt.Println(msg)
	}
	return nil
}
