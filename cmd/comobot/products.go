package main

import (
	"fmt"
	"strings"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products from the latest stored snapshot",
		Long: `Print products from the most recent catalog snapshot, optionally filtered
by size-sequence verdict or size-type label.`,
		RunE: runProducts,
	}

	cmd.Flags().String("verdict", "", "Filter by verdict (sequential, non-sequential, not-applicable)")
	cmd.Flags().String("size-type", "", "Filter by size-type label (e.g. option, Taglia)")
	cmd.Flags().Bool("discounted", false, "Only show discounted products")

	_ = viper.BindPFlag("products.verdict", cmd.Flags().Lookup("verdict"))
	_ = viper.BindPFlag("products.size_type", cmd.Flags().Lookup("size-type"))
	_ = viper.BindPFlag("products.discounted", cmd.Flags().Lookup("discounted"))

	return cmd
}

func runProducts(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snapshot, err := store.GetLatestSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snapshot == nil {
		fmt.Println("No snapshot stored yet. Run 'comobot refresh' first.")
		return nil
	}

	verdictFilter, err := parseVerdictFilter(viper.GetString("products.verdict"))
	if err != nil {
		return err
	}
	sizeTypeFilter := viper.GetString("products.size_type")
	discountedOnly := viper.GetBool("products.discounted")

	shown := 0
	for _, ap := range snapshot.Products() {
		if verdictFilter != "" && ap.Verdict != verdictFilter {
			continue
		}
		if sizeTypeFilter != "" && ap.Product.SizeType != sizeTypeFilter {
			continue
		}
		if discountedOnly && !ap.Product.HasDiscount() {
			continue
		}

		shown++
		line := fmt.Sprintf("%s  €%s", ap.Product.Title, ap.Product.CurrentPrice.StringFixed(2))
		if ap.Product.HasDiscount() {
			line += fmt.Sprintf(" (was €%s, -%s%%)", ap.Product.OriginalPrice.StringFixed(2), ap.Product.DiscountPercent().StringFixed(1))
		}
		if len(ap.Product.Sizes) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(ap.Product.Sizes, ","))
		}
		line += fmt.Sprintf("  %s", ap.Verdict)
		fmt.Println(line)
	}

	fmt.Printf("\n%d of %d products (snapshot taken %s)\n", shown, snapshot.Len(), snapshot.TakenAt().Format("2006-01-02 15:04"))
	return nil
}

func parseVerdictFilter(raw string) (model.Verdict, error) {
	switch strings.ToLower(raw) {
	case "":
		return "", nil
	case "sequential":
		return model.VerdictSequential, nil
	case "non-sequential", "nonsequential":
		return model.VerdictNonSequential, nil
	case "not-applicable", "notapplicable":
		return model.VerdictNotApplicable, nil
	default:
		return "", fmt.Errorf("invalid verdict filter: %s", raw)
	}
}
