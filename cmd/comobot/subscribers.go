package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func subscribersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribers",
		Short: "List notification subscribers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			chatIDs, err := store.GetSubscribers(ctx)
			if err != nil {
				return fmt.Errorf("failed to load subscribers: %w", err)
			}

			if len(chatIDs) == 0 {
				fmt.Println("No subscribers.")
				return nil
			}
			for _, chatID := range chatIDs {
				fmt.Println(chatID)
			}
			fmt.Printf("\n%d subscribers\n", len(chatIDs))
			return nil
		},
	}
}
