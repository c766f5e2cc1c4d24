package storage

import (
	"context"
	"fmt"
)

// Subscribe adds a chat to the notification list. It reports whether the chat
// was newly added.
func (s *SQLiteStorage) Subscribe(ctx context.Context, chatID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO subscribers (chat_id) VALUES (?)`, chatID)
	if err != nil {
		return false, fmt.Errorf("failed to subscribe chat %d: %w", chatID, err)
	}
	added, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check subscribe result: %w", err)
	}
	return added > 0, nil
}

// Unsubscribe removes a chat from the notification list. It reports whether
// the chat was actually subscribed.
func (s *SQLiteStorage) Unsubscribe(ctx context.Context, chatID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM subscribers WHERE chat_id = ?`, chatID)
	if err != nil {
		return false, fmt.Errorf("failed to unsubscribe chat %d: %w", chatID, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check unsubscribe result: %w", err)
	}
	return removed > 0, nil
}

// GetSubscribers returns all subscribed chat IDs.
func (s *SQLiteStorage) GetSubscribers(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT chat_id FROM subscribers ORDER BY chat_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var chatIDs []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		chatIDs = append(chatIDs, chatID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}
	return chatIDs, nil
}
