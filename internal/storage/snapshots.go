package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"

	"github.com/shopspring/decimal"
)

// retainedSnapshots caps snapshot history: the current snapshot plus the one
// it will be compared against on the next refresh.
const retainedSnapshots = 2

// SaveSnapshot persists a snapshot and prunes history down to the two most
// recent snapshots.
func (s *SQLiteStorage) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `INSERT INTO snapshots (taken_at) VALUES (?)`, snapshot.TakenAt().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get snapshot id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_products
		(snapshot_id, position, product_id, title, handle, size_type, sizes, description, current_price, original_price, verdict)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for position, ap := range snapshot.Products() {
		sizesJSON, err := json.Marshal(ap.Product.Sizes)
		if err != nil {
			return fmt.Errorf("failed to encode sizes for product %s: %w", ap.Product.ID, err)
		}

		var originalPrice sql.NullString
		if ap.Product.OriginalPrice.IsPositive() {
			originalPrice = sql.NullString{String: ap.Product.OriginalPrice.String(), Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			snapshotID,
			position,
			ap.Product.ID,
			ap.Product.Title,
			ap.Product.Handle,
			ap.Product.SizeType,
			string(sizesJSON),
			ap.Product.Description,
			ap.Product.CurrentPrice.String(),
			originalPrice,
			string(ap.Verdict),
		); err != nil {
			return fmt.Errorf("failed to insert product %s: %w", ap.Product.ID, err)
		}
	}

	if err := pruneSnapshotsTx(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// pruneSnapshotsTx deletes every snapshot except the most recent two.
func pruneSnapshotsTx(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE id NOT IN (
		SELECT id FROM snapshots ORDER BY id DESC LIMIT ?
	)`, retainedSnapshots); err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return nil
}

// GetLatestSnapshot loads the most recent snapshot. It returns (nil, nil)
// when no snapshot has been stored yet, which callers treat as a first run.
func (s *SQLiteStorage) GetLatestSnapshot(ctx context.Context) (*model.Snapshot, error) {
	var snapshotID int64
	var takenAt time.Time
	err := s.db.QueryRowContext(ctx, `SELECT id, taken_at FROM snapshots ORDER BY id DESC LIMIT 1`).
		Scan(&snapshotID, &takenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT product_id, title, handle, size_type, sizes, description, current_price, original_price, verdict
		FROM snapshot_products WHERE snapshot_id = ? ORDER BY position`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []model.AnnotatedProduct
	for rows.Next() {
		var (
			p             model.Product
			sizesJSON     string
			currentPrice  string
			originalPrice sql.NullString
			verdict       string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Handle, &p.SizeType, &sizesJSON, &p.Description, &currentPrice, &originalPrice, &verdict); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot product: %w", err)
		}

		if err := json.Unmarshal([]byte(sizesJSON), &p.Sizes); err != nil {
			return nil, fmt.Errorf("failed to decode sizes for product %s: %w", p.ID, err)
		}
		if p.CurrentPrice, err = decimal.NewFromString(currentPrice); err != nil {
			return nil, fmt.Errorf("failed to parse current price for product %s: %w", p.ID, err)
		}
		if originalPrice.Valid {
			if p.OriginalPrice, err = decimal.NewFromString(originalPrice.String); err != nil {
				return nil, fmt.Errorf("failed to parse original price for product %s: %w", p.ID, err)
			}
		}

		products = append(products, model.AnnotatedProduct{
			Product: p,
			Verdict: model.Verdict(verdict),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot products: %w", err)
	}

	snapshot := model.NewSnapshot(takenAt, products)
	return &snapshot, nil
}

// SnapshotCount returns the number of retained snapshots.
func (s *SQLiteStorage) SnapshotCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}
