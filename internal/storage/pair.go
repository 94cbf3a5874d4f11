package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoPartner means the owner has no stored partner link.
var ErrNoPartner = errors.New("no partner linked")

// PairStorage keeps the owner -> partner links. The linking handshake
// itself happens elsewhere; this is just the lookup table.
type PairStorage struct {
	pool *pgxpool.Pool
}

func NewPairStorage(pool *pgxpool.Pool) *PairStorage {
	return &PairStorage{
		pool: pool,
	}
}

func (db_ps *PairStorage) Init(ctx context.Context) error {
	op := "internal/storage/pair.go Init"

	sql_query := `
	CREATE TABLE IF NOT EXISTS pair_links (
		owner_id TEXT PRIMARY KEY,
		partner_id TEXT NOT NULL
	);
	`

	if _, err := db_ps.pool.Exec(ctx, sql_query); err != nil {
		return fmt.Errorf("failed to create pair_links table in %s: %w", op, err)
	}

	return nil
}

func (db_ps *PairStorage) SaveLink(ctx context.Context, ownerID, partnerID string) error {
	op := "internal/storage/pair.go SaveLink"

	sql_query := `
	INSERT INTO pair_links (owner_id, partner_id) VALUES ($1, $2)
	ON CONFLICT (owner_id) DO UPDATE SET
	partner_id = EXCLUDED.partner_id;
	`

	if _, err := db_ps.pool.Exec(ctx, sql_query, ownerID, partnerID); err != nil {
		return fmt.Errorf("failed to save pair link in %s: %w", op, err)
	}

	return nil
}

func (db_ps *PairStorage) PartnerOf(ctx context.Context, ownerID string) (string, error) {
	op := "internal/storage/pair.go PartnerOf"

	sql_query := `
	SELECT partner_id FROM pair_links
	WHERE owner_id = $1;
	`

	var partnerID string
	err := db_ps.pool.QueryRow(ctx, sql_query, ownerID).Scan(&partnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNoPartner
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up partner in %s: %w", op, err)
	}

	return partnerID, nil
}
