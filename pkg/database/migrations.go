package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one non-terminal rebuild per campaign.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS rebuild_status_campaign_id_non_terminal
		ON rebuild_status (campaign_id)
		WHERE status IN ('pending', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create non-terminal rebuild index: %w", err)
	}

	return nil
}
