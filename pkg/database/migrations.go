package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on message bodies and
// knowledge documents from the dashboard inbox and KB screens.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for message body full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_messages_body_gin
		ON messages USING gin(to_tsvector('english', body))`)
	if err != nil {
		return fmt.Errorf("failed to create message body GIN index: %w", err)
	}

	// GIN index for knowledge doc content full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_knowledge_docs_content_gin
		ON knowledge_docs USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create knowledge content GIN index: %w", err)
	}

	return nil
}
