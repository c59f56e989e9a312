package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when no report exists under the given id.
var ErrReportNotFound = errors.New("report not found")

const queryTimeout = 5 * time.Second

// EnsureSchema creates the reports table when it does not exist yet.
func (c *Connection) EnsureSchema(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS reports (
            id CHAR(36) PRIMARY KEY,
            report JSON NOT NULL,
            updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to ensure reports schema: %v", err)
	}
	return nil
}

// LoadReport returns the stored report blob exactly as it was saved.
func (c *Connection) LoadReport(ctx context.Context, id string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var report []byte
	err := c.db.QueryRowContext(ctx, `
        SELECT report FROM reports WHERE id = ?
    `, id).Scan(&report)
	if err == sql.ErrNoRows {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %v", id, err)
	}
	return report, nil
}

// SaveReport persists the report blob and returns the id it lives under.
// An existing id is fully replaced; an empty or unknown id gets a freshly
// generated one, so callers cannot mint arbitrary ids.
func (c *Connection) SaveReport(ctx context.Context, id string, report []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if id != "" {
		var exists bool
		err := c.db.QueryRowContext(ctx, `
            SELECT EXISTS(SELECT 1 FROM reports WHERE id = ?)
        `, id).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("failed to check report %s: %v", id, err)
		}
		if !exists {
			id = ""
		}
	}
	if id == "" {
		id = uuid.New().String()
	}

	_, err := c.db.ExecContext(ctx, `
        INSERT INTO reports (id, report)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE report = VALUES(report)
    `, id, report)
	if err != nil {
		return "", fmt.Errorf("failed to save report %s: %v", id, err)
	}

	return id, nil
}
