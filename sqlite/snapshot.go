package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/goyax"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ goyax.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements goyax.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, Now: time.Now}
}

// CreateSnapshot stores the snapshot's report in canonical JSON form and
// records its content hash.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *goyax.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	data, err := goyax.MarshalReport(snapshot.Report)
	if err != nil {
		return goyax.WrapError(goyax.EPERSIST, err, "snapshot save error")
	}

	snapshot.ID = uuid.New().String()
	snapshot.FetchedAt = s.Now().UTC()
	snapshot.ContentHash = hashContent(data)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, source_url, content_hash, report, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.SourceURL, snapshot.ContentHash, string(data), formatTime(snapshot.FetchedAt))
	if err != nil {
		return goyax.WrapError(goyax.EPERSIST, err, "snapshot save error")
	}

	return nil
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*goyax.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, content_hash, report, fetched_at
		FROM snapshots
		WHERE id = ?
	`, id)

	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goyax.Errorf(goyax.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter goyax.SnapshotFilter) ([]*goyax.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, report, fetched_at FROM snapshots WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*goyax.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*goyax.Snapshot, error) {
	var snapshot goyax.Snapshot
	var report, fetchedAt string

	if err := row.Scan(&snapshot.ID, &snapshot.SourceURL, &snapshot.ContentHash, &report, &fetchedAt); err != nil {
		return nil, err
	}

	snapshot.Report = &goyax.Report{}
	if err := json.Unmarshal([]byte(report), snapshot.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	var err error
	snapshot.FetchedAt, err = parseTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
