package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

// SheetAPI is the slice of the spreadsheet adapter the store needs. Row
// numbers passed to UpdateRow are 1-indexed sheet rows; DeleteRow takes the
// zero-based grid index the Sheets batch API expects.
type SheetAPI interface {
	ReadRows(ctx context.Context) ([][]string, error)
	HeaderRow(ctx context.Context) ([]string, error)
	UpdateRow(ctx context.Context, rowNumber int64, cells []string) error
	AppendRow(ctx context.Context, cells []string) error
	DeleteRow(ctx context.Context, rowIndex int64) error
}

// RecordStore is the only component that reads or writes the backing sheet.
// List reads fail soft: a fetch error logs and yields an empty list so the
// presentation layer never crashes on a transient outage. Writes are
// read-modify-write with no locking; the sheet is the arbiter and the last
// write wins. A read failure during a write propagates as an error rather
// than falling back to the empty view.
type RecordStore struct {
	api SheetAPI
	now func() time.Time
}

func NewRecordStore(api SheetAPI) *RecordStore {
	return &RecordStore{api: api, now: time.Now}
}

// VerifySchema probes the header row once at startup and warns when it has
// drifted from the canonical column titles. Mapping stays positional either
// way; the check only makes drift visible in the logs.
func (s *RecordStore) VerifySchema(ctx context.Context) {
	header, err := s.api.HeaderRow(ctx)
	if err != nil {
		log.Printf("[projects] header probe failed: %v", err)
		return
	}

	for i, want := range domain.ColumnHeaders {
		got := ""
		if i < len(header) {
			got = strings.TrimSpace(header[i])
		}
		if !strings.EqualFold(got, want) {
			log.Printf("[projects] header drift at column %d: got %q, want %q (positional mapping still applies)", i+1, got, want)
			return
		}
	}
}

// listAll is the error-propagating read every other method builds on. Rows
// with a blank email cell are skipped entirely.
func (s *RecordStore) listAll(ctx context.Context) ([]domain.ProjectRecord, error) {
	rows, err := s.api.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	out := make([]domain.ProjectRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		out = append(out, domain.RecordFromRow(row))
	}
	return out, nil
}

// ListAll returns every non-empty row of the first worksheet in sheet order.
// The soft-fail policy lives here only; write paths must not inherit it.
func (s *RecordStore) ListAll(ctx context.Context) []domain.ProjectRecord {
	out, err := s.listAll(ctx)
	if err != nil {
		log.Printf("[projects] sheet read failed, returning empty list: %v", err)
		return []domain.ProjectRecord{}
	}
	return out
}

// ListByOwner filters ListAll by exact email equality. No index; the full
// list is small enough that a linear pass is the whole story.
func (s *RecordStore) ListByOwner(ctx context.Context, email string) []domain.ProjectRecord {
	all := s.ListAll(ctx)
	out := make([]domain.ProjectRecord, 0, len(all))
	for _, rec := range all {
		if rec.Email == email {
			out = append(out, rec)
		}
	}
	return out
}

// Upsert writes rec under its (email, projectTitle) key: in place when the
// key already has a row, appended otherwise. LastUpdated is stamped here on
// every successful write.
func (s *RecordStore) Upsert(ctx context.Context, rec domain.ProjectRecord) (domain.ProjectRecord, error) {
	if strings.TrimSpace(rec.Email) == "" || strings.TrimSpace(rec.ProjectTitle) == "" {
		return rec, fmt.Errorf("%w: email and projectTitle are required", domain.ErrValidation)
	}

	row := domain.RowFromRecord(rec, s.now())

	// The pre-write scan must see the real sheet: a swallowed read error
	// here would append a duplicate row for an existing key.
	existingRecords, err := s.listAll(ctx)
	if err != nil {
		return rec, err
	}

	for i, existing := range existingRecords {
		if existing.Email == rec.Email && existing.ProjectTitle == rec.ProjectTitle {
			// +2 skips the header row; sheet rows are 1-indexed
			if err := s.api.UpdateRow(ctx, int64(i+2), row); err != nil {
				return rec, fmt.Errorf("update row: %w", err)
			}
			return domain.RecordFromRow(row), nil
		}
	}

	if err := s.api.AppendRow(ctx, row); err != nil {
		return rec, fmt.Errorf("append row: %w", err)
	}
	return domain.RecordFromRow(row), nil
}

// DeleteByKey removes the row matching (email, projectTitle). Row indices
// shift after a deletion, so any index-based handle is stale immediately.
func (s *RecordStore) DeleteByKey(ctx context.Context, email, projectTitle string) error {
	existingRecords, err := s.listAll(ctx)
	if err != nil {
		return err
	}

	for i, existing := range existingRecords {
		if existing.Email == email && existing.ProjectTitle == projectTitle {
			// +1: data row i sits at zero-based grid index i+1 below the header
			if err := s.api.DeleteRow(ctx, int64(i+1)); err != nil {
				return fmt.Errorf("delete row: %w", err)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}
