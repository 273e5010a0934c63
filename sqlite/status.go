package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/httpstatus"
)

// Compile-time interface verification.
var _ httpstatus.StatusService = (*StatusService)(nil)

// StatusService implements httpstatus.StatusService using SQLite.
type StatusService struct {
	db *DB
}

// NewStatusService creates a new StatusService.
func NewStatusService(db *DB) *StatusService {
	return &StatusService{db: db}
}

// Import replaces the indexed dataset with statuses.
// Does nothing and returns false if the index already holds the same dataset.
func (s *StatusService) Import(ctx context.Context, statuses []httpstatus.Status) (bool, error) {
	fingerprint := Fingerprint(statuses)
	current, _, err := s.LastImport(ctx)
	if err != nil && httpstatus.ErrorCode(err) != httpstatus.ENOTFOUND {
		return false, err
	}
	if current == fingerprint {
		return false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM statuses"); err != nil {
		return false, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO statuses (position, code, phrase, description, spec_title, spec_href)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	for i, st := range statuses {
		if _, err := stmt.ExecContext(ctx, i, st.Code, st.Phrase, st.Description, st.SpecTitle, st.SpecHref); err != nil {
			return false, err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dataset (id, fingerprint, imported_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET fingerprint = excluded.fingerprint, imported_at = excluded.imported_at
	`, fingerprint, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// LastImport returns the fingerprint and time of the last import.
// Returns ENOTFOUND if nothing has been imported.
func (s *StatusService) LastImport(ctx context.Context) (string, time.Time, error) {
	var fingerprint, importedAt string
	err := s.db.QueryRowContext(ctx, "SELECT fingerprint, imported_at FROM dataset WHERE id = 1").
		Scan(&fingerprint, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", time.Time{}, httpstatus.Errorf(httpstatus.ENOTFOUND, "dataset not imported")
	}
	if err != nil {
		return "", time.Time{}, err
	}

	t, err := parseRFC3339(importedAt, "imported_at")
	if err != nil {
		return "", time.Time{}, err
	}
	return fingerprint, t, nil
}

// FindStatuses retrieves statuses matching the filter in dataset order.
// Keyword matching uses instr() so it stays case-sensitive, unlike LIKE.
func (s *StatusService) FindStatuses(ctx context.Context, filter httpstatus.StatusFilter) ([]httpstatus.Status, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT code, phrase, description, spec_title, spec_href FROM statuses WHERE 1=1")

	switch {
	case filter.Keyword != nil:
		// Every field contains the empty keyword.
		if *filter.Keyword != "" {
			query.WriteString(" AND (instr(code, ?) > 0 OR instr(phrase, ?) > 0 OR instr(description, ?) > 0)")
			args = append(args, *filter.Keyword, *filter.Keyword, *filter.Keyword)
		}
	case filter.Code != nil:
		query.WriteString(" AND code = ?")
		args = append(args, *filter.Code)
	}

	query.WriteString(" ORDER BY position")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []httpstatus.Status
	for rows.Next() {
		var st httpstatus.Status
		if err := rows.Scan(&st.Code, &st.Phrase, &st.Description, &st.SpecTitle, &st.SpecHref); err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(statuses) == 0 && (filter.Keyword != nil || filter.Code != nil) {
		return nil, httpstatus.Errorf(httpstatus.ENOTFOUND, httpstatus.NotFoundMessage)
	}
	return statuses, nil
}
