package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Row is one timesheet row as stored. Values are kept as text so a row read
// back goes through the same column parsing as CSV and Excel input.
type Row struct {
	ID              int64
	IssueKey        string
	IssueSummary    string
	Hours           string
	WorkDate        string
	ProjectKey      string
	WorkDescription string
}

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS timesheet (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	issue_key TEXT NOT NULL,
	issue_summary TEXT NOT NULL DEFAULT '',
	hours TEXT NOT NULL,
	work_date TEXT NOT NULL,
	project_key TEXT NOT NULL,
	work_description TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

const insertRowStmt = `
INSERT INTO timesheet (
	issue_key,
	issue_summary,
	hours,
	work_date,
	project_key,
	work_description
) VALUES (?, ?, ?, ?, ?, ?);`

func (s *SQLiteStore) InsertRows(rows []Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	inserted, err := insertRowsTx(tx, rows)
	if err != nil {
		_ = tx.Rollback()
		return inserted, err
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ReplaceRows deletes every stored row and inserts rows in one transaction.
func (s *SQLiteStore) ReplaceRows(rows []Row) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM timesheet;`); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete timesheet rows: %w", err)
	}

	inserted, err := insertRowsTx(tx, rows)
	if err != nil {
		_ = tx.Rollback()
		return inserted, err
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

func insertRowsTx(tx *sql.Tx, rows []Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	stmt, err := tx.Prepare(insertRowStmt)
	if err != nil {
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, row := range rows {
		res, err := stmt.Exec(
			row.IssueKey,
			row.IssueSummary,
			row.Hours,
			row.WorkDate,
			row.ProjectKey,
			row.WorkDescription,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert timesheet row: %w", err)
		}

		affected, err := res.RowsAffected()
		if err == nil && affected > 0 {
			inserted++
		}
	}
	return inserted, nil
}

// ListRows returns all rows in insertion order.
func (s *SQLiteStore) ListRows() ([]Row, error) {
	const query = `
SELECT
	id,
	issue_key,
	issue_summary,
	hours,
	work_date,
	project_key,
	work_description
FROM timesheet
ORDER BY id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query timesheet rows: %w", err)
	}
	defer rows.Close()

	out := make([]Row, 0, 128)
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.ID,
			&row.IssueKey,
			&row.IssueSummary,
			&row.Hours,
			&row.WorkDate,
			&row.ProjectKey,
			&row.WorkDescription,
		); err != nil {
			return nil, fmt.Errorf("scan timesheet row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timesheet rows: %w", err)
	}

	return out, nil
}
