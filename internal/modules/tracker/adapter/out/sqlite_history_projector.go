package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"aqualog/internal/modules/tracker/domain"
	trackerout "aqualog/internal/modules/tracker/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryProjector keeps archived days in a queryable table. It is
// a projection of the state file's history, rebuildable at any time.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (trackerout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS days (
  date_key TEXT PRIMARY KEY,
  total_intake REAL NOT NULL,
  goal REAL NOT NULL,
  unit TEXT NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create days table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM days`); err != nil {
		return fmt.Errorf("reset days: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Upsert(ctx context.Context, record domain.DailyRecord) error {
	const stmt = `
INSERT INTO days (date_key, total_intake, goal, unit)
VALUES (?, ?, ?, ?)
ON CONFLICT(date_key) DO UPDATE SET
  total_intake=excluded.total_intake,
  goal=excluded.goal,
  unit=excluded.unit;
`
	_, err := p.db.ExecContext(ctx, stmt,
		string(record.DateKey),
		record.TotalIntake,
		record.Goal,
		string(record.Unit),
	)
	if err != nil {
		return fmt.Errorf("upsert day: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Range(ctx context.Context, from, to domain.DayKey) ([]domain.DailyRecord, error) {
	const query = `
SELECT date_key, total_intake, goal, unit
FROM days
WHERE date_key >= ? AND date_key <= ?
ORDER BY date_key DESC;
`
	rows, err := p.db.QueryContext(ctx, query, string(from), string(to))
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()

	var records []domain.DailyRecord
	for rows.Next() {
		var record domain.DailyRecord
		var key, unit string
		if err := rows.Scan(&key, &record.TotalIntake, &record.Goal, &unit); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		record.DateKey = domain.DayKey(key)
		record.Unit = domain.Unit(unit)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate days: %w", err)
	}
	return records, nil
}
