package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists results to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS gain_results (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			start_date  TEXT,
			end_date    TEXT,
			open_price  REAL,
			close_price REAL,
			gain_pct    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gain_symbol_ts ON gain_results(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS chart_renders (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			tickers     TEXT,
			start_date  TEXT,
			end_date    TEXT,
			output_path TEXT,
			points      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chart_ts ON chart_renders(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordGain(rec *GainRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO gain_results
		(timestamp, symbol, start_date, end_date, open_price, close_price, gain_pct)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Symbol, rec.StartDate, rec.EndDate,
		rec.OpenPrice, rec.ClosePrice, rec.GainPct,
	)
	return err
}

func (r *SQLiteRecorder) RecordChart(rec *ChartRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO chart_renders
		(timestamp, tickers, start_date, end_date, output_path, points)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), strings.Join(rec.Tickers, ","), rec.StartDate, rec.EndDate,
		rec.OutputPath, rec.Points,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
