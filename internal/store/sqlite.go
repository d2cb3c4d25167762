package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SilverAdvisor/internal/model"
)

// SQLiteStore persists catalog snapshots and recommendation history to a
// SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis queries can read while the engine writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS catalog_snapshots (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			products  INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_products (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id     INTEGER NOT NULL,
			name            TEXT NOT NULL,
			min_investment  INTEGER,
			expected_return REAL,
			risk_tier       TEXT,
			horizon_months  INTEGER,
			risk_tag        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_snapshot ON catalog_products(snapshot_id)`,

		`CREATE TABLE IF NOT EXISTS recommendations (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			budget         REAL,
			horizon_months INTEGER,
			risk_tag       TEXT,
			target_income  REAL,
			relaxed        INTEGER,
			no_match       INTEGER,
			top_product    TEXT,
			result_count   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_ts ON recommendations(timestamp)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveCatalogSnapshot writes the canonical table as a new snapshot. Earlier
// snapshots are left untouched, so concurrent readers of a previous snapshot
// never observe a partial write.
func (s *SQLiteStore) SaveCatalogSnapshot(products []model.CanonicalProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO catalog_snapshots (timestamp, products) VALUES (?, ?)`,
		time.Now().Unix(), len(products))
	if err != nil {
		return err
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO catalog_products
		(snapshot_id, name, min_investment, expected_return, risk_tier, horizon_months, risk_tag)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.Exec(snapshotID, p.Name, p.MinInvestment, p.ExpectedReturn,
			string(p.RiskTier), p.RecommendedHorizonMonths, string(p.RiskProfileTag)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RecordRecommendation logs one request and its outcome.
func (s *SQLiteStore) RecordRecommendation(pref *model.UserPreference, res *model.RecommendationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	topProduct := ""
	if len(res.Items) > 0 {
		topProduct = res.Items[0].ProductName
	}

	_, err := s.db.Exec(`INSERT INTO recommendations
		(timestamp, budget, horizon_months, risk_tag, target_income, relaxed, no_match, top_product, result_count)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), pref.Budget, pref.HorizonMonths, string(pref.RiskProfileTag),
		pref.TargetMonthlyIncome, boolToInt(res.Relaxed), boolToInt(res.NoMatch),
		topProduct, len(res.Items),
	)
	return err
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
