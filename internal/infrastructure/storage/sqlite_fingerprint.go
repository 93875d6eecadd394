package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"

	_ "modernc.org/sqlite"
)

// sqliteFingerprintStore はセッションをまたいで保持されるフィンガープリント
// 記録。ウォーターマークは永続化しないため、再起動後の重複抑止は
// このストアだけが担います。
type sqliteFingerprintStore struct {
	db *sql.DB
}

func NewSQLiteFingerprintRepository(dbPath string) (repository.FingerprintRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	store := &sqliteFingerprintStore{db: db}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *sqliteFingerprintStore) initSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS fingerprints (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fingerprint TEXT NOT NULL,
		category TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to execute schema query: %w", err)
	}
	return nil
}

func (s *sqliteFingerprintStore) IsDuplicate(ctx context.Context, fp *entity.ContentFingerprint) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(
		ctx,
		"SELECT 1 FROM fingerprints WHERE fingerprint = ? OR category = ? LIMIT 1",
		fp.Fingerprint,
		fp.Category,
	).Scan(&exists)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate: %w", err)
	}

	return true, nil
}

func (s *sqliteFingerprintStore) Record(ctx context.Context, fp *entity.ContentFingerprint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO fingerprints (fingerprint, category, created_at) VALUES (?, ?, ?)",
		fp.Fingerprint,
		fp.Category,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record fingerprint: %w", err)
	}

	// 上限超過分を古い順に破棄
	_, err = tx.ExecContext(
		ctx,
		`DELETE FROM fingerprints WHERE id NOT IN (
			SELECT id FROM fingerprints ORDER BY id DESC LIMIT ?
		)`,
		entity.MaxFingerprintRecords,
	)
	if err != nil {
		return fmt.Errorf("failed to evict old fingerprints: %w", err)
	}

	return tx.Commit()
}

func (s *sqliteFingerprintStore) Close() error {
	return s.db.Close()
}

// count はテスト用
func (s *sqliteFingerprintStore) count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fingerprints").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
