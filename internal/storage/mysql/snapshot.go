package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

// snapshotKey: одно приложение — один документ.
const snapshotKey = "welders-app"

func (s *Storage) Init(ctx context.Context) error {
	const op = "storage.mysql.Init"

	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_snapshots (
			snapshot_key VARCHAR(64) PRIMARY KEY,
			data JSON NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("%s: ошибка создания таблицы снапшотов: %w", op, err)
	}

	return nil
}

// LoadSnapshot returns the stored aggregate, or (nil, nil) when the
// service starts against an empty table.
func (s *Storage) LoadSnapshot(ctx context.Context) (*domain.AppState, error) {
	const op = "storage.mysql.LoadSnapshot"

	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM app_snapshots WHERE snapshot_key = ?`, snapshotKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка чтения снапшота: %w", op, err)
	}

	var state domain.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%s: снапшот не распарсился: %w", op, err)
	}

	return &state, nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, state domain.AppState) error {
	const op = "storage.mysql.SaveSnapshot"

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_snapshots (snapshot_key, data)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)
	`, snapshotKey, raw)
	if err != nil {
		return fmt.Errorf("%s: ошибка записи снапшота: %w", op, err)
	}

	return nil
}
