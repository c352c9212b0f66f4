package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/givers/contacts/internal/config"
	"github.com/givers/contacts/internal/storage"
)

// OpenStorage は設定に従ってスナップショット用ストレージを開く。
// 返される close 関数は呼び出し側が終了時に呼ぶこと。
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return storage.NewMemoryStorage(), func() {}, nil

	case config.DriverFile:
		return storage.NewLocalStorage(cfg.Dir), func() {}, nil

	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("repository: mkdir %s: %w", dir, err)
			}
		}
		s, err := storage.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.DriverPostgres:
		pool, err := NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: connect postgres: %w", err)
		}
		s := storage.NewPostgresStorage(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("repository: unknown storage driver %q", cfg.Driver)
}
