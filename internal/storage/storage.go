package storage

import (
	"context"
	"errors"
)

// ErrNotFound は指定したスロットが存在しない場合に返される。
var ErrNotFound = errors.New("storage: slot not found")

// Storage は名前付きスロット単位でバイト列を永続化するインターフェース。
// ローカルファイル実装の他、SQLite / PostgreSQL 実装に差し替え可能。
type Storage interface {
	// Read は key のスロット内容を返す。存在しない場合は ErrNotFound。
	Read(ctx context.Context, key string) ([]byte, error)

	// Write は key のスロットを data で置き換える。呼び出しが戻った時点で永続化済み。
	Write(ctx context.Context, key string, data []byte) error

	// Delete は key のスロットを削除する。存在しない場合も nil。
	Delete(ctx context.Context, key string) error

	// Ping はバックエンドが利用可能かを確認する。
	Ping(ctx context.Context) error
}
