package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/givers/contacts/internal/config"
	"github.com/givers/contacts/internal/logging"
	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/repository"
	"github.com/givers/contacts/internal/storage"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)      スロットテーブルを作成 (sqlite / postgres)
  reset          スナップショットを削除し、空の状態に戻す
  import <file>  ブラウザから書き出した JSON 配列をスナップショットとして取り込む`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	store, closeStore, err := repository.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		logging.Fatal("open storage failed", "driver", cfg.Storage.Driver, "error", err)
	}
	defer closeStore()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		// OpenStorage がテーブルを作成済み
		slog.Info("schema ready", "driver", cfg.Storage.Driver, "table", storage.SlotTable)
	case "reset":
		runReset(ctx, store, cfg.Storage.Slot)
	case "import":
		if len(os.Args) < 3 {
			usage()
		}
		runImport(ctx, store, cfg.Storage.Slot, os.Args[2])
	default:
		usage()
	}
}

func runReset(ctx context.Context, store storage.Storage, slot string) {
	if err := store.Delete(ctx, slot); err != nil {
		logging.Fatal("reset failed", "slot", slot, "error", err)
	}
	slog.Info("snapshot removed", "slot", slot)
}

// runImport は不正なレコードを読み飛ばし、残りを 1 つのスナップショットとして保存する
func runImport(ctx context.Context, store storage.Storage, slot, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Fatal("read import file failed", "path", path, "error", err)
	}
	var in []model.ContactRecord
	if err := json.Unmarshal(data, &in); err != nil {
		logging.Fatal("import file is not a contact array", "path", path, "error", err)
	}

	seen := make(map[int64]bool, len(in))
	records := make([]model.ContactRecord, 0, len(in))
	for i, rec := range in {
		if err := rec.Fields().Validate(); err != nil {
			slog.Warn("skipping invalid record", "index", i, "id", rec.ID, "error", err)
			continue
		}
		if seen[rec.ID] {
			slog.Warn("skipping duplicate id", "index", i, "id", rec.ID)
			continue
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}

	repo := repository.NewSnapshotContactRepository(store, slot)
	if err := repo.Save(ctx, records); err != nil {
		logging.Fatal("import failed", "slot", slot, "error", err)
	}
	slog.Info("import completed", "slot", slot, "imported", len(records), "skipped", len(in)-len(records))
}
