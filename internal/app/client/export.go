package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"timekeeper/internal/app/client/crypto"
	"timekeeper/internal/domain/snapshot"
	"timekeeper/internal/domain/sync"
)

// ExportToFile записывает снапшот состояния в файл. При непустом
// пароле файл шифруется.
func (a *App) ExportToFile(ctx context.Context, path, password string) (*snapshot.Snapshot, error) {
	snap, err := a.syncService.Export(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации снапшота: %w", err)
	}

	if password != "" {
		data, err = crypto.Encrypt(data, password)
		if err != nil {
			return nil, err
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("ошибка записи файла: %w", err)
	}

	a.log.Info("Снапшот экспортирован", "path", path, "encrypted", password != "")

	return snap, nil
}

// ImportFromFile читает снапшот из файла и сливает его с локальным
// состоянием. При непустом пароле файл сначала расшифровывается.
func (a *App) ImportFromFile(ctx context.Context, path, password string) (*sync.MergeReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}

	if password != "" {
		data, err = crypto.Decrypt(data, password)
		if err != nil {
			return nil, err
		}
	}

	return a.syncService.ImportRaw(ctx, data)
}
