package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"timekeeper/internal/app/client/config"
	"timekeeper/internal/domain/sync"
)

// peerClient ходит к другому экземпляру приложения по HTTP.
type peerClient struct {
	client    *http.Client
	log       *slog.Logger
	userAgent string
}

func newPeerClient(cfg *config.Config, log *slog.Logger) *peerClient {
	client := &http.Client{
		Timeout: time.Duration(cfg.PeerTimeout) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &peerClient{
		client:    client,
		log:       log,
		userAgent: "Timekeeper-Client/1.0",
	}
}

func peerBaseURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	return "http://" + addr
}

// FetchSnapshot забирает снапшот пира.
func (p *peerClient) FetchSnapshot(ctx context.Context, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, peerBaseURL(addr)+"/api/v1/snapshot", nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к пиру: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("пир вернул статус %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	return data, nil
}

// ExchangeSnapshot отправляет пиру локальный снапшот и получает
// его слитое состояние в ответ.
func (p *peerClient) ExchangeSnapshot(ctx context.Context, addr string, snapshot []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		peerBaseURL(addr)+"/api/v1/sync", bytes.NewReader(snapshot))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к пиру: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("пир вернул статус %d: %s", resp.StatusCode, string(data))
	}

	return data, nil
}

// PullFromPeer забирает снапшот пира и сливает его локально.
// Пир при этом не меняется.
func (a *App) PullFromPeer(ctx context.Context, addr string) (*sync.MergeReport, error) {
	raw, err := a.peers.FetchSnapshot(ctx, addr)
	if err != nil {
		return nil, err
	}

	return a.syncService.ImportRaw(ctx, raw)
}

// SyncWithPeer выполняет двусторонний обмен: пир сливает наш снапшот
// и возвращает свое состояние, которое мы сливаем локально.
// После обмена оба экземпляра сходятся к одному состоянию.
func (a *App) SyncWithPeer(ctx context.Context, addr string) (*sync.MergeReport, error) {
	local, err := a.syncService.Export(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(local)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации снапшота: %w", err)
	}

	merged, err := a.peers.ExchangeSnapshot(ctx, addr, payload)
	if err != nil {
		return nil, err
	}

	return a.syncService.ImportRaw(ctx, merged)
}
