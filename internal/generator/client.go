package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/api"
)

// ErrSnapshotFetch - снапшот получить не удалось. Композицию с частичным
// снапшотом запускать нельзя.
var ErrSnapshotFetch = errors.New("snapshot fetch failed")

// Client - HTTP-клиент к генератору карт игрового сервера.
// Единственное блокирующее взаимодействие во всем пайплайне, поэтому
// таймаут короткий, а ретраев нет - они забота вызывающего.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// FetchSnapshot запрашивает GET {base}/api/map?level={n}.
// Возвращает либо полный валидный снапшот, либо ошибку - третьего не дано.
func (c *Client) FetchSnapshot(ctx context.Context, level int) (*api.MapSnapshot, error) {
	url := fmt.Sprintf("%s/api/map?level=%d", c.BaseURL, level)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotFetch, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: game server returned status %d", ErrSnapshotFetch, resp.StatusCode)
	}

	var snap api.MapSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: malformed snapshot: %v", ErrSnapshotFetch, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotFetch, err)
	}

	return &snap, nil
}
