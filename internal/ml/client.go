package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shenikar/disaster_triage_system/internal/models"
)

// Client - HTTP-мост к сервису моделей (vision + NLP).
// Модели загружаются один раз на стороне сервиса и разделяются всеми запросами.
type Client struct {
	serviceURL      string
	httpClient      *http.Client
	entityThreshold float64
	embeddingDim    int
}

// NewClient создает новый клиент сервиса моделей.
// entityThreshold - порог уверенности, ниже которого извлечённые сущности отбрасываются.
// embeddingDim - ожидаемая размерность эмбеддинга; колонка vector(N) в хранилище
// не примет вектор другой длины, поэтому такие эмбеддинги отбрасываются на входе.
func NewClient(serviceURL string, timeout time.Duration, entityThreshold float64, embeddingDim int) *Client {
	return &Client{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		entityThreshold: entityThreshold,
		embeddingDim:    embeddingDim,
	}
}

// Health проверяет доступность сервиса моделей
func (c *Client) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", c.serviceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("ml: failed to create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ml: health check failed: %w", models.ErrModelUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml: health check returned status %d: %w", resp.StatusCode, models.ErrModelUnavailable)
	}
	return nil
}

// postJSON отправляет запрос сервису моделей и декодирует ответ в out
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("ml: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.serviceURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ml: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Недоступность модели поглощается оркестратором, а не запросом
		return fmt.Errorf("ml: request to %s failed: %w", path, models.ErrModelUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml: %s returned status %d: %w", path, resp.StatusCode, models.ErrModelUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ml: failed to decode %s response: %w", path, err)
	}
	return nil
}
