package profileservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient клиент для работы с ProfileService
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCompanion получает профиль собеседника
func (c *HTTPClient) GetCompanion(ctx context.Context, companionID int64) (*Companion, error) {
	url := fmt.Sprintf("%s/internal/companions/%d", c.baseURL, companionID)

	var companion Companion
	if err := c.getJSON(ctx, url, &companion, ErrCompanionNotFound); err != nil {
		return nil, err
	}

	return &companion, nil
}

// GetClient получает профиль клиента
func (c *HTTPClient) GetClient(ctx context.Context, clientID int64) (*ClientProfile, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	var client ClientProfile
	if err := c.getJSON(ctx, url, &client, ErrClientNotFound); err != nil {
		return nil, err
	}

	return &client, nil
}

// GetCompanionWithGracefulDegradation получает профиль собеседника с graceful degradation
// При недоступности ProfileService возвращает ErrServiceDegraded: вызывающий код
// может продолжить работу с денормализованными данными из последнего бронирования
func (c *HTTPClient) GetCompanionWithGracefulDegradation(ctx context.Context, companionID int64) (*Companion, error) {
	c.log.Info("Fetching companion profile for companion_id=%d", companionID)

	companion, err := c.GetCompanion(ctx, companionID)
	if err != nil {
		// Отсутствие профиля - бизнес-ошибка, пробрасываем её дальше
		if err == ErrCompanionNotFound {
			c.log.Info("No companion profile found for companion_id=%d", companionID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("ProfileService unavailable, applying graceful degradation for companion_id=%d: %v", companionID, err)
		return nil, fmt.Errorf("%w: companion_id=%d, error=%v", ErrServiceDegraded, companionID, err)
	}

	c.log.Info("Successfully fetched companion profile for companion_id=%d, rate=%.2f", companionID, companion.RatePerHour)
	return companion, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, url string, dest interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
