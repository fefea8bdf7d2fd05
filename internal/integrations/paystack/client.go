package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody сколько байт тела ошибки попадает в лог и сообщение
const maxErrorBody = 1024

// Client клиент платежного провайдера (Paystack-совместимый REST API)
// Повторов нет: инициализация платежа не идемпотентна
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// InitializeTransaction создает транзакцию и возвращает ссылку на оплату
func (c *Client) InitializeTransaction(ctx context.Context, req InitializeRequest) (*Authorization, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	_, env, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var auth Authorization
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		return nil, fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Paystack: transaction initialized: reference=%s", auth.Reference)
	return &auth, nil
}

// VerifyTransaction возвращает ответ провайдера о транзакции как есть
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (json.RawMessage, error) {
	path := "/transaction/verify/" + url.PathEscape(reference)

	raw, _, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// do выполняет запрос и возвращает сырое тело успешного ответа вместе с разобранным конвертом
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, *envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readErrorMessage(resp.Body)
		c.log.Warn("Paystack: %s %s failed: status=%d, message=%s", method, path, resp.StatusCode, msg)
		return nil, nil, &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// 2xx со status=false считаем отказом шлюза
	if !env.Status {
		c.log.Warn("Paystack: %s %s rejected: message=%s", method, path, env.Message)
		return nil, nil, &ProviderError{StatusCode: http.StatusBadGateway, Message: env.Message}
	}

	return raw, &env, nil
}

// readErrorMessage достает message из JSON ошибки, иначе отдает начало тела
func readErrorMessage(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(body))
}
