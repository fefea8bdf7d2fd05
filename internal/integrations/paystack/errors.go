package paystack

import (
	"errors"
	"fmt"
)

var (
	// ErrProvider неуспешный ответ провайдера; конкретика в ProviderError
	ErrProvider = errors.New("paystack client: provider returned an error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paystack client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("paystack client: invalid response")
)

// ProviderError ответ провайдера с кодом, который отдается клиенту без изменений
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("paystack client: provider error: status=%d, message=%s", e.StatusCode, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}
