package payments

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payments.service: invalid input data")

	// ErrProvider провайдер отклонил запрос; код ответа в ProviderError
	ErrProvider = errors.New("payments.service: payment provider error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments.service: internal error")
)

// ProviderError ответ провайдера, код которого отдается клиенту без изменений
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payments.service: provider responded with status=%d: %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}
