package properties

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, id int64) error
}

// PropertyCache кэш чтения объектов
type PropertyCache interface {
	Get(id int64) (*domain.Property, bool)
	Set(p *domain.Property)
	Delete(id int64)
}

// EventPublisher публикует изменения каталога
type EventPublisher interface {
	PublishPropertyEvent(ctx context.Context, evt domain.PropertyEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
