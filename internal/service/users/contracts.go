package users

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// TokenIssuer выпускает bearer токены
type TokenIssuer interface {
	Issue(u *domain.User) (string, *domain.Identity, error)
}

// TokenRevoker хранит отозванные токены до истечения их срока
type TokenRevoker interface {
	Revoke(tokenID string, until time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
