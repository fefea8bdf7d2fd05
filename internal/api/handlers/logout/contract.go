package logout

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

type UserService interface {
	Logout(ctx context.Context, identity *domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
