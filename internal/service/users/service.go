package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	userRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RealEstateService/internal/service/users/models"
)

// Service сервис учетных записей
type Service struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	revocation TokenRevoker
	logger     Logger
	hashCost   int
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	tokens TokenIssuer,
	revocation TokenRevoker,
	logger Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		revocation: revocation,
		logger:     logger,
		hashCost:   bcrypt.DefaultCost,
	}
}

// Register создает обычного активного пользователя
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	s.logger.Info("Register: registering user email=%s", email)

	if err := validateRegister(req, email); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	user, err := s.createUser(ctx, &domain.User{
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		IsActive:  true,
	}, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: user id=%d registered", user.ID)
	return models.FromDomainUser(user), nil
}

// Login проверяет пароль и выпускает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	s.logger.Info("Login: attempt for email=%s", email)

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("Login: user id=%d is inactive", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, identity, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: identity.ExpiresAt,
		User:      *models.FromDomainUser(user),
	}, nil
}

// Logout отзывает текущий токен до истечения его срока
func (s *Service) Logout(ctx context.Context, identity *domain.Identity) error {
	s.logger.Info("Logout: revoking token for user id=%d", identity.UserID)

	if identity.TokenID == "" {
		return fmt.Errorf("%w: token has no id", ErrInvalidInput)
	}

	s.revocation.Revoke(identity.TokenID, identity.ExpiresAt)
	return nil
}

// Me возвращает профиль текущего пользователя
func (s *Service) Me(ctx context.Context, identity *domain.Identity) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Me: user id=%d not found", identity.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Me: repository error for user id=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: Me - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// EnsureAdmin создает администратора из конфигурации, если его еще нет
func (s *Service) EnsureAdmin(ctx context.Context, acc models.AdminAccount) error {
	email := domain.NormalizeEmail(acc.Email)
	if email == "" {
		return nil
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("EnsureAdmin: admin email=%s already exists", email)
		return nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("EnsureAdmin: repository error: %v", err)
		return fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
	}

	if len(acc.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: admin password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	user, err := s.createUser(ctx, &domain.User{
		Email:     email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		IsActive:  true,
		IsStaff:   true,
		IsAdmin:   true,
	}, acc.Password)
	if err != nil {
		// параллельный запуск мог создать его первым
		if errors.Is(err, ErrEmailTaken) {
			return nil
		}
		return err
	}

	s.logger.Info("EnsureAdmin: admin id=%d created", user.ID)
	return nil
}

func (s *Service) createUser(ctx context.Context, u *domain.User, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		s.logger.Error("createUser: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: createUser - hash password: %v", ErrInternal, err)
	}
	u.PasswordHash = string(hash)

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("createUser: email=%s already registered", u.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("createUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: createUser - repository error: %v", ErrInternal, err)
	}

	return created, nil
}
