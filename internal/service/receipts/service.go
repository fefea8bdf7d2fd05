package receipts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/booking"
)

// Receipt готовый PDF документ
type Receipt struct {
	FileName string
	Content  []byte
}

// Service сервис квитанций по бронированиям
type Service struct {
	bookingRepo BookingRepository
	renderer    Renderer
	logger      Logger
}

// NewService создает новый экземпляр сервиса квитанций
func NewService(bookingRepo BookingRepository, renderer Renderer, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Generate формирует квитанцию; доступ как у просмотра бронирования
func (s *Service) Generate(ctx context.Context, identity *domain.Identity, bookingID int64) (*Receipt, error) {
	s.logger.Info("Generate: receipt for booking id=%d requested by user=%d", bookingID, identity.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Generate: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Generate: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	if !identity.CanAccessBooking(booking) {
		s.logger.Warn("Generate: access denied for user=%d to booking id=%d", identity.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	content, err := s.renderer.Render(booking)
	if err != nil {
		s.logger.Error("Generate: failed to render booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Generate - render: %v", ErrInternal, err)
	}

	return &Receipt{
		FileName: fmt.Sprintf("booking-%d.pdf", bookingID),
		Content:  content,
	}, nil
}
