package properties

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/property"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties/models"
)

// Service сервис каталога объектов
type Service struct {
	propertyRepo PropertyRepository
	cache        PropertyCache
	publisher    EventPublisher
	txManager    TransactionManager
	logger       Logger
	now          func() time.Time

	// mu защищает invalidations и связывает проверку поколения с записью в кэш
	mu            sync.Mutex
	invalidations map[int64]uint64
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	propertyRepo PropertyRepository,
	cache PropertyCache,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		propertyRepo:  propertyRepo,
		cache:         cache,
		publisher:     publisher,
		txManager:     txManager,
		logger:        logger,
		now:           time.Now,
		invalidations: make(map[int64]uint64),
	}
}

// List возвращает объекты по фильтру
func (s *Service) List(ctx context.Context, filter domain.PropertyFilter) (*models.PropertyListResponse, error) {
	properties, err := s.propertyRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d properties", len(properties))
	return models.FromDomainPropertyList(properties), nil
}

// Get возвращает объект, читая через кэш
func (s *Service) Get(ctx context.Context, id int64) (*models.PropertyResponse, error) {
	if p, ok := s.cache.Get(id); ok {
		return models.FromDomainProperty(p), nil
	}

	gen := s.generation(id)

	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Get: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Get: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.setIfCurrent(gen, p)
	return models.FromDomainProperty(p), nil
}

// Create создает объект вместе с галереей
func (s *Service) Create(ctx context.Context, req *models.PropertyRequest) (*models.PropertyResponse, error) {
	p := req.ToDomain()
	s.logger.Info("Create: creating property title=%q", p.Title)

	if err := validateProperty(p); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Property
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.propertyRepo.Create(txCtx, p)
		return err
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.publish(ctx, domain.PropertyCreated, created.ID)
	s.logger.Info("Create: property id=%d created", created.ID)
	return models.FromDomainProperty(created), nil
}

// Update полностью перезаписывает объект, включая галерею
func (s *Service) Update(ctx context.Context, id int64, req *models.PropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Update: updating property id=%d", id)

	p := req.ToDomain()
	p.ID = id
	if err := validateProperty(p); err != nil {
		s.logger.Warn("Update: validation failed for property id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.Property
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.propertyRepo.Update(txCtx, p)
		return err
	})
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidate(id)
	s.publish(ctx, domain.PropertyUpdated, id)
	s.logger.Info("Update: property id=%d updated", id)
	return models.FromDomainProperty(updated), nil
}

// Delete удаляет объект; бронирования и избранное удаляются каскадно
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting property id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.propertyRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Delete: property id=%d not found", id)
			return ErrPropertyNotFound
		}
		s.logger.Error("Delete: repository error for property id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(id)
	s.publish(ctx, domain.PropertyDeleted, id)
	s.logger.Info("Delete: property id=%d deleted", id)
	return nil
}

func (s *Service) generation(id int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invalidations[id]
}

// setIfCurrent кладет строку в кэш, только если после ее чтения объект не менялся
func (s *Service) setIfCurrent(gen uint64, p *domain.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalidations[p.ID] != gen {
		s.logger.Info("Get: property id=%d changed during read, cache skipped", p.ID)
		return
	}
	s.cache.Set(p)
}

func (s *Service) invalidate(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidations[id]++
	s.cache.Delete(id)
}

// publish не влияет на результат операции: изменение уже зафиксировано
func (s *Service) publish(ctx context.Context, action domain.PropertyAction, id int64) {
	evt := domain.PropertyEvent{Action: action, PropertyID: id, OccurredAt: s.now()}
	if err := s.publisher.PublishPropertyEvent(ctx, evt); err != nil {
		s.logger.Warn("publish: failed to publish %s for property id=%d: %v", action, id, err)
	}
}
