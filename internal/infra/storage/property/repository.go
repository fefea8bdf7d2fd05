package property

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RealEstateService/pkg/psqlbuilder"
)

var propertyColumns = []string{
	"id",
	"title",
	"description",
	"price_per_night",
	"location",
	"bedrooms",
	"bathrooms",
	"area",
	"is_featured",
	"is_available",
	"image",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога объектов недвижимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет объект и его галерею
// Вызывать внутри транзакции, иначе при ошибке вставки галереи объект останется без неё
func (r *Repository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("properties").
		Columns(
			"title",
			"description",
			"price_per_night",
			"location",
			"bedrooms",
			"bathrooms",
			"area",
			"is_featured",
			"is_available",
			"image",
		).
		Values(
			p.Title,
			p.Description,
			p.PricePerNight,
			p.Location,
			p.Bedrooms,
			p.Bathrooms,
			p.Area,
			p.IsFeatured,
			p.IsAvailable,
			p.Image,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	if err := r.insertGallery(ctx, executor, p.ID, p.Gallery); err != nil {
		return nil, err
	}

	return p, nil
}

// GetByID получает объект вместе с галереей
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(propertyColumns...).
		From("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProperty(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	if err := r.loadGalleries(ctx, executor, []*domain.Property{p}); err != nil {
		return nil, err
	}

	return p, nil
}

// List получает объекты по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(propertyColumns...).From("properties"), filter).
		OrderBy("created_at DESC", "id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if err := r.loadGalleries(ctx, executor, properties); err != nil {
		return nil, err
	}

	return properties, nil
}

// Update перезаписывает поля объекта и целиком заменяет галерею
func (r *Repository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("properties").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("price_per_night", p.PricePerNight).
		Set("location", p.Location).
		Set("bedrooms", p.Bedrooms).
		Set("bathrooms", p.Bathrooms).
		Set("area", p.Area).
		Set("is_featured", p.IsFeatured).
		Set("is_available", p.IsAvailable).
		Set("image", p.Image).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("property_images").
		Where(squirrel.Eq{"property_id": p.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build gallery delete: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Update - clear gallery: %v", ErrExecQuery, err)
	}

	if err := r.insertGallery(ctx, executor, p.ID, p.Gallery); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete удаляет объект; галерея, бронирования и избранное удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

// Count считает объекты по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.PropertyFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("properties"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.PropertyFilter) squirrel.SelectBuilder {
	if filter.Featured != nil {
		b = b.Where(squirrel.Eq{"is_featured": *filter.Featured})
	}
	if filter.Available != nil {
		b = b.Where(squirrel.Eq{"is_available": *filter.Available})
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		b = b.Where(squirrel.ILike{"location": "%" + escapeLike(strings.TrimSpace(*filter.Location)) + "%"})
	}
	return b
}

// escapeLike экранирует спецсимволы LIKE в пользовательском вводе
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *Repository) insertGallery(ctx context.Context, executor DBExecutor, propertyID int64, gallery []string) error {
	if len(gallery) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("property_images").Columns("property_id", "image_url", "sort_order")
	for i, url := range gallery {
		insertBuilder = insertBuilder.Values(propertyID, url, i)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertGallery - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertGallery - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadGalleries одним запросом подтягивает галереи для всех объектов
func (r *Repository) loadGalleries(ctx context.Context, executor DBExecutor, properties []*domain.Property) error {
	if len(properties) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Property, len(properties))
	ids := make([]int64, 0, len(properties))
	for _, p := range properties {
		p.Gallery = []string{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := psqlbuilder.Select("property_id", "image_url").
		From("property_images").
		Where(squirrel.Eq{"property_id": ids}).
		OrderBy("property_id", "sort_order").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadGalleries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadGalleries - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var propertyID int64
		var url string
		if err := rows.Scan(&propertyID, &url); err != nil {
			return fmt.Errorf("%w: loadGalleries - scan row: %v", ErrScanRow, err)
		}
		if p, ok := byID[propertyID]; ok {
			p.Gallery = append(p.Gallery, url)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadGalleries - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var p domain.Property
	var image sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.PricePerNight,
		&p.Location,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&p.IsFeatured,
		&p.IsAvailable,
		&image,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if image.Valid {
		p.Image = &image.String
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
