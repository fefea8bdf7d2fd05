package wishlist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-RealEstateService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RealEstateService/pkg/psqlbuilder"
)

// Имена внешних ключей таблицы wishlists
const (
	userForeignKey     = "wishlists_user_id_fkey"
	propertyForeignKey = "wishlists_property_id_fkey"
)

// Repository репозиторий избранного
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет объект в избранное; уникальность пары гарантирует БД
func (r *Repository) Create(ctx context.Context, userID, propertyID int64) (*domain.WishlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("wishlists").
		Columns("user_id", "property_id").
		Values(userID, propertyID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	entry := &domain.WishlistEntry{UserID: userID, PropertyID: propertyID}
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return nil, ErrAlreadyExists
		case pgerr.IsForeignKeyViolation(err) && pgerr.Constraint(err) == userForeignKey:
			return nil, ErrUserNotFound
		case pgerr.IsForeignKeyViolation(err) && pgerr.Constraint(err) == propertyForeignKey:
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// Delete удаляет объект из избранного пользователя
func (r *Repository) Delete(ctx context.Context, userID, propertyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("wishlists").
		Where(squirrel.Eq{"user_id": userID, "property_id": propertyID}).
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
		return ErrEntryNotFound
	}

	return nil
}

// ListByUser получает избранное пользователя с данными объектов, новые первыми
// Галерея объектов не загружается
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.WishlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"w.id",
		"w.user_id",
		"w.property_id",
		"w.created_at",
		"p.title",
		"p.description",
		"p.price_per_night",
		"p.location",
		"p.bedrooms",
		"p.bathrooms",
		"p.area",
		"p.is_featured",
		"p.is_available",
		"p.image",
		"p.created_at",
		"p.updated_at",
	).
		From("wishlists w").
		Join("properties p ON p.id = w.property_id").
		Where(squirrel.Eq{"w.user_id": userID}).
		OrderBy("w.created_at DESC", "w.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.WishlistEntry, 0)
	for rows.Next() {
		var entry domain.WishlistEntry
		var p domain.Property
		var image sql.NullString
		var createdAt, propCreatedAt, propUpdatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.PropertyID,
			&createdAt,
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
			&propCreatedAt,
			&propUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		p.ID = entry.PropertyID
		if image.Valid {
			p.Image = &image.String
		}
		p.CreatedAt = propCreatedAt.Time
		p.UpdatedAt = propUpdatedAt.Time
		entry.CreatedAt = createdAt.Time
		entry.Property = &p

		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// Count считает все записи избранного
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("wishlists").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}
