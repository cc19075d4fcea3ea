package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"team-member-service/internal/database"
	"team-member-service/internal/domain"
)

// DeveloperRepository реализует взаимодействие с данными разработчиков в PostgreSQL.
type DeveloperRepository struct {
	queries *database.Queries
}

// NewDeveloperRepository создает новый экземпляр DeveloperRepository.
func NewDeveloperRepository(queries *database.Queries) domain.DeveloperRepository {
	return &DeveloperRepository{
		queries: queries,
	}
}

// Upsert создает или обновляет разработчика.
func (r *DeveloperRepository) Upsert(ctx context.Context, developer *domain.Developer) error {
	_, err := r.queries.UpsertDeveloper(ctx, database.UpsertDeveloperParams{
		Email:     developer.Email,
		FirstName: developer.FirstName,
		LastName:  developer.LastName,
		UserName:  developer.UserName,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert developer %s: %w", developer.Email, err)
	}

	return nil
}

// GetByEmail возвращает разработчика по email.
func (r *DeveloperRepository) GetByEmail(ctx context.Context, email string) (*domain.Developer, error) {
	dbDeveloper, err := r.queries.GetDeveloperByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("failed to get developer: %w", err)
	}

	return &domain.Developer{
		Email:     dbDeveloper.Email,
		FirstName: dbDeveloper.FirstName,
		LastName:  dbDeveloper.LastName,
		UserName:  dbDeveloper.UserName,
	}, nil
}
