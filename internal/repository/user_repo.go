package repository

import (
	"context"
	"database/sql"
	"fmt"

	"team-member-service/internal/database"
	"team-member-service/internal/domain"
)

// UserRepository реализует domain.UserStorage поверх PostgreSQL.
type UserRepository struct {
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(queries *database.Queries) domain.UserStorage {
	return &UserRepository{
		queries: queries,
	}
}

// Create сохраняет пользователя и заполняет его ID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	dbUser, err := r.queries.CreateUser(ctx, database.CreateUserParams{
		Name: user.Name,
		Mail: user.Mail,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = dbUser.UserID
	return nil
}

// LoadByProperties возвращает пользователей, у которых совпадают все переданные свойства.
func (r *UserRepository) LoadByProperties(ctx context.Context, properties map[string]string) ([]*domain.User, error) {
	var params database.ListUsersByPropertiesParams
	for name, value := range properties {
		switch name {
		case "mail":
			params.Mail = sql.NullString{String: value, Valid: true}
		case "name":
			params.Name = sql.NullString{String: value, Valid: true}
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProperty, name)
		}
	}

	dbUsers, err := r.queries.ListUsersByProperties(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		users = append(users, &domain.User{
			ID:   dbUser.UserID,
			Name: dbUser.Name,
			Mail: dbUser.Mail,
		})
	}

	return users, nil
}
