package usecase

import (
	"context"

	"team-member-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// LabelResolver вычисляет отображаемые метки разработчиков.
type LabelResolver struct {
	users  domain.UserStorage
	logger *logrus.Logger
}

// NewLabelResolver создает новый экземпляр LabelResolver.
func NewLabelResolver(users domain.UserStorage, logger *logrus.Logger) *LabelResolver {
	return &LabelResolver{
		users:  users,
		logger: logger,
	}
}

// DeveloperLabel возвращает метку пользователя с той же почтой, что у разработчика,
// или сам email, если такого пользователя нет.
// Учетные записи разработчиков и пользователей ведутся раздельно и могут расходиться,
// email совпадает с тем, что видно в списке участников.
func (r *LabelResolver) DeveloperLabel(ctx context.Context, developer *domain.Developer) string {
	users, err := r.users.LoadByProperties(ctx, map[string]string{"mail": developer.Email})
	if err != nil {
		r.logger.WithError(err).WithField("developer_email", developer.Email).
			Warn("Failed to load user for developer label")
		return developer.Email
	}

	// Ожидается не больше одного пользователя, берется первый.
	if len(users) > 0 {
		return users[0].Label()
	}

	return developer.Email
}
