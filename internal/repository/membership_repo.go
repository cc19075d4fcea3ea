package repository

import (
	"context"
	"database/sql"

	"team-member-service/internal/database"
	"team-member-service/internal/domain"

	"github.com/pkg/errors"
)

// MembershipRepository реализует domain.TeamMembershipManager в PostgreSQL.
// Ошибки несут стек вызовов (pkg/errors), его разбирает журнал неудачных удалений.
type MembershipRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewMembershipRepository создает новый экземпляр MembershipRepository.
func NewMembershipRepository(db *sql.DB, queries *database.Queries) domain.TeamMembershipManager {
	return &MembershipRepository{
		db:      db,
		queries: queries,
	}
}

// GetMembers возвращает email всех участников команды.
func (r *MembershipRepository) GetMembers(ctx context.Context, teamID string) ([]string, error) {
	emails, err := r.queries.GetTeamMemberEmails(ctx, teamID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get members of team %s", teamID)
	}
	if emails == nil {
		emails = []string{}
	}

	return emails, nil
}

// AddMembers добавляет разработчиков в команду одной транзакцией.
func (r *MembershipRepository) AddMembers(ctx context.Context, teamID string, emails []string) error {
	return r.inTx(ctx, func(q *database.Queries) error {
		for _, email := range emails {
			if _, err := q.AddTeamMember(ctx, database.AddTeamMemberParams{
				TeamID:         teamID,
				DeveloperEmail: email,
			}); err != nil {
				return errors.Wrapf(err, "failed to add %s to team %s", email, teamID)
			}
		}
		return nil
	})
}

// RemoveMembers удаляет разработчиков из команды одной транзакцией.
// Если кто-то из них не состоит в команде, не удаляется никто.
func (r *MembershipRepository) RemoveMembers(ctx context.Context, teamID string, emails []string) error {
	return r.inTx(ctx, func(q *database.Queries) error {
		for _, email := range emails {
			removed, err := q.RemoveTeamMember(ctx, database.RemoveTeamMemberParams{
				TeamID:         teamID,
				DeveloperEmail: email,
			})
			if err != nil {
				return errors.Wrapf(err, "failed to remove %s from team %s", email, teamID)
			}
			if removed == 0 {
				return errors.Wrapf(domain.ErrNotTeamMember, "failed to remove %s from team %s", email, teamID)
			}
		}
		return nil
	})
}

func (r *MembershipRepository) inTx(ctx context.Context, fn func(q *database.Queries) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(r.queries.WithTx(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
