package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"team-member-service/internal/database"
	"team-member-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation - код ошибки PostgreSQL для нарушения уникальности.
const uniqueViolation = "23505"

// TeamRepository реализует взаимодействие с данными команд в PostgreSQL.
type TeamRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB, queries *database.Queries) domain.TeamRepository {
	return &TeamRepository{
		db:      db,
		queries: queries,
	}
}

// Create создает команду.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	_, err := r.queries.CreateTeam(ctx, database.CreateTeamParams{
		TeamID: team.ID,
		Name:   team.Name,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrTeamAlreadyExists
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	return nil
}

// GetByID возвращает команду по идентификатору.
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	dbTeam, err := r.queries.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &domain.Team{
		ID:   dbTeam.TeamID,
		Name: dbTeam.Name,
	}, nil
}
