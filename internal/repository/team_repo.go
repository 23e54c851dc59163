package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"team-fit/internal/domain"
)

// TeamRepository persiste rosters guardados de equipos.
type TeamRepository interface {
	Create(ctx context.Context, team domain.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PgTeamRepository struct {
	pool *pgxpool.Pool
}

func NewPgTeamRepository(pool *pgxpool.Pool) *PgTeamRepository {
	return &PgTeamRepository{pool: pool}
}

func (r *PgTeamRepository) Create(ctx context.Context, team domain.Team) error {
	const query = `
		INSERT INTO teams (id, name, members, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, team.ID, team.Name, team.Members, team.CreatedAt)
	return err
}

func (r *PgTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Team, error) {
	const query = `
		SELECT id, name, members, created_at
		FROM teams
		WHERE id = $1
	`
	var team domain.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(&team.ID, &team.Name, &team.Members, &team.CreatedAt)
	if err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

func (r *PgTeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	const query = `
		SELECT id, name, members, created_at
		FROM teams
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Members, &team.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *PgTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM teams WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
