package database

import (
	"context"
	"database/sql"
)

const createTeam = `-- name: CreateTeam :one
INSERT INTO teams (team_id, name)
VALUES ($1, $2)
RETURNING team_id, name, created_at
`

type CreateTeamParams struct {
	TeamID string
	Name   string
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam, arg.TeamID, arg.Name)
	var i Team
	err := row.Scan(&i.TeamID, &i.Name, &i.CreatedAt)
	return i, err
}

const getTeamByID = `-- name: GetTeamByID :one
SELECT team_id, name, created_at
FROM teams
WHERE team_id = $1
`

func (q *Queries) GetTeamByID(ctx context.Context, teamID string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeamByID, teamID)
	var i Team
	err := row.Scan(&i.TeamID, &i.Name, &i.CreatedAt)
	return i, err
}

const upsertDeveloper = `-- name: UpsertDeveloper :one
INSERT INTO developers (email, first_name, last_name, user_name)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE
SET first_name = EXCLUDED.first_name,
    last_name  = EXCLUDED.last_name,
    user_name  = EXCLUDED.user_name
RETURNING email, first_name, last_name, user_name, created_at
`

type UpsertDeveloperParams struct {
	Email     string
	FirstName string
	LastName  string
	UserName  string
}

func (q *Queries) UpsertDeveloper(ctx context.Context, arg UpsertDeveloperParams) (Developer, error) {
	row := q.db.QueryRowContext(ctx, upsertDeveloper, arg.Email, arg.FirstName, arg.LastName, arg.UserName)
	var i Developer
	err := row.Scan(&i.Email, &i.FirstName, &i.LastName, &i.UserName, &i.CreatedAt)
	return i, err
}

const getDeveloperByEmail = `-- name: GetDeveloperByEmail :one
SELECT email, first_name, last_name, user_name, created_at
FROM developers
WHERE email = $1
`

func (q *Queries) GetDeveloperByEmail(ctx context.Context, email string) (Developer, error) {
	row := q.db.QueryRowContext(ctx, getDeveloperByEmail, email)
	var i Developer
	err := row.Scan(&i.Email, &i.FirstName, &i.LastName, &i.UserName, &i.CreatedAt)
	return i, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (name, mail)
VALUES ($1, $2)
RETURNING user_id, name, mail, created_at
`

type CreateUserParams struct {
	Name string
	Mail string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser, arg.Name, arg.Mail)
	var i User
	err := row.Scan(&i.UserID, &i.Name, &i.Mail, &i.CreatedAt)
	return i, err
}

const listUsersByProperties = `-- name: ListUsersByProperties :many
SELECT user_id, name, mail, created_at
FROM users
WHERE ($1::text IS NULL OR mail = $1)
  AND ($2::text IS NULL OR name = $2)
ORDER BY user_id
`

type ListUsersByPropertiesParams struct {
	Mail sql.NullString
	Name sql.NullString
}

func (q *Queries) ListUsersByProperties(ctx context.Context, arg ListUsersByPropertiesParams) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsersByProperties, arg.Mail, arg.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.UserID, &i.Name, &i.Mail, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getTeamMemberEmails = `-- name: GetTeamMemberEmails :many
SELECT developer_email
FROM team_members
WHERE team_id = $1
ORDER BY developer_email
`

func (q *Queries) GetTeamMemberEmails(ctx context.Context, teamID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getTeamMemberEmails, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		items = append(items, email)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const addTeamMember = `-- name: AddTeamMember :execrows
INSERT INTO team_members (team_id, developer_email)
VALUES ($1, $2)
ON CONFLICT (team_id, developer_email) DO NOTHING
`

type AddTeamMemberParams struct {
	TeamID         string
	DeveloperEmail string
}

func (q *Queries) AddTeamMember(ctx context.Context, arg AddTeamMemberParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, addTeamMember, arg.TeamID, arg.DeveloperEmail)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const removeTeamMember = `-- name: RemoveTeamMember :execrows
DELETE FROM team_members
WHERE team_id = $1 AND developer_email = $2
`

type RemoveTeamMemberParams struct {
	TeamID         string
	DeveloperEmail string
}

func (q *Queries) RemoveTeamMember(ctx context.Context, arg RemoveTeamMemberParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, removeTeamMember, arg.TeamID, arg.DeveloperEmail)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const invalidateCacheTag = `-- name: InvalidateCacheTag :exec
INSERT INTO cache_tags (tag, invalidations, updated_at)
VALUES ($1, 1, NOW())
ON CONFLICT (tag) DO UPDATE
SET invalidations = cache_tags.invalidations + 1,
    updated_at    = NOW()
`

func (q *Queries) InvalidateCacheTag(ctx context.Context, tag string) error {
	_, err := q.db.ExecContext(ctx, invalidateCacheTag, tag)
	return err
}

const getCacheTagInvalidations = `-- name: GetCacheTagInvalidations :one
SELECT invalidations
FROM cache_tags
WHERE tag = $1
`

func (q *Queries) GetCacheTagInvalidations(ctx context.Context, tag string) (int64, error) {
	row := q.db.QueryRowContext(ctx, getCacheTagInvalidations, tag)
	var invalidations int64
	err := row.Scan(&invalidations)
	return invalidations, err
}
