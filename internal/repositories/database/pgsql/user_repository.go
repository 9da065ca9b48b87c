package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/workmapr/employer_directory_app/internal/apperrors"
	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
	"github.com/workmapr/employer_directory_app/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:   d.UserID,
		Username: d.Username,
		Name:     d.Name,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
	if d.PasswordHash != nil {
		m.PasswordHash = *d.PasswordHash
	}
	m.Position = toNullString(d.Position)
	m.State = toNullString(d.State)
	m.City = toNullString(d.City)
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:   m.UserID,
		Username: m.Username,
		Name:     m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
	if m.PasswordHash != "" {
		hash := m.PasswordHash
		d.PasswordHash = &hash
	}
	d.Position = fromNullString(m.Position)
	d.State = fromNullString(m.State)
	d.City = fromNullString(m.City)
	return d
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

const userSelectColumns = `user_id, username, password_hash, name, position, state, city,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanUserRow(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.Position,
		&m.State,
		&m.City,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
		INSERT INTO users (user_id, username, password_hash, name, position, state, city,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Name,
		modelUser.Position,
		modelUser.State,
		modelUser.City,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("username " + user.Username + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save user "+user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	m, err := scanUserRow(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID, err)
	}
	user := toDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL;`
	m, err := scanUserRow(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by username", err)
	}
	user := toDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		m, err := scanUserRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, toDomainUser(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, user.UserID, user.Name, user.LastUpdatedAt, user.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEmploymentLocation sets the denormalized employer location on the user
// row. State and city come from the caller, not from the business record.
func (r *PgxUserRepository) UpdateEmploymentLocation(ctx context.Context, userID, state, city string) error {
	query := `
		UPDATE users
		SET state = $2, city = $3, last_updated_at = NOW(), last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, userID, state, city)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update employment location for user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateUserPosition sets or clears the user's position. A nil position writes
// NULL, never an empty string.
func (r *PgxUserRepository) UpdateUserPosition(ctx context.Context, userID string, position *string) error {
	query := `
		UPDATE users
		SET position = $2, last_updated_at = NOW(), last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, userID, toNullString(position))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update position for user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClearEmployment nulls position, state and city in a single write.
func (r *PgxUserRepository) ClearEmployment(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET position = NULL, state = NULL, city = NULL, last_updated_at = NOW(), last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to clear employment for user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE users
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark user deleted "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
