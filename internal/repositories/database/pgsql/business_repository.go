package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/workmapr/employer_directory_app/internal/apperrors"
	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
)

type PgxBusinessRepository struct {
	BaseRepository
}

func NewBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepositoryFacade
var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

var fullBusinessSelectQuery = `
SELECT
	b.business_id, b.name, b.address, b.city, b.state, b.category, b.photo_url,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM businesses b
`

// getBusinesses runs the shared select with the given filter clause appended.
func (r *PgxBusinessRepository) getBusinesses(ctx context.Context, filterQuery string, args ...any) ([]domain.Business, error) {
	query := fullBusinessSelectQuery + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query businesses", err)
	}
	defer rows.Close()

	var businesses []domain.Business
	for rows.Next() {
		var b domain.Business
		err := rows.Scan(
			&b.BusinessID,
			&b.Name,
			&b.Address,
			&b.City,
			&b.State,
			&b.Category,
			&b.PhotoURL,
			&b.CreatedAt,
			&b.CreatedBy,
			&b.LastUpdatedAt,
			&b.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan business row", err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating business rows", err)
	}
	return businesses, nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	businesses, err := r.getBusinesses(ctx, `WHERE b.business_id = $1`, businessID)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &businesses[0], nil
}

func (r *PgxBusinessRepository) ListBusinesses(ctx context.Context, filter portsrepo.BusinessListFilter) ([]domain.Business, error) {
	whereClause := `WHERE 1=1`
	var args []any

	next := func() string { return "$" + strconv.Itoa(len(args)) }

	if filter.State != "" {
		args = append(args, filter.State)
		whereClause += ` AND b.state = ` + next()
	}
	if filter.City != "" {
		args = append(args, filter.City)
		whereClause += ` AND b.city = ` + next()
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		whereClause += ` AND b.category = ` + next()
	}
	if filter.NamePrefix != "" {
		args = append(args, filter.NamePrefix+"%")
		whereClause += ` AND b.name ILIKE ` + next()
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	whereClause += ` ORDER BY b.name LIMIT ` + next()
	args = append(args, filter.Offset)
	whereClause += ` OFFSET ` + next() + `;`

	businesses, err := r.getBusinesses(ctx, whereClause, args...)
	if err != nil {
		return nil, err
	}
	if businesses == nil {
		return []domain.Business{}, nil
	}
	return businesses, nil
}
