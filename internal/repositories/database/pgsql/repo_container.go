package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgsql-backed repositories together with the
// externally-constructed employer profile repository (which lives in a
// different store behind its own client).
func NewRepositoryProvider(dbPool *pgxpool.Pool, profileRepo portsrepo.EmployerProfileRepositoryFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:            NewUserRepository(dbPool),
		BusinessRepo:        NewBusinessRepository(dbPool),
		EmployerProfileRepo: profileRepo,
	}
}
