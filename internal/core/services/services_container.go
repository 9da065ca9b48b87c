package services

import (
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Business = NewBusinessService(repos.BusinessRepo)
	container.Workplace = NewWorkplaceService(
		repos.EmployerProfileRepo,
		repos.BusinessRepo,
		repos.UserRepo,
	)
	container.TokenService = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.BusinessSvcFacade  = (*businessService)(nil)
	_ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)
	_ portssvc.TokenSvcFacade     = (*tokenService)(nil)
)
