package services

import (
	portsrepo "github.com/shopward/shopward_backend/internal/core/ports/repositories"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fileStore portssvc.FileStoreSvc, mailer portssvc.MailSenderSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Activity = NewActivityService(repos.ActivityRepo, fileStore)
	container.Product = NewProductService(repos.ProductRepo, fileStore)
	container.Token = NewTokenService(cfg)
	container.Recovery = NewRecoveryService(container.User, mailer)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.ActivitySvcFacade = (*activityService)(nil)
	_ portssvc.ProductSvcFacade  = (*productService)(nil)
	_ portssvc.TokenSvcFacade    = (*tokenService)(nil)
	_ portssvc.RecoverySvcFacade = (*recoveryService)(nil)
)
