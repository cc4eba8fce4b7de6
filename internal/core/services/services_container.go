package services

import (
	portsrepo "github.com/vendsim/vendsim/internal/core/ports/repositories"
	portssvc "github.com/vendsim/vendsim/internal/core/ports/services"
	"github.com/vendsim/vendsim/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, accountRepo portsrepo.AccountRepository) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Catalog = NewCatalogService()
	container.Account = NewAccountService(accountRepo)

	stores := NewStoreFactory()
	if cfg.ChangeSeed != 0 {
		stores = NewSeededStoreFactory(cfg.ChangeSeed)
	}
	container.Session = NewSessionService(container.Catalog, accountRepo, NewConversionService(), stores)

	return container
}

// Interface implementation checks.
var (
	_ portssvc.SessionSvcFacade = (*SessionService)(nil)
	_ portssvc.AccountSvcFacade = (*AccountService)(nil)
	_ portssvc.CatalogSvcFacade = (*CatalogService)(nil)
)
