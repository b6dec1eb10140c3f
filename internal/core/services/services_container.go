package services

import (
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/repositories/database/pgsql"
)

// NewServiceContainer wires every service onto the repository container.
func NewServiceContainer(repos *pgsql.RepositoryContainer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.User),
		BulkInput:   NewLedgerService(repos.BulkInput),
		DryProcess:  NewLedgerService(repos.DryProcess),
		Washing:     NewLedgerService(repos.Washing),
		SubContract: NewLedgerService(repos.SubContract),
		GatePass:    NewLedgerService(repos.GatePass),
		SpecialNote: NewSpecialNoteService(repos.SpecialNote),
		Dashboard:   NewDashboardService(repos.Dashboard),
	}
}
