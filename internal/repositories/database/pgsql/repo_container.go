package pgsql

import (
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles every repository built over one connection pool.
type RepositoryContainer struct {
	User        portsrepo.UserRepository
	BulkInput   portsrepo.LedgerRepository[domain.BulkInput]
	DryProcess  portsrepo.LedgerRepository[domain.DryProcessEntry]
	Washing     portsrepo.LedgerRepository[domain.WashingEntry]
	SubContract portsrepo.LedgerRepository[domain.SubContractEntry]
	GatePass    portsrepo.LedgerRepository[domain.GatePassEntry]
	SpecialNote portsrepo.SpecialNoteRepository
	Dashboard   portsrepo.DashboardRepository
}

// NewRepositoryContainer wires all pgx repositories onto the given pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		User:        NewUserRepository(pool),
		BulkInput:   NewBulkInputRepository(pool),
		DryProcess:  NewDryProcessRepository(pool),
		Washing:     NewWashingRepository(pool),
		SubContract: NewSubContractRepository(pool),
		GatePass:    NewGatePassRepository(pool),
		SpecialNote: NewSpecialNoteRepository(pool),
		Dashboard:   NewDashboardRepository(pool),
	}
}
