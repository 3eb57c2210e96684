package pgsql

import (
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all PostgreSQL repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Document:      newPgxDocumentRepository(dbPool),
		Client:        newPgxClientRepository(dbPool),
		Supplier:      newPgxSupplierRepository(dbPool),
		Article:       newPgxArticleRepository(dbPool),
		BankAccount:   newPgxBankAccountRepository(dbPool),
		User:          newPgxUserRepository(dbPool),
		Discharge:     newPgxDischargeRepository(dbPool),
		ContractOrder: newPgxContractOrderRepository(dbPool),
	}
}
