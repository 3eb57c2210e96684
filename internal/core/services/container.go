package services

import (
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
)

// NewServiceContainer wires all services from the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Document:      NewDocumentService(repos.Document),
		Client:        NewClientService(repos.Client),
		Supplier:      NewSupplierService(repos.Supplier),
		Article:       NewArticleService(repos.Article),
		BankAccount:   NewBankAccountService(repos.BankAccount),
		User:          NewUserService(repos.User),
		Auth:          NewAuthService(repos.User),
		Discharge:     NewDischargeService(repos.Discharge),
		ContractOrder: NewContractOrderService(repos.ContractOrder),
	}
}
