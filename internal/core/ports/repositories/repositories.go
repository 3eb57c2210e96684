package repositories

// RepositoryProvider bundles all repository facades for dependency injection.
type RepositoryProvider struct {
	Document      DocumentRepositoryFacade
	Client        ClientRepositoryFacade
	Supplier      SupplierRepositoryFacade
	Article       ArticleRepositoryFacade
	BankAccount   BankAccountRepositoryFacade
	User          UserRepositoryFacade
	Discharge     DischargeRepositoryFacade
	ContractOrder ContractOrderRepositoryFacade
}
