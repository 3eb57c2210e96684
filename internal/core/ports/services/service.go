package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	Document      DocumentSvcFacade
	Client        ClientSvcFacade
	Supplier      SupplierSvcFacade
	Article       ArticleSvcFacade
	BankAccount   BankAccountSvcFacade
	User          UserSvcFacade
	Auth          AuthSvcFacade
	Discharge     DischargeSvcFacade
	ContractOrder ContractOrderSvcFacade
}
