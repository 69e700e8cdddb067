package services

// ServiceContainer groups the service facades so route registration can take a
// single dependency instead of one parameter per service.
type ServiceContainer struct {
	User        UserSvcFacade
	Transaction TransactionSvcFacade
}
