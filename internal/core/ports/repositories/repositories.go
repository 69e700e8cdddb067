package repositories

// RepositoryProvider groups the repository facades the service layer needs.
// Concrete database packages return one of these from their constructor so
// main only wires a single value through.
type RepositoryProvider struct {
	User        UserRepositoryFacade
	Transaction TransactionRepositoryFacade
}
