package repositories

// RepositoryProvider bundles all repository implementations so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	UserRepo     UserRepository
	ActivityRepo ActivityRepository
	ProductRepo  ProductRepository
}
