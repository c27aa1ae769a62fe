package ports

// Environment provides read access to environment variables.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
}
