package ports

// FileProber checks whether files referenced by resources exist.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type FileProber interface {
	// Exists reports whether path exists. An error means the check itself failed.
	Exists(path string) (bool, error)
}

// FileProberFunc adapts a function to the FileProber interface.
type FileProberFunc func(path string) (bool, error)

// Exists calls f(path).
func (f FileProberFunc) Exists(path string) (bool, error) {
	return f(path)
}
