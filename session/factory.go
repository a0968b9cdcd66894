package session

import "shopcart/domain"

// NewSession constructs a domain.Session. An empty seedFile starts from the
// built-in seed; otherwise the JSON file at that path is loaded.
func NewSession(seedFile string) (domain.Session, error) {
	if seedFile == "" {
		return NewInMemorySession(DefaultSeed()), nil
	}
	seed, err := LoadSeed(seedFile)
	if err != nil {
		return nil, err
	}
	return NewInMemorySession(seed), nil
}
