package resolver

import (
	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/pkg/contree"
)

// Chain tries its resolvers in order and returns the first file found.
type Chain struct {
	resolvers []Resolver
}

// NewChain creates a resolver trying each of resolvers in turn.
func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: append([]Resolver(nil), resolvers...)}
}

// Get returns the first non-nil result. An error from any resolver stops the chain.
func (c *Chain) Get(path, parent paths.Path) (*contree.File, error) {
	for _, r := range c.resolvers {
		file, err := r.Get(path, parent)
		if err != nil || file != nil {
			return file, err
		}
	}
	return nil, nil
}

// Verify Chain implements Resolver
var _ Resolver = (*Chain)(nil)
