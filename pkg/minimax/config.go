package minimax

import (
	"encoding/json"
	"strings"
)

type Config struct {
	// Alpha-beta cutoffs, with pruning disabled the search is a plain
	// exhaustive minimax (returns the same scores, visits every node)
	Pruning bool
	// Position-keyed transposition table, shared by sibling subtrees
	Cache bool
	// Number of goroutines scoring the root moves
	NThreads int
}

func (c Config) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(c)
	return strings.TrimSpace(builder.String())
}

func DefaultConfig() *Config {
	return &Config{
		Pruning:  true,
		Cache:    false,
		NThreads: 1,
	}
}

func (c *Config) SetPruning(pruning bool) *Config {
	c.Pruning = pruning
	return c
}

func (c *Config) SetCache(cache bool) *Config {
	c.Cache = cache
	return c
}

func (c *Config) SetThreads(threads int) *Config {
	c.NThreads = max(threads, 1)
	return c
}
