package minimax

import "github.com/IlikeChooros/go-ttt/pkg/ttt"

type boundType uint8

const (
	boundNone boundType = iota
	boundExact
	boundLower
	boundUpper
)

type cacheEntry struct {
	score Score
	bound boundType
}

// Transposition table with a slot for every (board, side to move) pair,
// 3^9 boards is small enough to not need hashing or replacement.
// Not safe for concurrent use, every search worker owns one.
type Cache struct {
	entries []cacheEntry
}

func NewCache() *Cache {
	return &Cache{entries: make([]cacheEntry, 2*ttt.BoardKeys)}
}

func cacheIndex(b *ttt.Board, maximizing bool) int {
	index := int(b.Key()) * 2
	if maximizing {
		index++
	}
	return index
}

// Returns the stored score if it decides the node within (alpha, beta)
func (c *Cache) probe(b *ttt.Board, maximizing bool, alpha, beta Score) (Score, bool) {
	entry := c.entries[cacheIndex(b, maximizing)]
	switch entry.bound {
	case boundExact:
		return entry.score, true
	case boundLower:
		if entry.score >= beta {
			return entry.score, true
		}
	case boundUpper:
		if entry.score <= alpha {
			return entry.score, true
		}
	}
	return 0, false
}

func (c *Cache) store(b *ttt.Board, maximizing bool, score, alphaOrig, betaOrig Score) {
	c.entries[cacheIndex(b, maximizing)] = cacheEntry{
		score: score,
		bound: determineBound(score, alphaOrig, betaOrig),
	}
}

// Number of stored positions
func (c *Cache) Len() int {
	n := 0
	for i := range c.entries {
		if c.entries[i].bound != boundNone {
			n++
		}
	}
	return n
}

func (c *Cache) Clear() {
	clear(c.entries)
}

func determineBound(score, alphaOrig, betaOrig Score) boundType {
	switch {
	case score <= alphaOrig:
		return boundUpper
	case score >= betaOrig:
		return boundLower
	default:
		return boundExact
	}
}
