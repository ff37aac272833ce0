// Package combinator implements the generic backtracking combinators the
// parser is expressed over: any, seq, star, plus, and plus_any. Every
// combinator is defined purely in terms of cursor.Cursor's mark/restore
// contract, so it has no knowledge of tokens, grammar rules, or the
// builder — it is exercised and tested independently of the parser.
package combinator

import "github.com/vcglab/vcgc/internal/vcg/cursor"

// Parser attempts to consume some prefix of the cursor's remaining input,
// reporting success or failure. On failure it must leave the cursor exactly
// where it found it; callers that need this guaranteed unconditionally
// (rather than trusting the parser) should snapshot with cursor.Mark and
// restore themselves, as the combinators in this package do.
type Parser func(c *cursor.Cursor) bool

// Any tries each parser in order and returns success on the first match,
// with the cursor advanced by that parser. Each failed attempt restores the
// cursor to the point before it ran. If all fail, Any fails with the cursor
// at its original position.
func Any(parsers ...Parser) Parser {
	return func(c *cursor.Cursor) bool {
		for _, p := range parsers {
			mark := c.Mark()
			if p(c) {
				return true
			}
			restore(c, mark)
		}
		return false
	}
}

// Seq snapshots on entry, runs each parser in order, and restores to the
// snapshot if any fails. On success the cursor is left at the end of the
// last parser's consumption.
func Seq(parsers ...Parser) Parser {
	return func(c *cursor.Cursor) bool {
		mark := c.Mark()
		for _, p := range parsers {
			if !p(c) {
				restore(c, mark)
				return false
			}
		}
		return true
	}
}

// Star repeats p greedily, restoring to the start of each failed iteration.
// It always succeeds, even with zero matches.
func Star(p Parser) Parser {
	return func(c *cursor.Cursor) bool {
		for {
			mark := c.Mark()
			if !p(c) {
				restore(c, mark)
				return true
			}
		}
	}
}

// Plus snapshots on entry, requires at least one success from p (restoring
// and failing otherwise), then behaves as Star for subsequent iterations.
func Plus(p Parser) Parser {
	return func(c *cursor.Cursor) bool {
		mark := c.Mark()
		if !p(c) {
			restore(c, mark)
			return false
		}
		return Star(p)(c)
	}
}

// PlusAny requires at least one Any(parsers...) success (restoring and
// failing otherwise), then greedily repeats Any(parsers...), restoring
// per-iteration on failure.
func PlusAny(parsers ...Parser) Parser {
	choice := Any(parsers...)
	return Plus(choice)
}

// restore rolls the cursor back to mark. Restore fails on an empty cursor
// and for a mark taken at the end of input (equal to Len); in both cases no
// token can have been consumed since the mark, so the cursor is already
// there and the error is intentionally discarded.
func restore(c *cursor.Cursor, mark int) {
	_ = c.Restore(mark)
}
