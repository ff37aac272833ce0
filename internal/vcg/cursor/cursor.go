// Package cursor implements a random-access cursor over a fixed token
// sequence, with marker/rollback support for backtracking parsers.
package cursor

import (
	mdwerror "github.com/vcglab/vcgc/foundation/core/error"
	"github.com/vcglab/vcgc/internal/vcg/token"
)

// Cursor is a thin, mutable position pointer into an immutable token slice.
// It owns no tokens; the slice is expected to outlive the cursor.
type Cursor struct {
	tokens []token.Token
	pos    int
}

// New returns a Cursor positioned at the start of tokens.
func New(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// HasNext reports whether Advance would succeed.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.tokens)
}

// PeekKindAny reports whether the current token (without consuming it) has
// one of the given kinds. Returns false when the cursor is exhausted.
func (c *Cursor) PeekKindAny(kinds ...token.Kind) bool {
	if !c.HasNext() {
		return false
	}
	current := c.tokens[c.pos].Kind
	for _, k := range kinds {
		if current == k {
			return true
		}
	}
	return false
}

// Peek returns the current token without consuming it. The second return
// value is false when the cursor is exhausted.
func (c *Cursor) Peek() (token.Token, bool) {
	if !c.HasNext() {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

// Advance consumes and returns the current token. It is an error to call
// Advance when HasNext is false.
func (c *Cursor) Advance() (token.Token, error) {
	if !c.HasNext() {
		return token.Token{}, mdwerror.New("cursor exhausted").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cursor.Advance")
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, nil
}

// Mark returns an opaque snapshot of the current position, valid for the
// lifetime of the cursor. Multiple outstanding markers are allowed.
func (c *Cursor) Mark() int {
	return c.pos
}

// Restore rewinds the cursor to a previously obtained marker. It is
// bounds-checked: the marker must lie in [0, len) (any other position, or
// any restore on an empty cursor, is an error).
func (c *Cursor) Restore(mark int) error {
	if len(c.tokens) == 0 {
		return mdwerror.New("cannot restore an empty cursor").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cursor.Restore")
	}
	if mark < 0 || mark >= len(c.tokens) {
		return mdwerror.New("marker out of bounds").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cursor.Restore").
			WithDetail("marker", mark).
			WithDetail("length", len(c.tokens))
	}
	c.pos = mark
	return nil
}

// Reset rewinds the cursor to the beginning of the token sequence.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Len returns the number of tokens the cursor was constructed over.
func (c *Cursor) Len() int {
	return len(c.tokens)
}
