// Package parser implements the two-pass VCG compiler: an import pass that
// collects package declarations, and a rule pass that drives builder.RuleBuilder
// through the backtracking combinators to assemble each rule's node tree.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	mdwlog "github.com/vcglab/vcgc/foundation/core/log"
	"github.com/vcglab/vcgc/internal/vcg/ast"
	"github.com/vcglab/vcgc/internal/vcg/builder"
	"github.com/vcglab/vcgc/internal/vcg/combinator"
	"github.com/vcglab/vcgc/internal/vcg/cursor"
	"github.com/vcglab/vcgc/internal/vcg/lexer"
	"github.com/vcglab/vcgc/internal/vcg/token"
	"github.com/vcglab/vcgc/internal/vcg/vcgerrors"
)

// Options configures a Parser.
type Options struct {
	Logger *mdwlog.Logger

	// PackagePath and FileName are recorded on the resulting Module for
	// downstream collaborators; they have no bearing on compilation.
	PackagePath string
	FileName    string
}

// Parser compiles a single VCG source string into an ast.Module. A Parser
// instance owns its cursor exclusively for the duration of one Compile
// call; it holds no state across calls other than logging configuration.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// New returns a Parser configured with opts. A nil Logger falls back to the
// package default logger, tagged with the vcg-parser component.
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Parser{
		logger:  opts.Logger.WithField("component", "vcg-parser"),
		options: opts,
	}
}

// Compile tokenizes source and runs the import pass followed by the rule
// pass, returning the assembled Module or the first LexError/CompileError
// encountered.
func (p *Parser) Compile(source string) (*ast.Module, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		p.logger.Warn("VCG lexing failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	module := ast.NewModule(p.options.PackagePath, p.options.FileName)
	c := cursor.New(tokens)

	if err := p.importPass(c, module); err != nil {
		p.logger.Warn("VCG import pass failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	c.Reset()
	if err := p.rulePass(c, module); err != nil {
		p.logger.Warn("VCG rule pass failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("VCG compilation completed", mdwlog.Fields{
		"imports": len(module.Imports),
		"rules":   len(module.Rules),
	})
	return module, nil
}

// importPass scans top-level tokens, consuming import statements and
// skipping over rule regions (left to the rule pass).
func (p *Parser) importPass(c *cursor.Cursor, module *ast.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*vcgerrors.CompileError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	for c.HasNext() {
		tok, _ := c.Peek()
		switch {
		case tok.Kind == token.KindDollarIdentifier:
			skipToSemicolon(c)
		case tok.Kind == token.KindWord && strings.EqualFold(tok.Text, "import"):
			line := tok.Line
			c.Advance()
			if !p.consumeImport(c, module) {
				return vcgerrors.NewCompileError(line, fmt.Sprintf("Malformed input statement on line %d", line))
			}
		default:
			skipToSemicolon(c)
		}
	}
	return nil
}

// skipToSemicolon consumes tokens up to and including the next Semicolon,
// or through EOF if none is found.
func skipToSemicolon(c *cursor.Cursor) {
	for c.HasNext() {
		tok, _ := c.Advance()
		if tok.Kind == token.KindSemicolon {
			return
		}
	}
}

// consumeImport implements consume_import() = seq(optional_static,
// package_name, optional_alias, semicolon), then applies the semantic
// checks that follow a successful sequence.
func (p *Parser) consumeImport(c *cursor.Cursor, module *ast.Module) bool {
	var pkg, alias string
	var isStatic bool
	var pkgLine int

	isStaticP := func(c *cursor.Cursor) bool {
		if tok, ok := c.Peek(); ok && tok.Kind == token.KindWord && strings.EqualFold(tok.Text, "static") {
			c.Advance()
			isStatic = true
		}
		return true
	}

	packageNameP := func(c *cursor.Cursor) bool {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.KindWord {
			return false
		}
		c.Advance()
		pkg = tok.Text
		pkgLine = tok.Line

		appendSegment := func(c *cursor.Cursor) bool {
			periodTok, ok := c.Peek()
			if !ok || periodTok.Kind != token.KindPeriod {
				return false
			}
			c.Advance()
			wordTok, ok := c.Peek()
			if !ok || wordTok.Kind != token.KindWord {
				return false
			}
			c.Advance()
			pkg += "." + wordTok.Text
			return true
		}
		combinator.Star(appendSegment)(c)
		return true
	}

	optionalAliasP := func(c *cursor.Cursor) bool {
		mark := c.Mark()
		asTok, ok := c.Peek()
		if !ok || asTok.Kind != token.KindWord || !strings.EqualFold(asTok.Text, "as") {
			return true
		}
		c.Advance()
		nameTok, ok := c.Peek()
		if !ok || nameTok.Kind != token.KindWord {
			c.Restore(mark)
			return true
		}
		c.Advance()
		alias = nameTok.Text
		return true
	}

	semicolonP := func(c *cursor.Cursor) bool {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.KindSemicolon {
			return false
		}
		c.Advance()
		return true
	}

	ok := combinator.Seq(isStaticP, packageNameP, optionalAliasP, semicolonP)(c)
	if !ok {
		return false
	}

	if _, exists := module.Imports[pkg]; exists {
		panic(vcgerrors.NewCompileError(pkgLine, fmt.Sprintf("Package %s already loaded", pkg)))
	}
	if alias != "" && isStatic {
		panic(vcgerrors.NewCompileError(pkgLine, fmt.Sprintf("Package %s cannot be both static and renamed", pkg)))
	}
	module.Imports[pkg] = ast.Import{Alias: alias, IsStatic: isStatic}
	return true
}

// rulePass compiles, for each DollarIdentifier at top level, a rule body via
// seq(optional_rule_function, Equals, expression, Semicolon); everything
// else is skipped to the next semicolon.
func (p *Parser) rulePass(c *cursor.Cursor, module *ast.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*vcgerrors.CompileError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	for c.HasNext() {
		tok, _ := c.Peek()
		if tok.Kind != token.KindDollarIdentifier {
			skipToSemicolon(c)
			continue
		}

		line := tok.Line
		c.Advance()
		ruleName := tok.Text

		var callback string
		b := builder.New()
		ok := combinator.Seq(
			optionalRuleFunction(&callback),
			expect(token.KindEquals),
			ruleExpression(b),
			expect(token.KindSemicolon),
		)(c)
		if !ok {
			return vcgerrors.NewCompileError(line, fmt.Sprintf("Bad definition on line %d", line))
		}
		module.AddRule(ruleName, b.Finish(), callback)
	}
	return nil
}

// expect returns a combinator.Parser that consumes exactly one token of the
// given kind.
func expect(kind token.Kind) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		tok, ok := c.Peek()
		if !ok || tok.Kind != kind {
			return false
		}
		c.Advance()
		return true
	}
}

// optionalRuleFunction implements: optional_rule_function := AtIdentifier?,
// recording the captured callback name into *callback (left empty when
// absent). It always succeeds.
func optionalRuleFunction(callback *string) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		if tok, ok := c.Peek(); ok && tok.Kind == token.KindAtIdentifier {
			c.Advance()
			*callback = tok.Text
		}
		return true
	}
}

// ruleExpression implements: expression := plus_any(repeatable_expr,
// optional_expr). Every alternative operates against the shared builder b.
func ruleExpression(b *builder.RuleBuilder) combinator.Parser {
	var expr combinator.Parser
	expr = func(c *cursor.Cursor) bool {
		return combinator.PlusAny(
			repeatableExpr(b, &expr),
			optionalExpr(b, &expr),
		)(c)
	}
	return expr
}

// repeatableExpr implements: repeatable_expr := plus_any(word, quoted,
// variable, choices, optional_expr); then optional_repeatable. It emits at
// least one atom via plus_any, then applies at most one quantifier to the
// node the builder most recently produced.
func repeatableExpr(b *builder.RuleBuilder, expr *combinator.Parser) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		atom := combinator.PlusAny(
			wordAtom(b),
			numberAtom(b),
			quotedAtom(b),
			variableAtom(b),
			choicesAtom(b, expr),
			optionalExpr(b, expr),
		)
		if !atom(c) {
			return false
		}
		optionalRepeatable(b)(c)
		return true
	}
}

func wordAtom(b *builder.RuleBuilder) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.KindWord {
			return false
		}
		c.Advance()
		b.AddWord(tok.Text)
		return true
	}
}

// numberAtom treats a bare numeric literal in a rule body as a word (e.g.
// "computer 12" matches the digits as a spoken word); Number otherwise only
// appears inside a repeat range.
func numberAtom(b *builder.RuleBuilder) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.KindNumber {
			return false
		}
		c.Advance()
		b.AddWord(tok.Text)
		return true
	}
}

func quotedAtom(b *builder.RuleBuilder) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.KindQuotedString {
			return false
		}
		c.Advance()
		b.AddWord(tok.Text)
		return true
	}
}

func variableAtom(b *builder.RuleBuilder) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.KindDollarIdentifier {
			return false
		}
		c.Advance()
		b.AddVariable(tok.Text)
		return true
	}
}

// choicesAtom implements: choices := "(" pipe_expression ")".
func choicesAtom(b *builder.RuleBuilder, expr *combinator.Parser) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		mark := c.Mark()
		if !expect(token.KindParenStart)(c) {
			return false
		}
		b.StartGroup()
		if !pipeExpression(b, expr)(c) {
			c.Restore(mark)
			return false
		}
		if !expect(token.KindParenEnd)(c) {
			c.Restore(mark)
			return false
		}
		b.EndGroup()
		return true
	}
}

// optionalExpr implements: optional_expr := "[" pipe_expression "]".
func optionalExpr(b *builder.RuleBuilder, expr *combinator.Parser) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		mark := c.Mark()
		if !expect(token.KindBracketStart)(c) {
			return false
		}
		b.StartOptional()
		if !pipeExpression(b, expr)(c) {
			c.Restore(mark)
			return false
		}
		if !expect(token.KindBracketEnd)(c) {
			c.Restore(mark)
			return false
		}
		b.EndOptional()
		return true
	}
}

// pipeExpression implements: pipe_expression := expression ( "|" expression )*.
func pipeExpression(b *builder.RuleBuilder, expr *combinator.Parser) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		if !(*expr)(c) {
			return false
		}
		for {
			mark := c.Mark()
			if !expect(token.KindPipe)(c) {
				c.Restore(mark)
				return true
			}
			b.OnPipe()
			if !(*expr)(c) {
				c.Restore(mark)
				return true
			}
		}
	}
}

// optionalRepeatable implements: optional_repeatable := any(repeat_range,
// kleene_star, kleene_plus)?. Semantic violations (max < min, negative n)
// escalate via panic, caught in rulePass.
func optionalRepeatable(b *builder.RuleBuilder) combinator.Parser {
	return func(c *cursor.Cursor) bool {
		if tok, ok := c.Peek(); ok && tok.Kind == token.KindStar {
			c.Advance()
			b.SetRange(0, builder.Unbounded)
			return true
		}
		if tok, ok := c.Peek(); ok && tok.Kind == token.KindPlus {
			c.Advance()
			b.SetRange(1, builder.Unbounded)
			return true
		}
		if tok, ok := c.Peek(); ok && tok.Kind == token.KindCurlyStart {
			applyRepeatRange(b, c, tok.Line)
			return true
		}
		return true
	}
}

// applyRepeatRange implements repeat_range := "{" number ("," number?)? "}".
func applyRepeatRange(b *builder.RuleBuilder, c *cursor.Cursor, line int) {
	mark := c.Mark()
	c.Advance() // '{'

	minTok, ok := c.Peek()
	if !ok || minTok.Kind != token.KindNumber {
		c.Restore(mark)
		return
	}
	c.Advance()
	min := mustAtoi(minTok.Text)
	max := min

	if tok, ok := c.Peek(); ok && tok.Kind == token.KindComma {
		c.Advance()
		max = builder.Unbounded
		if numTok, ok := c.Peek(); ok && numTok.Kind == token.KindNumber {
			c.Advance()
			max = mustAtoi(numTok.Text)
		}
	}

	closeTok, ok := c.Peek()
	if !ok || closeTok.Kind != token.KindCurlyEnd {
		c.Restore(mark)
		return
	}
	c.Advance()

	if min < 0 {
		panic(vcgerrors.NewCompileError(line, fmt.Sprintf("Negative repeat count on line %d", line)))
	}
	if max != builder.Unbounded && max < min {
		panic(vcgerrors.NewCompileError(line, "Max value is less than the paired minimum value"))
	}
	b.SetRange(min, max)
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
