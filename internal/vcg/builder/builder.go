// Package builder implements the RuleBuilder: a stateful assembler driven
// by a small set of events emitted by the parser while it recognizes a
// rule body, producing a single ast.Node tree per rule.
package builder

import "github.com/vcglab/vcgc/internal/vcg/ast"

// Unbounded mirrors ast's sentinel for "+∞" so callers translating * and +
// quantifiers do not need to import ast just for the constant.
const Unbounded = -1

// RuleBuilder holds the two stacks and the attachment flag described by
// the rule-body assembly protocol. It has no knowledge of tokens or
// grammar; it only reacts to the event methods below, which makes it
// testable independently of the parser.
type RuleBuilder struct {
	choiceStack []*ast.Node
	chainStack  []*ast.Node

	// addToChoiceAsChild is true immediately after opening a group or
	// after a pipe: the next emitted node attaches as a new alternative
	// of the current choice-stack top rather than extending the current
	// chain via Next.
	addToChoiceAsChild bool

	dummy *ast.Node
}

// New returns a RuleBuilder initialized with a dummy root pushed onto the
// chain stack, so Next-attachment is always well-defined even before the
// first real node is emitted.
func New() *RuleBuilder {
	dummy := &ast.Node{Value: "<dummy>", MinRepeat: 1, MaxRepeat: 1}
	return &RuleBuilder{
		chainStack: []*ast.Node{dummy},
		dummy:      dummy,
	}
}

func (b *RuleBuilder) chainTop() *ast.Node {
	if len(b.chainStack) == 0 {
		return nil
	}
	return b.chainStack[len(b.chainStack)-1]
}

func (b *RuleBuilder) popChain() *ast.Node {
	if len(b.chainStack) == 0 {
		return nil
	}
	top := b.chainStack[len(b.chainStack)-1]
	b.chainStack = b.chainStack[:len(b.chainStack)-1]
	return top
}

func (b *RuleBuilder) pushChain(n *ast.Node) {
	b.chainStack = append(b.chainStack, n)
}

func (b *RuleBuilder) choiceTop() *ast.Node {
	if len(b.choiceStack) == 0 {
		return nil
	}
	return b.choiceStack[len(b.choiceStack)-1]
}

func (b *RuleBuilder) popChoice() *ast.Node {
	if len(b.choiceStack) == 0 {
		return nil
	}
	top := b.choiceStack[len(b.choiceStack)-1]
	b.choiceStack = b.choiceStack[:len(b.choiceStack)-1]
	return top
}

func (b *RuleBuilder) pushChoice(n *ast.Node) {
	b.choiceStack = append(b.choiceStack, n)
}

// attach connects a newly created node per the current flag: as a new
// alternative of the choice-stack top, or as Next of the chain-stack top.
func (b *RuleBuilder) attach(n *ast.Node) {
	if b.addToChoiceAsChild {
		if top := b.choiceTop(); top != nil {
			top.AddChild(n)
		}
	} else if top := b.chainTop(); top != nil {
		top.Next = n
	}
}

// AddWord creates a leaf node for a literal word or quoted-string token.
func (b *RuleBuilder) AddWord(text string) {
	b.addLeaf(text)
}

// AddVariable creates a leaf node for a DollarIdentifier reference.
func (b *RuleBuilder) AddVariable(text string) {
	b.addLeaf(text)
}

func (b *RuleBuilder) addLeaf(text string) {
	n := ast.NewLeaf(text)
	b.attach(n)
	b.popChain()
	b.pushChain(n)
	b.addToChoiceAsChild = false
}

// StartGroup opens a "(" group: creates the group node, attaches it per the
// current flag, pushes it onto the choice stack, and arms the flag so the
// group's first alternative attaches as a child.
func (b *RuleBuilder) StartGroup() {
	n := ast.NewGroup()
	b.attach(n)
	b.pushChoice(n)
	b.addToChoiceAsChild = true
	b.popChain()
}

// StartOptional behaves as StartGroup; EndOptional additionally marks the
// resulting node (0,1).
func (b *RuleBuilder) StartOptional() {
	b.StartGroup()
}

// OnPipe closes the current alternative and arms the flag so the next
// emitted node starts a new alternative of the enclosing group.
func (b *RuleBuilder) OnPipe() {
	b.popChain()
	b.addToChoiceAsChild = true
}

// EndGroup closes the innermost open group: pops any dangling chain top,
// pops the choice stack, and pushes the closed group back onto the chain
// stack so it can carry a quantifier and be extended by a following Next.
func (b *RuleBuilder) EndGroup() {
	if len(b.choiceStack) == 0 {
		return
	}
	b.popChain()
	group := b.popChoice()
	b.pushChain(group)
}

// EndOptional behaves as EndGroup, additionally setting the group's repeat
// range to (0,1).
func (b *RuleBuilder) EndOptional() {
	b.EndGroup()
	if top := b.chainTop(); top != nil {
		top.SetRange(0, 1)
	}
}

// SetRange applies a repeat range to the chain-stack top, i.e. the most
// recently emitted node.
func (b *RuleBuilder) SetRange(min, max int) {
	if top := b.chainTop(); top != nil {
		top.SetRange(min, max)
	}
}

// Finish returns the first real node in the chain (the dummy root's Next).
// It does not change the builder, so calling it more than once returns the
// same tree.
func (b *RuleBuilder) Finish() *ast.Node {
	return b.dummy.Next
}
