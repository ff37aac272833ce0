package ast

import "testing"

func TestNodeStringLeafDefaultRange(t *testing.T) {
	n := NewLeaf("hello")
	if got, want := n.String(), "hello"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeStringQuantifiers(t *testing.T) {
	tests := []struct {
		name string
		min  int
		max  int
		want string
	}{
		{"default", 1, 1, "x"},
		{"star", 0, unbounded, "x*"},
		{"plus", 1, unbounded, "x+"},
		{"exact", 3, 3, "x{3}"},
		{"at-least", 3, unbounded, "x{3,}"},
		{"range", 2, 9, "x{2,9}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewLeaf("x")
			n.SetRange(tt.min, tt.max)
			if got := n.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeStringGroupAndOptional(t *testing.T) {
	group := NewGroup()
	group.AddChild(NewLeaf("d"))
	e := NewLeaf("e")
	e.SetRange(2, 9)
	group.AddChild(e)

	if got, want := group.String(), "(d | e{2,9})"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	optional := NewGroup()
	optional.AddChild(NewLeaf("f"))
	optional.SetRange(0, 1)
	if got, want := optional.String(), "[f]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeStringNestedGroup(t *testing.T) {
	inner := NewGroup()
	inner.AddChild(NewLeaf("g"))
	outer := NewGroup()
	outer.AddChild(inner)

	if got, want := outer.String(), "((g))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeStringSequenceViaNext(t *testing.T) {
	a := NewLeaf("a")
	a.SetRange(0, unbounded)

	inner1 := NewGroup()
	b := NewLeaf("b")
	b.SetRange(3, 3)
	c := NewLeaf("c")
	c.SetRange(1, unbounded)
	b.Next = c
	inner1.AddChild(b)

	inner2 := NewGroup()
	d := NewLeaf("d")
	e := NewLeaf("e")
	e.SetRange(2, 9)
	inner2.AddChild(d)
	inner2.AddChild(e)

	optF := NewGroup()
	optF.AddChild(NewLeaf("f"))
	optF.SetRange(0, 1)
	inner2.Next = optF

	choice := NewGroup()
	choice.AddChild(inner1)
	choice.AddChild(inner2)

	innerG := NewGroup()
	innerG.AddChild(NewLeaf("g"))
	outerG := NewGroup()
	outerG.AddChild(innerG)

	h := NewLeaf("h")
	h.SetRange(3, unbounded)

	a.Next = choice
	choice.Next = outerG
	outerG.Next = h

	want := "a* (b{3} c+ | (d | e{2,9}) [f]) ((g)) h{3,}"
	if got := a.String(); got != want {
		t.Errorf("String() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestModuleAddRulePreservesOrder(t *testing.T) {
	m := NewModule("my.package", "grammar.vcg")
	m.AddRule("second", NewLeaf("y"), "")
	m.AddRule("first", NewLeaf("x"), "onFirst")

	if len(m.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(m.Rules))
	}
	if m.CallbackNames["first"] != "onFirst" {
		t.Errorf("CallbackNames[first] = %q, want %q", m.CallbackNames["first"], "onFirst")
	}
	if _, ok := m.CallbackNames["second"]; ok {
		t.Errorf("CallbackNames[second] should be absent when no callback was captured")
	}
}

func TestModuleStringIncludesImportsAndRules(t *testing.T) {
	m := NewModule("my.package", "grammar.vcg")
	m.Imports["other.pkg"] = Import{Alias: "o", IsStatic: false}
	m.AddRule("greeting", NewLeaf("hi"), "")

	out := m.String()
	if out == "" {
		t.Fatalf("String() returned empty output")
	}
}
