package builder

import "testing"

func TestBuilderSingleWord(t *testing.T) {
	b := New()
	b.AddWord("hello")
	root := b.Finish()
	if root == nil {
		t.Fatalf("Finish() returned nil")
	}
	if got, want := root.String(), "hello"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderSequenceViaNext(t *testing.T) {
	b := New()
	b.AddWord("hello")
	b.AddWord("world")
	root := b.Finish()
	if got, want := root.String(), "hello world"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderGroupWithAlternation(t *testing.T) {
	b := New()
	b.StartGroup()
	b.AddWord("a")
	b.OnPipe()
	b.AddWord("b")
	b.EndGroup()
	root := b.Finish()
	if got, want := root.String(), "(a | b)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderOptional(t *testing.T) {
	b := New()
	b.StartOptional()
	b.AddWord("f")
	b.EndOptional()
	root := b.Finish()
	if got, want := root.String(), "[f]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderQuantifierOnMostRecentNode(t *testing.T) {
	b := New()
	b.AddWord("a")
	b.SetRange(0, Unbounded)
	root := b.Finish()
	if got, want := root.String(), "a*"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderQuantifierAppliesToClosedGroup(t *testing.T) {
	b := New()
	b.StartGroup()
	b.AddWord("a")
	b.OnPipe()
	b.AddWord("b")
	b.EndGroup()
	b.SetRange(1, Unbounded)
	root := b.Finish()
	if got, want := root.String(), "(a | b)+"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderNestedGroups(t *testing.T) {
	b := New()
	b.StartGroup()
	b.StartGroup()
	b.AddWord("g")
	b.EndGroup()
	b.EndGroup()
	root := b.Finish()
	if got, want := root.String(), "((g))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderComplexSpecScenario(t *testing.T) {
	b := New()

	// a*
	b.AddWord("a")
	b.SetRange(0, Unbounded)

	// (b{3} c+ | (d | e{2,9}) [f])
	b.StartGroup()
	b.AddWord("b")
	b.SetRange(3, 3)
	b.AddWord("c")
	b.SetRange(1, Unbounded)
	b.OnPipe()
	b.StartGroup()
	b.AddWord("d")
	b.OnPipe()
	b.AddWord("e")
	b.SetRange(2, 9)
	b.EndGroup()
	b.StartOptional()
	b.AddWord("f")
	b.EndOptional()
	b.EndGroup()

	// ((g))
	b.StartGroup()
	b.StartGroup()
	b.AddWord("g")
	b.EndGroup()
	b.EndGroup()

	// h{3,}
	b.AddWord("h")
	b.SetRange(3, Unbounded)

	root := b.Finish()
	want := "a* (b{3} c+ | (d | e{2,9}) [f]) ((g)) h{3,}"
	if got := root.String(); got != want {
		t.Errorf("String() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestBuilderFinishOnEmptyBuilderReturnsNil(t *testing.T) {
	b := New()
	if root := b.Finish(); root != nil {
		t.Errorf("Finish() on empty builder = %v, want nil", root)
	}
}
