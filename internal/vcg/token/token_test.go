package token

import "testing"

func TestTokenEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Token
		want bool
	}{
		{"identical", New(KindWord, "hello", 1, 3), New(KindWord, "hello", 1, 3), true},
		{"different text", New(KindWord, "hello", 1, 3), New(KindWord, "world", 1, 3), false},
		{"different kind", New(KindWord, "hello", 1, 3), New(KindQuotedString, "hello", 1, 3), false},
		{"different line", New(KindWord, "hello", 1, 3), New(KindWord, "hello", 2, 3), false},
		{"different column", New(KindWord, "hello", 1, 3), New(KindWord, "hello", 1, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			// Equality must be symmetric.
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenEqualReflexiveAndTransitive(t *testing.T) {
	a := New(KindNumber, "12", 4, 1)
	if !a.Equal(a) {
		t.Fatalf("Equal() is not reflexive")
	}
	b := a.Clone()
	c := b.Clone()
	if !a.Equal(b) || !b.Equal(c) || !a.Equal(c) {
		t.Fatalf("Equal() is not transitive across clones")
	}
}

func TestTokenClone(t *testing.T) {
	original := New(KindDollarIdentifier, "rule.name", 7, 2)
	clone := original.Clone()

	if !original.Equal(clone) {
		t.Fatalf("clone is not structurally equal to original")
	}

	// Independence: mutating the clone must not affect the original.
	clone.Text = "other"
	if original.Text == clone.Text {
		t.Fatalf("clone shares storage with original")
	}
}

func TestKindStringNeverEmpty(t *testing.T) {
	kinds := []Kind{
		KindNumber, KindWord, KindDollarIdentifier, KindAtIdentifier, KindQuotedString,
		KindParenStart, KindParenEnd, KindBracketStart, KindBracketEnd,
		KindCurlyStart, KindCurlyEnd, KindAngleStart, KindAngleEnd,
		KindEquals, KindSemicolon, KindPipe, KindPeriod, KindStar, KindPlus, KindComma,
	}
	for _, k := range kinds {
		if k.String() == "" {
			t.Errorf("Kind(%d).String() is empty", k)
		}
		if k.String() == "none" {
			t.Errorf("Kind(%d).String() rendered as sentinel none", k)
		}
	}
	if KindNone.String() != "none" {
		t.Errorf("KindNone.String() = %q, want %q", KindNone.String(), "none")
	}
}
