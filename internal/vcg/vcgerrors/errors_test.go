package vcgerrors

import (
	"testing"

	mdwerror "github.com/vcglab/vcgc/foundation/core/error"
)

func TestLexErrorMessageCarriesPosition(t *testing.T) {
	err := NewLexError(3, 7, "Unexpected character")
	want := "lex error at line 3, column 7: Unexpected character"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Line != 3 || err.Column != 7 {
		t.Errorf("Line/Column = %d/%d, want 3/7", err.Line, err.Column)
	}
}

func TestCompileErrorMessageEmbedsLine(t *testing.T) {
	err := NewCompileError(5, "Malformed input statement on line 5")
	if err.Error() != "Malformed input statement on line 5" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Line != 5 {
		t.Errorf("Line = %d, want 5", err.Line)
	}
}

func TestCodeMapsToVCGCodes(t *testing.T) {
	lex := NewLexError(1, 0, "bad")
	if got := Code(lex); got != mdwerror.CodeVCGLex {
		t.Errorf("Code(lex) = %v, want %v", got, mdwerror.CodeVCGLex)
	}
	compile := NewCompileError(1, "bad")
	if got := Code(compile); got != mdwerror.CodeVCGCompile {
		t.Errorf("Code(compile) = %v, want %v", got, mdwerror.CodeVCGCompile)
	}
}

func TestUnwrapExposesStructuredError(t *testing.T) {
	err := NewLexError(2, 4, "bad")
	inner, ok := err.Unwrap().(*mdwerror.Error)
	if !ok {
		t.Fatalf("Unwrap() did not return *mdwerror.Error")
	}
	if mdwerror.GetCode(inner) != mdwerror.CodeVCGLex {
		t.Errorf("GetCode(inner) = %v, want %v", mdwerror.GetCode(inner), mdwerror.CodeVCGLex)
	}
}
