package parser

import (
	"testing"

	"github.com/vcglab/vcgc/internal/vcg/ast"
)

func compile(t *testing.T, source string) *ast.Module {
	t.Helper()
	p := New(Options{PackagePath: "test", FileName: "test.vcg"})
	module, err := p.Compile(source)
	if err != nil {
		t.Fatalf("Compile(%q) returned error: %v", source, err)
	}
	return module
}

func TestCompileImportsStaticAndAliased(t *testing.T) {
	module := compile(t, `
		import static package;
		import package.inner as yes;
	`)

	imp, ok := module.Imports["package"]
	if !ok {
		t.Fatalf("missing import %q", "package")
	}
	if imp.Alias != "" || !imp.IsStatic {
		t.Errorf("imports[package] = %+v, want alias=\"\" static=true", imp)
	}

	imp2, ok := module.Imports["package.inner"]
	if !ok {
		t.Fatalf("missing import %q", "package.inner")
	}
	if imp2.Alias != "yes" || imp2.IsStatic {
		t.Errorf("imports[package.inner] = %+v, want alias=yes static=false", imp2)
	}
}

func TestCompileSimpleRule(t *testing.T) {
	module := compile(t, `$test = hello [my friendly] computer 12;`)

	root, ok := module.Rules["test"]
	if !ok {
		t.Fatalf("missing rule %q", "test")
	}
	want := `hello [my friendly] computer 12`
	if got := root.String(); got != want {
		t.Errorf("rule tree = %q, want %q", got, want)
	}
}

func TestCompileRuleWithCallbackAndChoice(t *testing.T) {
	module := compile(t, `$some_thing @func = yes [(and | or) "no"];`)

	if module.CallbackNames["some_thing"] != "func" {
		t.Errorf("CallbackNames[some_thing] = %q, want %q", module.CallbackNames["some_thing"], "func")
	}
	root, ok := module.Rules["some_thing"]
	if !ok {
		t.Fatalf("missing rule %q", "some_thing")
	}
	want := `yes [(and | or) no]`
	if got := root.String(); got != want {
		t.Errorf("rule tree = %q, want %q", got, want)
	}
}

func TestCompileRuleRoundTripFromSpec(t *testing.T) {
	source := `$r = a* (b{3} c+ | (d | e{2,9}) [f]) ((g)) h{3,};`
	module := compile(t, source)

	root, ok := module.Rules["r"]
	if !ok {
		t.Fatalf("missing rule %q", "r")
	}
	want := `a* (b{3} c+ | (d | e{2,9}) [f]) ((g)) h{3,}`
	if got := root.String(); got != want {
		t.Errorf("rule tree =\n  %q\nwant\n  %q", got, want)
	}
}

func TestCompileErrorMaxLessThanMin(t *testing.T) {
	p := New(Options{})
	_, err := p.Compile(`$r = a{3,1};`)
	if err == nil {
		t.Fatalf("Compile() succeeded, want CompileError for max < min")
	}
}

func TestCompileErrorDuplicatePackage(t *testing.T) {
	p := New(Options{})
	_, err := p.Compile(`import a; import a;`)
	if err == nil {
		t.Fatalf("Compile() succeeded, want CompileError for duplicate package")
	}
}

func TestCompileErrorStaticAndAliased(t *testing.T) {
	p := New(Options{})
	_, err := p.Compile(`import static a as x;`)
	if err == nil {
		t.Fatalf("Compile() succeeded, want CompileError for static+alias")
	}
}

func TestCompileErrorMalformedRule(t *testing.T) {
	p := New(Options{})
	_, err := p.Compile(`$r hello;`)
	if err == nil {
		t.Fatalf("Compile() succeeded, want CompileError for missing '='")
	}
}

func TestCompileSkipsUnrecognizedTopLevelStatements(t *testing.T) {
	module := compile(t, `something unrelated;
		$r = word;`)
	if _, ok := module.Rules["r"]; !ok {
		t.Fatalf("rule %q was not compiled after skipping the unrelated statement", "r")
	}
}

func TestCompilePropagatesLexError(t *testing.T) {
	p := New(Options{})
	_, err := p.Compile(`$r = 4a5;`)
	if err == nil {
		t.Fatalf("Compile() succeeded, want LexError from malformed number")
	}
}
