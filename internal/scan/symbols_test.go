package scan

import (
	"reflect"
	"testing"
)

func TestSymbolExtractor_Fixture(t *testing.T) {
	text := "class Widget:\n" +
		"def build_widget():\n" +
		"CONST_VALUE = 1\n" +
		"  nested_var = 2\n"

	got := collect(NewSymbolExtractor().Tokens(text))
	want := []string{"widget", "build_widget", "const_value"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("symbols = %v, want %v", got, want)
	}
}

func TestSymbolExtractor_TypeDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"python class", "class Widget:", []string{"widget"}},
		{"exported ts class", "export abstract class BaseModel {", []string{"basemodel"}},
		{"visibility", "public interface Renderer {", []string{"renderer"}},
		{"go struct keyword", "struct Point {", []string{"point"}},
		{"rust trait", "trait Display {", []string{"display"}},
		{"indented class still counts", "    class Inner:", []string{"inner"}},
		{"classic is not a keyword", "classic Foo", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewSymbolExtractor().Tokens(tt.line + "\n"))
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("symbols(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestSymbolExtractor_FunctionDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"python def", "def build():", []string{"build"}},
		{"go func", "func ServeHTTP(w, r) {", []string{"servehttp"}},
		{"rust fn", "fn main() {", []string{"main"}},
		{"js function", "function render() {", []string{"render"}},
		{"async export", "export async function fetchData() {", []string{"fetchdata"}},
		{"static method", "static func helper() {", []string{"helper"}},
		{"single char name dropped", "def f():", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewSymbolExtractor().Tokens(tt.line + "\n"))
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("symbols(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestSymbolExtractor_Variables(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"top-level constant", "MAX_SIZE = 10\n", []string{"max_size"}},
		{"indented assignment excluded", "  inner = 1\n", nil},
		{"tab indentation excluded", "\tinner = 1\n", nil},
		{"no assignment", "value\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewSymbolExtractor().Tokens(tt.text))
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("symbols(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSymbolExtractor_SkipsComments(t *testing.T) {
	text := "# class Hidden:\n" +
		"// func hidden() {\n" +
		"/* struct Hidden {\n" +
		"* def hidden():\n" +
		"-- CONST = 1\n" +
		"class Visible:\n"

	got := collect(NewSymbolExtractor().Tokens(text))
	want := []string{"visible"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("symbols = %v, want %v", got, want)
	}
}

func TestSymbolExtractor_Precedence(t *testing.T) {
	// A line that looks like both a type and an assignment is a type:
	// rule evaluation stops at the first match.
	got := collect(NewSymbolExtractor().Tokens("class Widget = makeClass()\n"))
	want := []string{"widget"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("symbols = %v, want %v", got, want)
	}
}

func TestSymbolExtractor_BlankLines(t *testing.T) {
	got := collect(NewSymbolExtractor().Tokens("\n\n   \n\t\n"))
	if len(got) != 0 {
		t.Errorf("blank lines yielded %v", got)
	}
}
