package dsl

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// 自定义棋盘定义文件（.goban）的语法示例：
//
//	board Custom15 {
//	  lines: 15 15
//	  spacing: 22mm 23.7mm
//	  margin: 15mm
//	  corners: 10mm
//	  linewidth: 0.15mm
//	  strokes: 2 0.25mm
//	  star-diameter: 4mm
//	  stars: (3,3) (11,3) (7,7) (3,11) (11,11)
//	  colors: { cut: #000000 mark: #ff0000 background: #ffffff }
//	}
var (
	gobanLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[(),:;{}]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(gobanLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// File is the root AST node for a .goban definition file.
type File struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Boards []*BoardDef    `parser:"Newline* ( @@ Newline* )*"`
}

// Find returns the board definition with the given name, or nil.
func (f *File) Find(name string) *BoardDef {
	if f == nil {
		return nil
	}
	for _, b := range f.Boards {
		if b != nil && b.Name == name {
			return b
		}
	}
	return nil
}

// BoardDef describes one named board.
type BoardDef struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"'board' @Ident"`
	Entries []*Entry       `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Entry is a single key: value... assignment inside a block.
type Entry struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Key    string         `parser:"@Ident ':'"`
	Values []*Value       `parser:"Newline* @@+"`
}

// Value represents one property value: a number (optionally with a unit
// suffix), a hex color, a grid-coordinate pair or a nested block.
type Value struct {
	Number *string `parser:"  @Number"`
	Color  *string `parser:"| @Color"`
	Pair   *Pair   `parser:"| @@"`
	Object *Object `parser:"| @@"`
}

// Pair captures `(x,y)` grid coordinates.
type Pair struct {
	X int `parser:"'(' @Number"`
	Y int `parser:"',' @Number ')'"`
}

// Object captures `{ key: value ... }` nested assignments.
type Object struct {
	Entries []*Entry `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Parse parses a .goban definition from an io.Reader.
func Parse(r io.Reader) (*File, error) {
	return fileParser.Parse("", r)
}

// ParseString parses a .goban definition from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}
