package colorspec

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// colorLexer splits a color string into hex literals, names, integers and
// punctuation.
var colorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Hex", Pattern: `#[0-9A-Za-z]+`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// colorExpr is one of
//
//	#rgb | #rgba | #rrggbb | #rrggbbaa
//	name
//	name(int, int, ...)
type colorExpr struct {
	Hex  string `  @Hex`
	Name string `| @Ident`
	Call bool   `  ( @"("`
	Args []int  `    ( @Int ( "," @Int )* )? ")" )?`
}

var colorParser = participle.MustBuild[colorExpr](
	participle.Lexer(colorLexer),
	participle.Elide("Whitespace"),
)
