// Package typeparser parses Java type reference text such as
// "java.util.Map<java.lang.String, java.util.List<? extends com.example.User>>"
// into models.TypeReference values.
package typeparser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yoshisuproject/mbgplug/internal/models"
)

// DefaultCacheSize bounds the shared parser's memo of parsed references
const DefaultCacheSize = 512

// typeExpr is the root of a type reference
type typeExpr struct {
	Wildcard *wildcardExpr `parser:"  @@"`
	Named    *namedExpr    `parser:"| @@"`
}

// wildcardExpr represents ?, ? extends T or ? super T
type wildcardExpr struct {
	Question string    `parser:"@'?'"`
	Bound    string    `parser:"( @( 'extends' | 'super' )"`
	Type     *typeExpr `parser:"  @@ )?"`
}

// namedExpr represents a dotted name with optional type arguments and array dimensions
type namedExpr struct {
	Parts []string    `parser:"@Ident ( '.' @Ident )*"`
	Args  []*typeExpr `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Dims  []string    `parser:"( @'[' ']' )*"`
}

// Parser converts type text into TypeReference values and memoises the results
type Parser struct {
	parser *participle.Parser[typeExpr]
	cache  *lru.Cache[string, models.TypeReference]
}

// NewParser creates a parser whose memo holds at most cacheSize entries
func NewParser(cacheSize int) (*Parser, error) {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
		{Name: "Punct", Pattern: `[.<>,?\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	p, err := participle.Build[typeExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build type grammar: %w", err)
	}

	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, models.TypeReference](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create type cache: %w", err)
	}

	return &Parser{parser: p, cache: cache}, nil
}

// Parse converts text into a TypeReference
func (p *Parser) Parse(text string) (models.TypeReference, error) {
	key := strings.TrimSpace(text)
	if key == "" {
		return models.TypeReference{}, fmt.Errorf("empty type reference")
	}
	if cached, ok := p.cache.Get(key); ok {
		return cached, nil
	}

	expr, err := p.parser.ParseString("", key)
	if err != nil {
		return models.TypeReference{}, fmt.Errorf("invalid type reference %q: %w", key, err)
	}

	ref, err := convert(expr)
	if err != nil {
		return models.TypeReference{}, fmt.Errorf("invalid type reference %q: %w", key, err)
	}

	p.cache.Add(key, ref)
	return ref, nil
}

// CacheLen returns the number of memoised references
func (p *Parser) CacheLen() int {
	return p.cache.Len()
}

func convert(expr *typeExpr) (models.TypeReference, error) {
	switch {
	case expr.Wildcard != nil:
		return convertWildcard(expr.Wildcard)
	case expr.Named != nil:
		return convertNamed(expr.Named)
	default:
		return models.TypeReference{}, fmt.Errorf("empty type expression")
	}
}

func convertWildcard(w *wildcardExpr) (models.TypeReference, error) {
	if w.Type == nil {
		return models.Wildcard(models.WildcardUnbounded, nil), nil
	}
	bound, err := convert(w.Type)
	if err != nil {
		return models.TypeReference{}, err
	}
	if bound.IsWildcard() {
		return models.TypeReference{}, fmt.Errorf("wildcard bound must be a named type")
	}
	if w.Bound == "super" {
		return models.Wildcard(models.WildcardSuper, &bound), nil
	}
	return models.Wildcard(models.WildcardExtends, &bound), nil
}

func convertNamed(n *namedExpr) (models.TypeReference, error) {
	last := len(n.Parts) - 1
	pkg := strings.Join(n.Parts[:last], ".")
	base := n.Parts[last]

	if models.IsPrimitiveName(base) && (pkg != "" || len(n.Args) > 0) {
		return models.TypeReference{}, fmt.Errorf("primitive %s cannot be qualified or parameterised", base)
	}

	args := make([]models.TypeReference, 0, len(n.Args))
	for _, a := range n.Args {
		arg, err := convert(a)
		if err != nil {
			return models.TypeReference{}, err
		}
		if arg.IsPrimitive() {
			return models.TypeReference{}, fmt.Errorf("primitive %s cannot be a type argument", arg.BaseShortName())
		}
		args = append(args, arg)
	}

	return models.NewQualifiedType(pkg, base, args, 0).ArrayOf(len(n.Dims)), nil
}

var shared = mustShared()

func mustShared() *Parser {
	p, err := NewParser(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse converts text into a TypeReference using the shared parser
func Parse(text string) (models.TypeReference, error) {
	return shared.Parse(text)
}

// MustParse is like Parse but panics on malformed input
func MustParse(text string) models.TypeReference {
	ref, err := shared.Parse(text)
	if err != nil {
		panic(err)
	}
	return ref
}
