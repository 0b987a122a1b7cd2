package plugins

// Sign is the bracket pair wrapping the field list of a generated toString
type Sign int

const (
	SignParen Sign = iota
	SignBracket
	SignBrace
	SignThanSign
)

var signs = []struct {
	sign        Sign
	symbol      string
	open, close string
}{
	{SignParen, "PAREN", "(", ")"},
	{SignBracket, "BRACKET", "[", "]"},
	{SignBrace, "BRACE", "{", "}"},
	{SignThanSign, "THAN_SIGN", "<", ">"},
}

// DefaultSign is used when neither sign property resolves
const DefaultSign = SignParen

// SignFromSymbol resolves a symbolic name such as BRACKET. Matching is exact.
func SignFromSymbol(symbol string) (Sign, bool) {
	for _, s := range signs {
		if s.symbol == symbol {
			return s.sign, true
		}
	}
	return DefaultSign, false
}

// SignFromLiteral resolves an opening character such as [
func SignFromLiteral(open string) (Sign, bool) {
	for _, s := range signs {
		if s.open == open {
			return s.sign, true
		}
	}
	return DefaultSign, false
}

// SignSymbols lists the symbolic names in declaration order
func SignSymbols() []string {
	out := make([]string, len(signs))
	for i, s := range signs {
		out[i] = s.symbol
	}
	return out
}

// SignLiterals lists the opening characters in declaration order
func SignLiterals() []string {
	out := make([]string, len(signs))
	for i, s := range signs {
		out[i] = s.open
	}
	return out
}

// Open returns the opening character
func (s Sign) Open() string {
	return signs[s.index()].open
}

// Close returns the closing character
func (s Sign) Close() string {
	return signs[s.index()].close
}

// String returns the symbolic name
func (s Sign) String() string {
	return signs[s.index()].symbol
}

func (s Sign) index() int {
	if s < SignParen || int(s) >= len(signs) {
		return int(DefaultSign)
	}
	return int(s)
}
