/*
File    : go-kinp/lexer/lexer.go
Author  : Marco Egea
Contact : markoegea(@github.com)
*/
package lexer

// Lexer performs lexical analysis (tokenization) of Kinp source code.
// It scans through the source text rune by rune, identifying and creating
// tokens that represent the syntactic elements of the language.
//
// The lexer works on runes rather than bytes because Kinp identifiers may
// contain accented vowels and ñ (e.g. `año`, `señal`), which are multi-byte
// sequences in UTF-8.
//
// It handles:
//   - Operators (arithmetic, comparison, assignment, negation)
//   - Keywords (variable, regresa, si, si_no, procedimiento, metodo, ...)
//   - Literals (integers, floats, strings, booleans)
//   - Identifiers (variable and function names)
//   - Structural symbols (parentheses, braces)
//   - Block comments (/* ... */), skipped as whitespace
type Lexer struct {
	Src      []rune // Entire source code, decoded to runes
	Current  rune   // Current rune being examined (0 at end of input)
	Position int    // Index of Current in Src
	ReadPos  int    // Index of the next rune to read
}

// NewLexer creates and initializes a new Lexer for the given source code.
// The first rune is pre-loaded so that NextToken can be called immediately.
func NewLexer(src string) *Lexer {
	lex := &Lexer{Src: []rune(src)}
	lex.Advance()
	return lex
}

// NextToken retrieves the next token from the source code stream.
// It skips whitespace and comments, then identifies and returns the next
// meaningful token. Once the end of input is reached it yields EOF_TYPE
// tokens indefinitely.
func (lex *Lexer) NextToken() Token {

	var token Token
	lex.skipWhitespaceAndComments()

	switch lex.Current {
	case '=':
		// Could be '=' (assignment) or '==' (equality)
		if lex.Peek() == '=' {
			token = lex.makeTwoCharacterToken(EQ_OP)
		} else {
			token = NewToken(ASSIGN_OP, string(lex.Current))
		}
	case '!':
		// Could be '!' (negation) or '!=' (not equal)
		if lex.Peek() == '=' {
			token = lex.makeTwoCharacterToken(NE_OP)
		} else {
			token = NewToken(NOT_OP, string(lex.Current))
		}
	case '<':
		// Could be '<' or '<='
		if lex.Peek() == '=' {
			token = lex.makeTwoCharacterToken(LE_OP)
		} else {
			token = NewToken(LT_OP, string(lex.Current))
		}
	case '>':
		// Could be '>' or '>='
		if lex.Peek() == '=' {
			token = lex.makeTwoCharacterToken(GE_OP)
		} else {
			token = NewToken(GT_OP, string(lex.Current))
		}
	case '*':
		// Could be '*' or '**'
		if lex.Peek() == '*' {
			token = lex.makeTwoCharacterToken(RAISE_OP)
		} else {
			token = NewToken(MUL_OP, string(lex.Current))
		}
	case '+':
		token = NewToken(PLUS_OP, string(lex.Current))
	case '-':
		token = NewToken(LESS_OP, string(lex.Current))
	case '/':
		token = NewToken(DIV_OP, string(lex.Current))
	case '%':
		token = NewToken(MOD_OP, string(lex.Current))
	case '(':
		token = NewToken(LEFT_PAREN, string(lex.Current))
	case ')':
		token = NewToken(RIGHT_PAREN, string(lex.Current))
	case '{':
		token = NewToken(LEFT_BRACE, string(lex.Current))
	case '}':
		token = NewToken(RIGHT_BRACE, string(lex.Current))
	case ',':
		token = NewToken(COMMA_DELIM, string(lex.Current))
	case ';':
		token = NewToken(SEMICOLON_DELIM, string(lex.Current))
	case '"':
		return lex.readString()
	case 0:
		token = NewToken(EOF_TYPE, "")
	default:
		if isLetter(lex.Current) {
			// Identifier or keyword; readIdentifier leaves Current on the
			// first rune after the word, so return without advancing again.
			literal := lex.readIdentifier()
			return NewToken(LookupIdent(literal), literal)
		}
		if isDigit(lex.Current) {
			return lex.readNumber()
		}
		token = NewToken(ILLEGAL_TYPE, string(lex.Current))
	}

	lex.Advance()
	return token
}

// Advance moves the read cursor one rune forward.
// At the end of input Current becomes the zero rune, which NextToken maps
// to the EOF token.
func (lex *Lexer) Advance() {
	if lex.ReadPos >= len(lex.Src) {
		lex.Current = 0
	} else {
		lex.Current = lex.Src[lex.ReadPos]
	}
	lex.Position = lex.ReadPos
	lex.ReadPos++
}

// Peek returns the rune after Current without moving the cursor.
// It is used to recognize the two-character operators == != <= >= **.
func (lex *Lexer) Peek() rune {
	if lex.ReadPos >= len(lex.Src) {
		return 0
	}
	return lex.Src[lex.ReadPos]
}

// makeTwoCharacterToken consumes Current and its successor, producing a
// single token whose literal is the two runes joined.
func (lex *Lexer) makeTwoCharacterToken(tokenType TokenType) Token {
	prefix := lex.Current
	lex.Advance()
	suffix := lex.Current
	return NewToken(tokenType, string(prefix)+string(suffix))
}

// readIdentifier consumes a full identifier and returns its literal.
// The first rune must already be a letter; subsequent runes may also be
// digits.
func (lex *Lexer) readIdentifier() string {
	initialPosition := lex.Position
	for isLetter(lex.Current) || isDigit(lex.Current) {
		lex.Advance()
	}
	return string(lex.Src[initialPosition:lex.Position])
}

// readNumber consumes a run of digits and returns an integer token.
// If the run is immediately followed by '.' and at least one digit, the
// fractional part is consumed as well and a float token is returned; an
// isolated trailing '.' is left for the next NextToken call.
func (lex *Lexer) readNumber() Token {
	initialPosition := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}

	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance() // consume the '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
		return NewToken(FLOAT_LIT, string(lex.Src[initialPosition:lex.Position]))
	}

	return NewToken(INT_LIT, string(lex.Src[initialPosition:lex.Position]))
}

// readString consumes a double-quoted string literal and returns a string
// token whose literal is the contents with the quotes stripped. An
// unterminated string runs to the end of input.
func (lex *Lexer) readString() Token {
	lex.Advance() // consume the opening quote
	initialPosition := lex.Position
	for lex.Current != '"' && lex.Current != 0 {
		lex.Advance()
	}
	literal := string(lex.Src[initialPosition:lex.Position])
	if lex.Current == '"' {
		lex.Advance() // consume the closing quote
	}
	return NewToken(STRING_LIT, literal)
}

// skipWhitespaceAndComments advances past ASCII whitespace and /* ... */
// comment blocks. Comments do not nest: the first */ closes the block.
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		if isWhitespace(lex.Current) {
			lex.Advance()
			continue
		}
		if lex.Current == '/' && lex.Peek() == '*' {
			lex.Advance() // consume '/'
			lex.Advance() // consume '*'
			for lex.Current != 0 && !(lex.Current == '*' && lex.Peek() == '/') {
				lex.Advance()
			}
			if lex.Current != 0 {
				lex.Advance() // consume '*'
				lex.Advance() // consume '/'
			}
			continue
		}
		return
	}
}

// isLetter reports whether the rune can start or continue an identifier.
// Besides ASCII letters and underscore, the accented vowels and ñ used in
// Spanish identifiers are legal.
func isLetter(character rune) bool {
	if (character >= 'a' && character <= 'z') || (character >= 'A' && character <= 'Z') || character == '_' {
		return true
	}
	switch character {
	case 'á', 'é', 'í', 'ó', 'ú', 'Á', 'É', 'Í', 'Ó', 'Ú', 'ñ', 'Ñ':
		return true
	}
	return false
}

// isDigit reports whether the rune is an ASCII decimal digit.
func isDigit(character rune) bool {
	return character >= '0' && character <= '9'
}

// isWhitespace reports whether the rune is ASCII whitespace.
func isWhitespace(character rune) bool {
	return character == ' ' || character == '\t' || character == '\n' || character == '\r'
}
