package parser

import "github.com/ledgerspan/ledgerspan/ast"

func (p *Parser) atEOF() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].Type == EOF
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[i]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(t TokenType) bool {
	return p.peek().Type == t
}

// expect consumes the next token if it matches t, else returns a Diagnostic
// describing what was expected. A STRING that the lexer left unterminated
// reports as a KindLex error naming the actual problem rather than the
// generic "expected STRING, got UNTERMINATED_STRING" a syntax error would
// give.
func (p *Parser) expect(t TokenType) (Token, error) {
	tok := p.peek()
	if tok.Type != t {
		if t == STRING && tok.Type == UNTERMINATED_STRING {
			return tok, p.errorf(tok, KindLex, "unterminated string literal")
		}
		return tok, p.errorf(tok, KindSyntax, "expected %s, got %s", t, tok.Type)
	}
	return p.advance(), nil
}

func (p *Parser) text(tok Token) string {
	return tok.Text(p.content)
}

func (p *Parser) errorf(tok Token, kind DiagnosticKind, format string, args ...any) *Diagnostic {
	span := ast.Span{Start: tok.Start, End: tok.End}
	return newDiagnostic(kind, p.filename, p.content, span, format, args...)
}

// intern returns the canonical, deduplicated copy of s.
func (p *Parser) intern(s string) string {
	return p.interner.intern(s)
}

// skipLine advances past every remaining token on the current physical
// line, used by parseHeadline to resynchronize after consuming the line's
// text directly from source rather than token-by-token.
func (p *Parser) skipLine(line int) {
	for !p.atEOF() && p.peek().Line == line {
		p.advance()
	}
}

// indentStart walks offset back over the run of spaces/tabs immediately
// preceding it, returning the start of that run. The lexer discards
// leading whitespace without emitting a token for it (lexer.go's
// whitespace-skipping loop), so a posting's first token never points past
// its indentation; callers that need the indentation back (Posting's span,
// for byte fidelity per spec invariant 5) use this to walk back to it.
func (p *Parser) indentStart(offset int) int {
	for offset > 0 && (p.content[offset-1] == ' ' || p.content[offset-1] == '\t') {
		offset--
	}
	return offset
}
