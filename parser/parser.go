// Package parser turns ledger source text into a github.com/ledgerspan/ledgerspan/ast.File
// by recursive descent over a single pass of lexer tokens. The grammar is
// LL(1) once the lexer has disambiguated keywords, dates, accounts, and
// literals, so the parser never backtracks.
package parser

import (
	"context"

	"github.com/ledgerspan/ledgerspan/ast"
	"github.com/ledgerspan/ledgerspan/telemetry"
)

// Parser consumes a token stream produced by the lexer and builds an
// ast.File. Each exported entry point (Parse, ParseContext) constructs one
// and discards it; a Parser is not meant to be reused across files.
type Parser struct {
	filename string
	content  string
	tokens   []Token
	pos      int
	file     *ast.File
	interner *interner
}

// Parse parses content as a ledger source file named filename, returning
// the resulting *ast.File or the first Diagnostic encountered. Multiple
// *ast.File instances may be produced concurrently from separate calls to
// Parse: nothing here is shared mutable state (see errgroup usage in the
// cli package).
func Parse(filename, content string) (*ast.File, error) {
	return ParseContext(context.Background(), filename, content)
}

// ParseContext is Parse instrumented with a telemetry.Collector drawn from
// ctx (a no-op if the context carries none), timing the lex and parse
// phases as separate children so a caller with --telemetry can see where
// time in a large file goes.
func ParseContext(ctx context.Context, filename, content string) (*ast.File, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start("parser.Parse " + filename)
	defer timer.End()

	lexTimer := timer.Child("lex")
	lx := newLexer([]byte(content), filename)
	tokens, err := lx.scanAll()
	lexTimer.End()
	if err != nil {
		return nil, wrapLexError(filename, content, err)
	}

	parseTimer := timer.Child("parse")
	defer parseTimer.End()

	p := &Parser{
		filename: filename,
		content:  content,
		tokens:   tokens,
		file:     &ast.File{Filename: filename, Content: content},
		interner: lx.interner,
	}

	if err := p.parseFile(); err != nil {
		return nil, err
	}
	return p.file, nil
}

func wrapLexError(filename, content string, err error) *Diagnostic {
	if ie, ok := err.(*InvalidUTF8Error); ok {
		return &Diagnostic{
			Kind:     KindLex,
			Filename: filename,
			Pos:      ast.Position{Filename: filename, Line: ie.Line, Column: ie.Column},
			Message:  ie.Error(),
		}
	}
	return newDiagnostic(KindLex, filename, content, ast.Span{}, "%s", err.Error())
}

func (p *Parser) parseFile() error {
	for !p.atEOF() {
		tok := p.peek()
		switch tok.Type {
		case NEWLINE:
			p.advance()
			continue
		case COMMENT:
			p.advance()
			c := &ast.Comment{Text: trimTrailingNewline(tok.Text(p.content))}
			p.span(c, tok.Start, tok.End)
			p.file.Directives = append(p.file.Directives, c)
			continue
		case ASTERISK:
			if tok.Column == 1 {
				d, err := p.parseHeadline(tok)
				if err != nil {
					return err
				}
				p.file.Directives = append(p.file.Directives, d)
				continue
			}
		}

		d, err := p.parseDirective()
		if err != nil {
			return err
		}
		if d != nil {
			p.file.Directives = append(p.file.Directives, d)
		}
	}
	return nil
}

func (p *Parser) parseDirective() (ast.Directive, error) {
	tok := p.peek()
	switch tok.Type {
	case DATE:
		return p.parseDated()
	case OPTION:
		return p.parseOption()
	case INCLUDE:
		return p.parseInclude()
	case PLUGIN:
		return p.parsePlugin()
	case PUSHTAG:
		return p.parsePushTag()
	case POPTAG:
		return p.parsePopTag()
	case PUSHMETA:
		return p.parsePushMeta()
	case POPMETA:
		return p.parsePopMeta()
	default:
		return nil, p.errorf(tok, KindSyntax, "unexpected token %s", tok.Type)
	}
}

// attachable is satisfied by every *ast.<Node> type via the promoted
// base.Attach method; it lets the parser wire a node's span in one line
// regardless of concrete type.
type attachable interface {
	Attach(*ast.File, ast.Span)
}

func (p *Parser) span(n attachable, start, end int) {
	n.Attach(p.file, ast.Span{Start: start, End: end})
}

func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}
