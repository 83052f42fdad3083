package parser

import "github.com/ledgerspan/ledgerspan/ast"

// parseMetaBlock consumes zero or more indented `key: value` lines
// following a directive's header line. It stops at the first token that
// is not an indented `IDENT COLON` pair — in particular at column-1
// tokens (the next top-level directive) and at indented ACCOUNT tokens
// (a transaction's postings, parsed separately by parseTransaction).
func (p *Parser) parseMetaBlock() (ast.Meta, error) {
	var meta ast.Meta
	for {
		for p.check(NEWLINE) {
			p.advance()
		}
		tok := p.peek()
		if tok.Column <= 1 {
			break
		}
		if tok.Type != IDENT || p.peekAt(1).Type != COLON {
			break
		}
		kv, err := p.parseKeyValue()
		if err != nil {
			return meta, err
		}
		meta.Entries = append(meta.Entries, kv)
	}
	return meta, nil
}

// parseKeyValue parses one `key: value` pair where value may be a string,
// account, date, currency, tag, boolean, number, or amount.
func (p *Parser) parseKeyValue() (*ast.KeyValue, error) {
	keyTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}

	valTok := p.peek()
	value, valEnd, err := p.parseKeyValueValue()
	if err != nil {
		return nil, err
	}

	sv := ast.SpannedKeyValueValue{Value: value}
	if valEnd > valTok.Start {
		p.span(&sv, valTok.Start, valEnd)
	}

	kv := &ast.KeyValue{Key: p.intern(p.text(keyTok)), Value: sv}
	p.span(kv, keyTok.Start, valEnd)
	return kv, nil
}

func (p *Parser) parseKeyValueValue() (ast.KeyValueValue, int, error) {
	tok := p.peek()
	switch tok.Type {
	case STRING:
		p.advance()
		value, err := p.unquote(tok)
		if err != nil {
			return ast.KeyValueValue{}, 0, err
		}
		return ast.KeyValueValue{Kind: ast.KVString, StringValue: value}, tok.End, nil
	case ACCOUNT:
		p.advance()
		return ast.KeyValueValue{Kind: ast.KVAccount, AccountVal: ast.Account(p.intern(p.text(tok)))}, tok.End, nil
	case DATE:
		p.advance()
		d := parseDateText(p.text(tok))
		return ast.KeyValueValue{Kind: ast.KVDate, DateVal: &d}, tok.End, nil
	case TAG:
		p.advance()
		return ast.KeyValueValue{Kind: ast.KVTag, TagVal: ast.Tag(p.intern(p.text(tok)[1:]))}, tok.End, nil
	case NUMBER, MINUS:
		expr, err := p.parseNumberExpr(0)
		if err != nil {
			return ast.KeyValueValue{}, 0, err
		}
		if p.check(IDENT) && p.peek().Column > 1 {
			curTok := p.advance()
			amt := &ast.Amount{Number: expr, Currency: p.intern(p.text(curTok))}
			p.span(amt, expr.Span().Start, curTok.End)
			return ast.KeyValueValue{Kind: ast.KVAmount, Amount: amt}, curTok.End, nil
		}
		return ast.KeyValueValue{Kind: ast.KVNumber, Number: expr}, expr.Span().End, nil
	case IDENT:
		text := p.text(tok)
		if text == "TRUE" || text == "FALSE" {
			p.advance()
			return ast.KeyValueValue{Kind: ast.KVBoolean, Boolean: text == "TRUE"}, tok.End, nil
		}
		p.advance()
		return ast.KeyValueValue{Kind: ast.KVCurrency, Currency: p.intern(text)}, tok.End, nil
	default:
		return ast.KeyValueValue{Kind: ast.KVNone}, tok.Start, nil
	}
}
