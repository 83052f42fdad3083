package parser

import (
	"strings"
	"time"

	"github.com/ledgerspan/ledgerspan/ast"
)

func parseDateText(s string) ast.Date {
	t, _ := time.Parse("2006-01-02", s)
	return ast.NewDate(t)
}

// parseDated handles every `DATE <keyword> ...` directive by consuming the
// date token then dispatching on what follows.
func (p *Parser) parseDated() (ast.Directive, error) {
	dateTok := p.advance()
	date := parseDateText(p.text(dateTok))
	start := dateTok.Start

	next := p.peek()
	switch next.Type {
	case OPEN:
		return p.parseOpen(date, start)
	case CLOSE:
		return p.parseClose(date, start)
	case BALANCE:
		return p.parseBalance(date, start)
	case PAD:
		return p.parsePad(date, start)
	case COMMODITY:
		return p.parseCommodity(date, start)
	case PRICE:
		return p.parsePrice(date, start)
	case EVENT:
		return p.parseEvent(date, start)
	case QUERY:
		return p.parseQuery(date, start)
	case NOTE:
		return p.parseNote(date, start)
	case DOCUMENT:
		return p.parseDocument(date, start)
	case CUSTOM:
		return p.parseCustom(date, start)
	case TXN, ASTERISK, EXCLAIM, IDENT:
		return p.parseTransaction(date, start)
	default:
		return nil, p.errorf(next, KindSyntax, "unexpected token %s after date", next.Type)
	}
}

func (p *Parser) parseOpen(date ast.Date, start int) (ast.Directive, error) {
	p.advance() // open
	acctTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}

	o := &ast.Open{Date: date, Account: ast.Account(p.intern(p.text(acctTok)))}

	for p.check(IDENT) || p.check(COMMA) {
		if p.check(COMMA) {
			p.advance()
			continue
		}
		o.Currencies = append(o.Currencies, p.intern(p.text(p.advance())))
	}

	if p.check(STRING) {
		tok := p.advance()
		method, err := p.unquote(tok)
		if err != nil {
			return nil, err
		}
		if !ast.ValidBookingMethod(method) {
			return nil, p.errorf(tok, KindSemanticLocal, "unrecognized booking method %q", method)
		}
		o.BookingMeth = ast.BookingMethod(method)
	}

	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	o.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(o, start, end)
	return o, nil
}

func (p *Parser) parseClose(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	acctTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}
	c := &ast.Close{Date: date, Account: ast.Account(p.intern(p.text(acctTok)))}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	c.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(c, start, end)
	return c, nil
}

func (p *Parser) parseBalance(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	acctTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}
	amount, err := p.parseAmount()
	if err != nil {
		return nil, err
	}
	b := &ast.Balance{Date: date, Account: ast.Account(p.intern(p.text(acctTok))), Amount: *amount}
	if p.check(TILDE) {
		p.advance()
		tolerance, err := p.parseNumberExpr(0)
		if err != nil {
			return nil, err
		}
		b.Tolerance = tolerance
	}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	b.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(b, start, end)
	return b, nil
}

func (p *Parser) parsePad(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	acctTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}
	padTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}
	pd := &ast.Pad{Date: date, Account: ast.Account(p.intern(p.text(acctTok))), PadToAccount: ast.Account(p.intern(p.text(padTok)))}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	pd.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(pd, start, end)
	return pd, nil
}

func (p *Parser) parseCommodity(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	curTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	c := &ast.Commodity{Date: date, Currency: p.intern(p.text(curTok))}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	c.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(c, start, end)
	return c, nil
}

func (p *Parser) parsePrice(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	curTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	amount, err := p.parseAmount()
	if err != nil {
		return nil, err
	}
	pr := &ast.Price{Date: date, Currency: p.intern(p.text(curTok)), Amount: *amount}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	pr.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(pr, start, end)
	return pr, nil
}

func (p *Parser) parseEvent(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	typeTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	descTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	eventType, err := p.spannedStr(typeTok)
	if err != nil {
		return nil, err
	}
	description, err := p.spannedStr(descTok)
	if err != nil {
		return nil, err
	}
	e := &ast.Event{
		Date:        date,
		EventType:   eventType,
		Description: description,
	}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	e.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(e, start, end)
	return e, nil
}

func (p *Parser) parseQuery(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	nameTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	queryTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	name, err := p.spannedStr(nameTok)
	if err != nil {
		return nil, err
	}
	queryText, err := p.spannedStr(queryTok)
	if err != nil {
		return nil, err
	}
	q := &ast.Query{
		Date:  date,
		Name:  name,
		Query: queryText,
	}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	q.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(q, start, end)
	return q, nil
}

func (p *Parser) parseNote(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	acctTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}
	descTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	description, err := p.spannedStr(descTok)
	if err != nil {
		return nil, err
	}
	n := &ast.Note{Date: date, Account: ast.Account(p.intern(p.text(acctTok))), Description: description}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	n.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(n, start, end)
	return n, nil
}

func (p *Parser) parseDocument(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	acctTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}
	pathTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	path, err := p.spannedStr(pathTok)
	if err != nil {
		return nil, err
	}
	d := &ast.Document{Date: date, Account: ast.Account(p.intern(p.text(acctTok))), Path: path}
	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	d.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(d, start, end)
	return d, nil
}

// parseCustom handles the open-ended `DATE custom "type" value...` grammar.
// Each value may be a string, a bare account token, a number, a boolean
// (TRUE/FALSE identifiers), a date, or any other bare word, which is kept
// as a currency value.
func (p *Parser) parseCustom(date ast.Date, start int) (ast.Directive, error) {
	p.advance()
	typeTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	typeStr, err := p.spannedStr(typeTok)
	if err != nil {
		return nil, err
	}
	c := &ast.Custom{Date: date, Type: typeStr}

	for {
		tok := p.peek()
		switch tok.Type {
		case STRING:
			p.advance()
			strValue, err := p.unquote(tok)
			if err != nil {
				return nil, err
			}
			cv := ast.CustomValue{Value: ast.KeyValueValue{Kind: ast.KVString, StringValue: strValue}}
			p.span(&cv, tok.Start, tok.End)
			c.Values = append(c.Values, cv)
		case ACCOUNT:
			p.advance()
			cv := ast.CustomValue{Value: ast.KeyValueValue{Kind: ast.KVAccount, AccountVal: ast.Account(p.intern(p.text(tok)))}}
			p.span(&cv, tok.Start, tok.End)
			c.Values = append(c.Values, cv)
		case DATE:
			p.advance()
			cv := ast.CustomValue{Value: ast.KeyValueValue{Kind: ast.KVDate, DateVal: datePtr(parseDateText(p.text(tok)))}}
			p.span(&cv, tok.Start, tok.End)
			c.Values = append(c.Values, cv)
		case NUMBER, MINUS:
			expr, err := p.parseNumberExpr(0)
			if err != nil {
				return nil, err
			}
			cv := ast.CustomValue{Value: ast.KeyValueValue{Kind: ast.KVNumber, Number: expr}}
			cv.Attach(p.file, expr.Span())
			c.Values = append(c.Values, cv)
		case IDENT:
			text := p.text(tok)
			if text == "TRUE" || text == "FALSE" {
				p.advance()
				cv := ast.CustomValue{Value: ast.KeyValueValue{Kind: ast.KVBoolean, Boolean: text == "TRUE"}}
				p.span(&cv, tok.Start, tok.End)
				c.Values = append(c.Values, cv)
				continue
			}
			p.advance()
			cv := ast.CustomValue{Value: ast.KeyValueValue{Kind: ast.KVCurrency, Currency: p.intern(text)}}
			p.span(&cv, tok.Start, tok.End)
			c.Values = append(c.Values, cv)
		default:
			goto doneValues
		}
	}
doneValues:

	end := p.lineEnd(start)
	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	c.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}
	p.span(c, start, end)
	return c, nil
}

func (p *Parser) parseOption() (ast.Directive, error) {
	tok := p.advance()
	nameTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	valTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	name, err := p.spannedStr(nameTok)
	if err != nil {
		return nil, err
	}
	value, err := p.spannedStr(valTok)
	if err != nil {
		return nil, err
	}
	o := &ast.Option{Name: name, Value: value}
	p.span(o, tok.Start, p.lineEnd(tok.Start))
	return o, nil
}

func (p *Parser) parseInclude() (ast.Directive, error) {
	tok := p.advance()
	pathTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	path, err := p.spannedStr(pathTok)
	if err != nil {
		return nil, err
	}
	i := &ast.Include{Path: path}
	p.span(i, tok.Start, p.lineEnd(tok.Start))
	return i, nil
}

func (p *Parser) parsePlugin() (ast.Directive, error) {
	tok := p.advance()
	nameTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	name, err := p.spannedStr(nameTok)
	if err != nil {
		return nil, err
	}
	pl := &ast.Plugin{Name: name}
	if p.check(STRING) {
		cfgTok := p.advance()
		s, err := p.spannedStr(cfgTok)
		if err != nil {
			return nil, err
		}
		pl.Config = &s
	}
	p.span(pl, tok.Start, p.lineEnd(tok.Start))
	return pl, nil
}

func (p *Parser) parsePushTag() (ast.Directive, error) {
	tok := p.advance()
	tagTok, err := p.expect(TAG)
	if err != nil {
		return nil, err
	}
	t := &ast.PushTag{Tag: ast.Tag(p.intern(p.text(tagTok)[1:]))}
	p.span(t, tok.Start, p.lineEnd(tok.Start))
	return t, nil
}

func (p *Parser) parsePopTag() (ast.Directive, error) {
	tok := p.advance()
	tagTok, err := p.expect(TAG)
	if err != nil {
		return nil, err
	}
	t := &ast.PopTag{Tag: ast.Tag(p.intern(p.text(tagTok)[1:]))}
	p.span(t, tok.Start, p.lineEnd(tok.Start))
	return t, nil
}

func (p *Parser) parsePushMeta() (ast.Directive, error) {
	tok := p.advance()
	kv, err := p.parseKeyValue()
	if err != nil {
		return nil, err
	}
	m := &ast.PushMeta{KeyValue: *kv}
	p.span(m, tok.Start, p.lineEnd(tok.Start))
	return m, nil
}

func (p *Parser) parsePopMeta() (ast.Directive, error) {
	tok := p.advance()
	keyTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	m := &ast.PopMeta{Key: p.intern(p.text(keyTok))}
	p.span(m, tok.Start, p.lineEnd(tok.Start))
	return m, nil
}

// parseHeadline consumes a `*`-prefixed section marker line directly from
// source text rather than token-by-token, since headline text is free-form
// prose that the lexer does not tokenize meaningfully.
func (p *Parser) parseHeadline(tok Token) (ast.Directive, error) {
	content := p.content
	i := tok.Start
	level := 0
	for i < len(content) && content[i] == '*' {
		level++
		i++
	}
	lineEnd := strings.IndexByte(content[i:], '\n')
	var end int
	if lineEnd < 0 {
		end = len(content)
	} else {
		end = i + lineEnd + 1
	}
	text := strings.TrimSpace(content[i:min(end, len(content)-boolToInt(lineEnd >= 0))])

	h := &ast.Headline{Level: level, Text: text}
	p.span(h, tok.Start, end)
	p.skipLine(tok.Line)
	return h, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func datePtr(d ast.Date) *ast.Date { return &d }

// unquote strips tok's surrounding quotes and resolves its C-style escapes,
// reporting a KindLex Diagnostic for any escape sequence beancount doesn't
// recognize (e.g. "\q") rather than passing it through unchanged.
func (p *Parser) unquote(tok Token) (string, error) {
	s := p.text(tok)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return p.unescapeCStyle(tok, s)
}

func (p *Parser) unescapeCStyle(tok Token, s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return "", p.errorf(tok, KindLex, "invalid escape sequence \\%c", s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String(), nil
}

// lineEnd returns the byte offset of the end of the physical line
// containing the byte at start (including its trailing newline, if any).
func (p *Parser) lineEnd(start int) int {
	idx := strings.IndexByte(p.content[start:], '\n')
	if idx < 0 {
		return len(p.content)
	}
	return start + idx + 1
}

func (p *Parser) spannedStr(tok Token) (ast.SpannedStr, error) {
	value, err := p.unquote(tok)
	if err != nil {
		return ast.SpannedStr{}, err
	}
	s := ast.SpannedStr{Value: value}
	p.span(&s, tok.Start, tok.End)
	return s, nil
}

func (p *Parser) parseAmount() (*ast.Amount, error) {
	expr, err := p.parseNumberExpr(0)
	if err != nil {
		return nil, err
	}
	curTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	a := &ast.Amount{Number: expr, Currency: p.intern(p.text(curTok))}
	p.span(a, expr.Span().Start, curTok.End)
	return a, nil
}
