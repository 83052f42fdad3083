package parser

import "github.com/ledgerspan/ledgerspan/ast"

// parseTransaction handles `DATE FLAG ["PAYEE"] "NARRATION" #tag ^link`
// followed by an optional metadata block and zero or more indented
// Posting lines, themselves optionally followed by their own metadata.
func (p *Parser) parseTransaction(date ast.Date, start int) (ast.Directive, error) {
	flagTok := p.advance()
	flag := flagFromToken(flagTok, p.text(flagTok))

	t := &ast.Transaction{Date: date, Flag: flag}

	if p.check(STRING) {
		first := p.advance()
		if p.check(STRING) {
			payee, err := p.spannedStr(first)
			if err != nil {
				return nil, err
			}
			t.Payee = &payee
			second := p.advance()
			narration, err := p.spannedStr(second)
			if err != nil {
				return nil, err
			}
			t.Narration = narration
		} else {
			narration, err := p.spannedStr(first)
			if err != nil {
				return nil, err
			}
			t.Narration = narration
		}
	}

	seenTags := map[ast.Tag]bool{}
	seenLinks := map[ast.Link]bool{}
	for p.check(TAG) || p.check(LINK) {
		tok := p.advance()
		if tok.Type == TAG {
			tag := ast.Tag(p.intern(p.text(tok)[1:]))
			if seenTags[tag] {
				return nil, p.errorf(tok, KindSemanticLocal, "duplicate tag #%s", tag)
			}
			seenTags[tag] = true
			t.Tags = append(t.Tags, tag)
		} else {
			link := ast.Link(p.intern(p.text(tok)[1:]))
			if seenLinks[link] {
				return nil, p.errorf(tok, KindSemanticLocal, "duplicate link ^%s", link)
			}
			seenLinks[link] = true
			t.Links = append(t.Links, link)
		}
	}

	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	t.Meta = meta

	for p.isPostingStart() {
		posting, err := p.parsePosting()
		if err != nil {
			return nil, err
		}
		t.Postings = append(t.Postings, posting)
	}

	end := start
	switch {
	case len(t.Postings) > 0:
		end = p.lineEnd(t.Postings[len(t.Postings)-1].Span().End)
	case len(meta.Entries) > 0:
		end = p.lineEnd(meta.Entries[len(meta.Entries)-1].Span().End)
	default:
		end = p.lineEnd(start)
	}
	p.span(t, start, end)
	return t, nil
}

func flagFromToken(tok Token, text string) ast.Flag {
	switch tok.Type {
	case ASTERISK:
		return ast.FlagCleared
	case EXCLAIM:
		return ast.FlagPending
	case TXN:
		return ast.FlagNone
	default:
		if len(text) == 1 {
			return ast.Flag(text[0])
		}
		return ast.FlagNone
	}
}

func (p *Parser) isPostingStart() bool {
	tok := p.peek()
	if tok.Column <= 1 {
		return false
	}
	switch tok.Type {
	case ACCOUNT:
		return true
	case ASTERISK, EXCLAIM:
		return p.peekAt(1).Type == ACCOUNT
	default:
		return false
	}
}

func (p *Parser) parsePosting() (*ast.Posting, error) {
	flag := ast.FlagNone
	start := p.indentStart(p.peek().Start)
	if p.check(ASTERISK) || p.check(EXCLAIM) {
		tok := p.advance()
		flag = flagFromToken(tok, p.text(tok))
	}

	acctTok, err := p.expect(ACCOUNT)
	if err != nil {
		return nil, err
	}
	posting := &ast.Posting{Flag: flag, Account: ast.Account(p.intern(p.text(acctTok)))}
	end := acctTok.End

	if p.check(NUMBER) || (p.check(MINUS) && p.peekAt(1).Type == NUMBER) {
		amount, err := p.parseAmount()
		if err != nil {
			return nil, err
		}
		posting.Amount = amount
		end = amount.Span().End
	}

	if p.check(LBRACE) || p.check(LDBRACE) {
		cost, err := p.parseCostSpec()
		if err != nil {
			return nil, err
		}
		posting.Cost = cost
		end = cost.Span().End
	}

	if p.check(AT) || p.check(ATAT) {
		opTok := p.advance()
		kind := ast.PriceUnit
		if opTok.Type == ATAT {
			kind = ast.PriceTotal
		}
		op := &ast.SpannedPriceOperator{Kind: kind}
		p.span(op, opTok.Start, opTok.End)
		posting.PriceOp = op

		price, err := p.parseAmount()
		if err != nil {
			return nil, err
		}
		posting.Price = price
		end = price.Span().End
	}

	meta, err := p.parseMetaBlock()
	if err != nil {
		return nil, err
	}
	posting.Meta = meta
	if len(meta.Entries) > 0 {
		end = meta.Entries[len(meta.Entries)-1].Span().End
	}

	p.span(posting, start, end)
	return posting, nil
}

// parseCostSpec parses the `{...}` (per-unit) or `{{...}}` (total) clause
// following a posting's amount: a comma-separated mix of an amount, an
// acquisition date, a string label, and/or the `*` merge marker, in any
// order, matching Beancount's permissive cost-spec grammar.
func (p *Parser) parseCostSpec() (*ast.CostSpec, error) {
	openTok := p.advance()
	total := openTok.Type == LDBRACE
	closing := RBRACE
	if total {
		closing = RDBRACE
	}

	spec := &ast.CostSpec{}

	for !p.check(closing) && !p.atEOF() {
		tok := p.peek()
		switch {
		case tok.Type == ASTERISK:
			p.advance()
			spec.Merge = true
		case tok.Type == STRING:
			if spec.Label != nil {
				return nil, p.errorf(tok, KindSemanticLocal, "duplicate label in cost spec")
			}
			p.advance()
			label, err := p.spannedStr(tok)
			if err != nil {
				return nil, err
			}
			spec.Label = &label
		case tok.Type == DATE:
			if spec.Date != nil {
				return nil, p.errorf(tok, KindSemanticLocal, "duplicate date in cost spec")
			}
			p.advance()
			d := parseDateText(p.text(tok))
			spec.Date = &d
		case tok.Type == NUMBER || tok.Type == MINUS:
			if (total && spec.Total != nil) || (!total && spec.PerUnit != nil) {
				return nil, p.errorf(tok, KindSemanticLocal, "duplicate cost amount in cost spec")
			}
			expr, err := p.parseNumberExpr(0)
			if err != nil {
				return nil, err
			}
			ca := &ast.CostAmount{Number: expr}
			end := expr.Span().End
			if p.check(IDENT) {
				curTok := p.advance()
				ca.Currency = p.intern(p.text(curTok))
				end = curTok.End
			}
			p.span(ca, expr.Span().Start, end)
			if total {
				spec.Total = ca
			} else {
				spec.PerUnit = ca
			}
		case tok.Type == IDENT:
			if (total && spec.Total != nil) || (!total && spec.PerUnit != nil) {
				return nil, p.errorf(tok, KindSemanticLocal, "duplicate cost amount in cost spec")
			}
			p.advance()
			ca := &ast.CostAmount{Currency: p.intern(p.text(tok))}
			p.span(ca, tok.Start, tok.End)
			if total {
				spec.Total = ca
			} else {
				spec.PerUnit = ca
			}
		default:
			return nil, p.errorf(tok, KindSyntax, "unexpected token %s in cost spec", tok.Type)
		}

		if p.check(COMMA) {
			p.advance()
			continue
		}
		break
	}

	closeTok, err := p.expect(closing)
	if err != nil {
		return nil, err
	}
	p.span(spec, openTok.Start, closeTok.End)
	return spec, nil
}
