package ast

import "strings"

// Flag is a transaction or posting status marker: '*' (cleared), '!'
// (pending), or any other single printable byte the grammar allows through
// as a custom flag.
type Flag byte

const (
	FlagCleared Flag = '*'
	FlagPending Flag = '!'
	FlagNone    Flag = 0
)

func (f Flag) String() string {
	if f == FlagNone {
		return ""
	}
	return string(f)
}

// Posting is one `  ACCOUNT [AMOUNT] [{COST}] [@ PRICE]` line inside a
// Transaction. Amount is nil for an elided posting left for the
// (out-of-scope) balancing step to infer; Cost and Price are independently
// optional.
type Posting struct {
	base
	Flag     Flag // FlagNone if the posting has no leading flag
	Account  Account
	Amount   *Amount
	Cost     *CostSpec
	PriceOp  *SpannedPriceOperator
	Price    *Amount
	Meta     Meta
}

func (p *Posting) Dump() string {
	if t, ok := p.sourceText(); ok {
		return t
	}
	var b strings.Builder
	b.WriteString("  ")
	if p.Flag != FlagNone {
		b.WriteString(p.Flag.String())
		b.WriteByte(' ')
	}
	b.WriteString(string(p.Account))
	if p.Amount != nil {
		b.WriteByte(' ')
		b.WriteString(p.Amount.Dump())
	}
	if p.Cost != nil {
		b.WriteByte(' ')
		b.WriteString(p.Cost.Dump())
	}
	if p.PriceOp != nil && p.Price != nil {
		b.WriteByte(' ')
		b.WriteString(p.PriceOp.Dump())
		b.WriteByte(' ')
		b.WriteString(p.Price.Dump())
	}
	dumpMeta(&b, p.Meta)
	return b.String()
}

// Transaction is the `DATE FLAG ["PAYEE"] "NARRATION" #tag ^link` directive
// followed by indented Posting lines and metadata. Payee is nil when the
// transaction has only a narration (the single-string form).
type Transaction struct {
	base
	Date      Date
	Flag      Flag
	Payee     *SpannedStr
	Narration SpannedStr
	Tags      []Tag
	Links     []Link
	Meta      Meta
	Postings  []*Posting
}

func (t *Transaction) Kind() string { return "transaction" }

func (t *Transaction) Dump() string {
	if s, ok := t.sourceText(); ok {
		return s
	}

	var b strings.Builder
	b.WriteString(t.Date.Dump())
	b.WriteByte(' ')
	b.WriteString(t.Flag.String())
	if t.Payee != nil {
		b.WriteByte(' ')
		b.WriteString(t.Payee.Dump())
	}
	b.WriteByte(' ')
	b.WriteString(t.Narration.Dump())
	for _, tag := range t.Tags {
		b.WriteString(" #")
		b.WriteString(string(tag))
	}
	for _, link := range t.Links {
		b.WriteString(" ^")
		b.WriteString(string(link))
	}
	dumpMeta(&b, t.Meta)
	for _, p := range t.Postings {
		b.WriteByte('\n')
		b.WriteString(p.Dump())
	}
	return b.String()
}
