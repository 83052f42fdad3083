// Package formatter renders synthesized (builder-constructed) transactions
// with column-aligned postings, matching the spacing conventions a
// hand-formatted ledger file uses. Parsed nodes never go through this
// package — their Dump methods always return the original source text
// verbatim, so alignment here only ever applies to nodes built via
// ast.NewTransaction/ast.NewPosting and friends.
package formatter

import (
	"strings"

	"github.com/ledgerspan/ledgerspan/ast"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultIndentation is the number of spaces a posting is indented by.
	DefaultIndentation = 2

	// DefaultCurrencyColumn is the display column at which a posting's
	// amount starts when its account is not too wide to allow it.
	DefaultCurrencyColumn = 52

	// MinimumSpacing is the minimum number of spaces kept between an
	// account name and its amount, even when CurrencyColumn would be
	// exceeded by a long account name.
	MinimumSpacing = 2
)

// Aligner renders a synthesized Transaction with its posting amounts
// aligned to a common column, the way bean-format aligns hand-typed
// ledger entries.
type Aligner struct {
	// CurrencyColumn is the target display column for the start of each
	// posting's amount. If zero, DefaultCurrencyColumn is used.
	CurrencyColumn int

	// Indentation is the number of leading spaces before each posting.
	// If zero, DefaultIndentation is used.
	Indentation int
}

// NewAligner returns an Aligner configured with the package defaults.
func NewAligner() *Aligner {
	return &Aligner{CurrencyColumn: DefaultCurrencyColumn, Indentation: DefaultIndentation}
}

// Transaction renders t's header line followed by its postings, with each
// posting's amount column-aligned. Postings that carry no amount are
// rendered as their indentation, flag and account only.
func (a *Aligner) Transaction(t *ast.Transaction) string {
	col := a.CurrencyColumn
	if col == 0 {
		col = DefaultCurrencyColumn
	}
	indent := a.Indentation
	if indent == 0 {
		indent = DefaultIndentation
	}

	var b strings.Builder
	b.WriteString(transactionHeader(t))

	for _, p := range t.Postings {
		b.WriteByte('\n')
		b.WriteString(a.posting(p, col, indent))
	}
	return b.String()
}

func transactionHeader(t *ast.Transaction) string {
	var b strings.Builder
	b.WriteString(t.Date.Dump())
	b.WriteByte(' ')
	b.WriteByte(byte(t.Flag))
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
	return b.String()
}

// posting renders one posting line with its amount starting at col where
// possible. Account names wider than col-MinimumSpacing push the
// amount right instead of truncating anything.
func (a *Aligner) posting(p *ast.Posting, col, indent int) string {
	prefix := strings.Repeat(" ", indent)
	if p.Flag != ast.FlagNone {
		prefix += string(rune(p.Flag)) + " "
	}
	account := string(p.Account)

	if p.Amount == nil {
		return prefix + account
	}

	amountText := p.Amount.Dump()
	left := prefix + account
	width := runewidth.StringWidth(left)

	target := col
	if target < width+MinimumSpacing {
		target = width + MinimumSpacing
	}
	pad := target - width
	if pad < MinimumSpacing {
		pad = MinimumSpacing
	}

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(amountText)

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
	return b.String()
}
