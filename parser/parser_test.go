package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerspan/ledgerspan/ast"
)

func TestParse_MixedFile(t *testing.T) {
	content := `option "title" "Demo"
2020-01-01 open Assets:Cash USD
2020-01-02 balance Assets:Cash 100 USD
2020-01-03 * "Payee" "Narration"
  Assets:Cash  -10 USD
  Expenses:Food  10 USD
2020-01-04 price USD 1.10 CAD
2020-01-05 event "location" "Paris"
2020-01-06 note Assets:Cash "checked"
2020-01-07 custom "budget" Assets:Cash 100 USD
plugin "beancount.plugins.auto"
include "other.bean"
2020-01-09 close Assets:Cash
`
	file, err := Parse("mixed.bean", content)
	assert.NoError(t, err)
	assert.Equal(t, 11, len(file.Directives))

	wantKinds := []string{
		"option", "open", "balance", "transaction", "price",
		"event", "note", "custom", "plugin", "include", "close",
	}
	for i, d := range file.Directives {
		assert.Equal(t, wantKinds[i], d.Kind())
		span := d.Span()
		assert.Equal(t, d.Dump(), content[span.Start:span.End])
	}
}

func TestParse_TwoSpaceIndentTransaction(t *testing.T) {
	content := "2020-01-03 * \"Payee\" \"Narration\"\n  Assets:Cash  -10 USD\n  Expenses:Food  10 USD\n"
	file, err := Parse("two.bean", content)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(file.Directives))

	txn, ok := file.Directives[0].(*ast.Transaction)
	assert.True(t, ok)
	assert.Equal(t, 2, len(txn.Postings))
	assert.True(t, strings.HasPrefix(txn.Postings[0].Dump(), "  Assets:Cash"))
}

func TestParse_FourSpaceIndentTransaction(t *testing.T) {
	content := "2020-01-03 * \"Payee\" \"Narration\"\n    Assets:Cash  -10 USD\n    Expenses:Food  10 USD\n"
	file, err := Parse("four.bean", content)
	assert.NoError(t, err)

	txn, ok := file.Directives[0].(*ast.Transaction)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(txn.Postings[0].Dump(), "    Assets:Cash"))
}

func TestParse_SyntaxError(t *testing.T) {
	content := "this is not a directive\n"
	_, err := Parse("bad.bean", content)
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "bad.bean:1:1:"))
}

func TestParse_ArithmeticAmount(t *testing.T) {
	content := "2020-01-02 balance Assets:Cash 100 + 0.5 USD\n"
	file, err := Parse("arith.bean", content)
	assert.NoError(t, err)

	bal, ok := file.Directives[0].(*ast.Balance)
	assert.True(t, ok)
	assert.Equal(t, "100.5", bal.Amount.Number.Value.String())

	span := bal.Amount.Number.Span()
	assert.Equal(t, "100 + 0.5", content[span.Start:span.End])
}

func TestParse_TagPushPop(t *testing.T) {
	content := "pushtag #foo\npoptag #foo\n"
	file, err := Parse("tags.bean", content)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(file.Directives))

	push, ok := file.Directives[0].(*ast.PushTag)
	assert.True(t, ok)
	assert.Equal(t, ast.Tag("foo"), push.Tag)

	pop, ok := file.Directives[1].(*ast.PopTag)
	assert.True(t, ok)
	assert.Equal(t, ast.Tag("foo"), pop.Tag)
}

func TestParse_DuplicateTagIsRejected(t *testing.T) {
	content := "2020-01-01 * \"Narration\" #foo #foo\n  Assets:Cash  -10 USD\n  Expenses:Food  10 USD\n"
	_, err := Parse("dup.bean", content)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tag #foo")
}

func TestParse_DuplicateLinkIsRejected(t *testing.T) {
	content := "2020-01-01 * \"Narration\" ^a ^a\n  Assets:Cash  -10 USD\n  Expenses:Food  10 USD\n"
	_, err := Parse("dup.bean", content)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate link ^a")
}

func TestParse_OrderPreservation(t *testing.T) {
	content := "2020-01-03 open Assets:A\n2020-01-01 open Assets:B\n2020-01-02 open Assets:C\n"
	file, err := Parse("order.bean", content)
	assert.NoError(t, err)

	prevStart := -1
	for _, d := range file.Directives {
		assert.True(t, d.Span().Start > prevStart)
		prevStart = d.Span().Start
	}
	assert.Equal(t, ast.Account("Assets:A"), file.Directives[0].(*ast.Open).Account)
	assert.Equal(t, ast.Account("Assets:B"), file.Directives[1].(*ast.Open).Account)
	assert.Equal(t, ast.Account("Assets:C"), file.Directives[2].(*ast.Open).Account)
}

func TestParse_ExpressionDepthLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 70; i++ {
		b.WriteString("-")
	}
	b.WriteString("1")
	content := "2020-01-01 balance Assets:Cash " + b.String() + " USD\n"

	_, err := Parse("deep.bean", content)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expression nesting exceeds")
}

func TestParse_SpanContainment(t *testing.T) {
	content := "2020-01-01 * \"Narration\"\n  Assets:Cash  -10 USD\n  Expenses:Food  10 USD\n"
	file, err := Parse("containment.bean", content)
	assert.NoError(t, err)

	txn := file.Directives[0].(*ast.Transaction)
	for _, p := range txn.Postings {
		assert.True(t, txn.Span().Contains(p.Span()))
		if p.Amount != nil {
			assert.True(t, p.Span().Contains(p.Amount.Span()))
		}
	}
}

func TestParse_UnterminatedStringIsLexError(t *testing.T) {
	content := "2020-01-01 note Assets:Cash \"unterminated\n"
	_, err := Parse("unterminated.bean", content)
	assert.Error(t, err)

	diag, ok := err.(*Diagnostic)
	assert.True(t, ok)
	assert.Equal(t, KindLex, diag.Kind)
	assert.Contains(t, diag.Message, "unterminated string")
}

func TestParse_InvalidEscapeIsLexError(t *testing.T) {
	content := `2020-01-01 note Assets:Cash "bad \q escape"` + "\n"
	_, err := Parse("escape.bean", content)
	assert.Error(t, err)

	diag, ok := err.(*Diagnostic)
	assert.True(t, ok)
	assert.Equal(t, KindLex, diag.Kind)
	assert.Contains(t, diag.Message, "invalid escape")
}

func TestParse_BalanceTolerance(t *testing.T) {
	content := "2020-01-01 balance Assets:Cash 100.00 USD ~ 0.005\n"
	file, err := Parse("tolerance.bean", content)
	assert.NoError(t, err)

	bal, ok := file.Directives[0].(*ast.Balance)
	assert.True(t, ok)
	assert.True(t, bal.Tolerance != nil)
	assert.Equal(t, "0.005", bal.Tolerance.Value.String())
	assert.Equal(t, content, bal.Dump())
}

func TestParse_BalanceWithoutToleranceHasNilField(t *testing.T) {
	content := "2020-01-01 balance Assets:Cash 100.00 USD\n"
	file, err := Parse("no_tolerance.bean", content)
	assert.NoError(t, err)

	bal, ok := file.Directives[0].(*ast.Balance)
	assert.True(t, ok)
	assert.True(t, bal.Tolerance == nil)
}

func TestParse_RoundTrip(t *testing.T) {
	content := `option "title" "Demo"
2020-01-01 open Assets:Cash USD

2020-01-02 * "Payee" "Narration"
  Assets:Cash  -10 USD
  Expenses:Food  10 USD
`
	file, err := Parse("round.bean", content)
	assert.NoError(t, err)

	dumped := file.DumpAll()
	assert.Equal(t, content, dumped)

	reparsed, err := Parse("round.bean", dumped)
	assert.NoError(t, err)
	assert.Equal(t, len(file.Directives), len(reparsed.Directives))
}
