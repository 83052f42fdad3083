package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerspan/ledgerspan/ast"
)

func TestNewAligner(t *testing.T) {
	a := NewAligner()
	assert.Equal(t, DefaultCurrencyColumn, a.CurrencyColumn)
	assert.Equal(t, DefaultIndentation, a.Indentation)
}

func TestAlignerTransaction_AlignsAmountColumn(t *testing.T) {
	date := ast.NewDateFromTime(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	tx := ast.NewTransaction(date, "Lunch",
		ast.WithPostings(
			ast.NewPosting("Expenses:Food", ast.WithAmount("-25.00", "USD")),
			ast.NewPosting("Assets:Checking"),
		),
	)

	a := NewAligner()
	out := a.Transaction(tx)

	lines := strings.Split(out, "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.Contains(lines[1], "USD"))

	col := strings.Index(lines[1], "-25.00")
	assert.True(t, col >= DefaultCurrencyColumn-1)
}

func TestAlignerTransaction_WideAccountPushesAmountRight(t *testing.T) {
	date := ast.NewDateFromTime(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	tx := ast.NewTransaction(date, "Rent",
		ast.WithPostings(
			ast.NewPosting("Expenses:Housing:Apartment:MonthlyRentAndUtilities", ast.WithAmount("-1200.00", "USD")),
		),
	)

	a := NewAligner()
	out := a.Transaction(tx)
	lines := strings.Split(out, "\n")

	idx := strings.Index(lines[1], "-1200.00")
	assert.True(t, idx > len("Expenses:Housing:Apartment:MonthlyRentAndUtilities"))
}
