package ast

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestNewOpen_SynthesizesCanonicalText(t *testing.T) {
	date := NewDateFromTime(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	open := NewOpen(date, "Assets:Checking", []string{"USD"}, "")
	assert.Equal(t, "2024-01-15 open Assets:Checking USD", open.Dump())
}

func TestNewTransaction_SynthesizesPostings(t *testing.T) {
	date := NewDateFromTime(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	txn := NewTransaction(date, "Lunch",
		WithPayee("Cafe"),
		WithTags("food"),
		WithPostings(
			NewPosting("Expenses:Food", WithAmount("25.00", "USD")),
			NewPosting("Assets:Checking"),
		),
	)

	assert.Equal(t, FlagCleared, txn.Flag)
	assert.Equal(t, 2, len(txn.Postings))
	assert.Equal(t,
		"2024-01-15 * \"Cafe\" \"Lunch\" #food\n  Expenses:Food 25.00 USD\n  Assets:Checking",
		txn.Dump(),
	)
}

func TestBuiltNode_HasZeroSpanAndNoFile(t *testing.T) {
	date := NewDateFromTime(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	open := NewOpen(date, "Assets:Checking", nil, "")
	assert.True(t, open.Span().IsZero())
	assert.Zero(t, open.File())
}

func TestNewTag_StripsHash(t *testing.T) {
	assert.Equal(t, Tag("food"), NewTag("#food"))
	assert.Equal(t, Tag("food"), NewTag("food"))
}

func TestNewLink_StripsCaret(t *testing.T) {
	assert.Equal(t, Link("a"), NewLink("^a"))
	assert.Equal(t, Link("a"), NewLink("a"))
}
