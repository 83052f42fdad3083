package ast

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestSortedByDate_OrdersByDate(t *testing.T) {
	jan3 := &Open{Date: NewDate(time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)), Account: "Assets:A"}
	jan1 := &Open{Date: NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), Account: "Assets:B"}
	jan2 := &Open{Date: NewDate(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)), Account: "Assets:C"}

	directives := []Directive{jan3, jan1, jan2}
	sorted := SortedByDate(directives)

	assert.Equal(t, Account("Assets:B"), sorted[0].(*Open).Account)
	assert.Equal(t, Account("Assets:C"), sorted[1].(*Open).Account)
	assert.Equal(t, Account("Assets:A"), sorted[2].(*Open).Account)

	// original slice is untouched
	assert.Equal(t, Account("Assets:A"), directives[0].(*Open).Account)
}

func TestSortedByDate_UndatedDirectivesSortFirst(t *testing.T) {
	opt := &Option{Name: SpannedStr{Value: "title"}, Value: SpannedStr{Value: "Demo"}}
	open := &Open{Date: NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), Account: "Assets:A"}

	sorted := SortedByDate([]Directive{open, opt})
	assert.Equal(t, "option", sorted[0].Kind())
	assert.Equal(t, "open", sorted[1].Kind())
}
