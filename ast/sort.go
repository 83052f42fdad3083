package ast

import "golang.org/x/exp/slices"

// SortedByDate returns a new slice of directives ordered by date, stable on
// ties. It never mutates its argument, and in particular never reorders
// File.Directives: order preservation (spec invariant 3) only governs parse
// order, not this convenience view for callers that want date order (e.g.
// a balance-checking pass that must see opens before the postings against
// them). Directives with no date of their own (Option, Include, Plugin,
// PushTag/PopTag, PushMeta/PopMeta, Comment, Headline) sort as the zero
// date, ahead of anything dated.
func SortedByDate(directives []Directive) []Directive {
	sorted := slices.Clone(directives)
	slices.SortStableFunc(sorted, func(a, b Directive) int {
		da, db := dateOf(a), dateOf(b)
		switch {
		case da.Before(db.Time):
			return -1
		case da.After(db.Time):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

func dateOf(d Directive) Date {
	switch v := d.(type) {
	case *Open:
		return v.Date
	case *Close:
		return v.Date
	case *Balance:
		return v.Date
	case *Pad:
		return v.Date
	case *Commodity:
		return v.Date
	case *Price:
		return v.Date
	case *Event:
		return v.Date
	case *Query:
		return v.Date
	case *Note:
		return v.Date
	case *Document:
		return v.Date
	case *Custom:
		return v.Date
	case *Transaction:
		return v.Date
	default:
		return Date{}
	}
}
