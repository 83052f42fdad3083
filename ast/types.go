package ast

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a colon-separated account name, e.g. Assets:US:BofA:Checking.
// It carries no span of its own; it is always embedded inline in a node
// (Open, Posting, ...) whose span already covers it.
type Account string

// Date is a calendar date in ISO-8601 form (YYYY-MM-DD). Like Account, it
// has no independent span; lexical validity (month 1-12, day 1-31 with
// leap-year awareness) is checked by the lexer, per spec.md §4.1.
type Date struct {
	time.Time
}

// NewDate wraps a time.Time as a Date, truncating to the date component.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Dump renders the date in canonical YYYY-MM-DD form. Dates never carry a
// span of their own (see above), so this is always the synthesized form;
// it happens to equal the source slice, which is what callers of
// Dump(directive) actually see for source-backed directives.
func (d Date) Dump() string {
	return d.Format("2006-01-02")
}

// Tag is a transaction category marker, the text after '#'.
type Tag string

// Link is a transaction cross-reference marker, the text after '^'.
type Link string

// BinaryOpKind enumerates the four arithmetic operators a NumberExpr can
// combine sub-expressions with.
type BinaryOpKind uint8

const (
	OpAdd BinaryOpKind = iota
	OpSub
	OpMul
	OpDiv
)

func (k BinaryOpKind) String() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// SpannedBinaryOp is a +, -, *, or / token occurring inside a NumberExpr.
type SpannedBinaryOp struct {
	base
	Kind BinaryOpKind
}

func (o SpannedBinaryOp) Dump() string {
	if s, ok := o.sourceText(); ok {
		return s
	}
	return o.Kind.String()
}

// PriceOperatorKind distinguishes @ (per-unit price) from @@ (total price).
type PriceOperatorKind uint8

const (
	PriceUnit PriceOperatorKind = iota
	PriceTotal
)

// SpannedPriceOperator is the @ or @@ marker preceding a posting's price.
type SpannedPriceOperator struct {
	base
	Kind PriceOperatorKind
}

func (o SpannedPriceOperator) Dump() string {
	if s, ok := o.sourceText(); ok {
		return s
	}
	if o.Kind == PriceTotal {
		return "@@"
	}
	return "@"
}

// SpannedStr is a quoted string literal: span plus the unescaped value.
type SpannedStr struct {
	base
	Value string
}

func (s SpannedStr) Dump() string {
	if t, ok := s.sourceText(); ok {
		return t
	}
	return `"` + escapeCStyle(s.Value) + `"`
}

// SpannedBool is a TRUE/FALSE token.
type SpannedBool struct {
	base
	Value bool
}

func (b SpannedBool) Dump() string {
	if t, ok := b.sourceText(); ok {
		return t
	}
	if b.Value {
		return "TRUE"
	}
	return "FALSE"
}

// ExprNode is the raw token tree behind a NumberExpr, retained so that a
// synthesized (non-source-backed) expression can be rendered back to text
// without losing grouping, per spec.md §3's "raw token tree needed for
// rendering".
type ExprNode interface {
	render() string
}

// ExprLiteral is a decimal literal leaf.
type ExprLiteral struct {
	Raw string // exact digits as written, e.g. "1,234.56"
}

func (e ExprLiteral) render() string { return e.Raw }

// ExprUnary is a unary-minus node.
type ExprUnary struct {
	Operand ExprNode
}

func (e ExprUnary) render() string { return "-" + e.Operand.render() }

// ExprBinary is a binary operator node, optionally parenthesized in its
// original (or desired synthesized) rendering.
type ExprBinary struct {
	Left          ExprNode
	Op            BinaryOpKind
	Right         ExprNode
	Parenthesized bool
}

func (e ExprBinary) render() string {
	s := fmt.Sprintf("%s %s %s", e.Left.render(), e.Op.String(), e.Right.render())
	if e.Parenthesized {
		return "(" + s + ")"
	}
	return s
}

// NumberExpr is an arithmetic expression over decimals: span, the evaluated
// arbitrary-precision value, and the token tree needed to re-render it.
type NumberExpr struct {
	base
	Value decimal.Decimal
	Tree  ExprNode // nil for a bare literal whose Value.String() suffices
}

func (n NumberExpr) Dump() string {
	if t, ok := n.sourceText(); ok {
		return t
	}
	if n.Tree != nil {
		return n.Tree.render()
	}
	return n.Value.String()
}

// Amount pairs a NumberExpr with its commodity/currency code.
type Amount struct {
	base
	Number   *NumberExpr
	Currency string
}

func (a Amount) Dump() string {
	if t, ok := a.sourceText(); ok {
		return t
	}
	return fmt.Sprintf("%s %s", a.Number.Dump(), a.Currency)
}

// CostAmount is a number/commodity pair inside a CostSpec, where either
// part may be omitted ("{518.73 USD}" has both; "{USD}" has only currency).
type CostAmount struct {
	base
	Number   *NumberExpr // nil if omitted
	Currency string      // "" if omitted
}

func (c CostAmount) Dump() string {
	if t, ok := c.sourceText(); ok {
		return t
	}
	switch {
	case c.Number != nil && c.Currency != "":
		return fmt.Sprintf("%s %s", c.Number.Dump(), c.Currency)
	case c.Number != nil:
		return c.Number.Dump()
	default:
		return c.Currency
	}
}

// CostSpec is the {...} (per-unit) or {{...}} (total) clause on a posting.
type CostSpec struct {
	base
	PerUnit *CostAmount
	Total   *CostAmount
	Date    *Date
	Label   *SpannedStr
	Merge   bool
}

func (c CostSpec) Dump() string {
	if t, ok := c.sourceText(); ok {
		return t
	}

	open, shut := "{", "}"
	if c.Total != nil {
		open, shut = "{{", "}}"
	}

	var items []string
	if c.Merge {
		items = append(items, "*")
	}
	if c.PerUnit != nil {
		items = append(items, c.PerUnit.Dump())
	}
	if c.Total != nil {
		items = append(items, c.Total.Dump())
	}
	if c.Date != nil {
		items = append(items, c.Date.Dump())
	}
	if c.Label != nil {
		items = append(items, c.Label.Dump())
	}

	return open + strings.Join(items, ", ") + shut
}

// KeyValueValueKind names which alternative of a KeyValueValue is set.
type KeyValueValueKind uint8

const (
	KVNone KeyValueValueKind = iota
	KVString
	KVAccount
	KVDate
	KVCurrency
	KVTag
	KVBoolean
	KVNumber
	KVAmount
)

// KeyValueValue is the tagged union of value types a metadata entry can
// hold, per spec.md §3. Exactly one field is set except for KVNone.
type KeyValueValue struct {
	StringValue string
	AccountVal  Account
	DateVal     *Date
	Currency    string
	TagVal      Tag
	Boolean     bool
	Number      *NumberExpr
	Amount      *Amount
	Kind        KeyValueValueKind
}

func (v KeyValueValue) render() string {
	switch v.Kind {
	case KVString:
		return `"` + escapeCStyle(v.StringValue) + `"`
	case KVAccount:
		return string(v.AccountVal)
	case KVDate:
		return v.DateVal.Dump()
	case KVCurrency:
		return v.Currency
	case KVTag:
		return "#" + string(v.TagVal)
	case KVBoolean:
		if v.Boolean {
			return "TRUE"
		}
		return "FALSE"
	case KVNumber:
		return v.Number.Dump()
	case KVAmount:
		return v.Amount.Dump()
	default:
		return ""
	}
}

// SpannedKeyValueValue wraps a KeyValueValue with its source span.
type SpannedKeyValueValue struct {
	base
	Value KeyValueValue
}

func (v SpannedKeyValueValue) Dump() string {
	if t, ok := v.sourceText(); ok {
		return t
	}
	return v.Value.render()
}

// KeyValue is one `key: value` metadata entry attached to a directive or
// posting. Order of KeyValue entries within a Meta list is preserved by
// the parser; keys are not deduplicated (spec.md §3 Meta).
type KeyValue struct {
	base
	Key   string
	Value SpannedKeyValueValue
}

func (kv KeyValue) Dump() string {
	if t, ok := kv.sourceText(); ok {
		return t
	}
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value.Dump())
}

// Meta is the ordered list of KeyValue entries attached to a directive or
// posting.
type Meta struct {
	Entries []*KeyValue
}

// Get returns the first value for key, and whether it was found. Since the
// parser does not deduplicate keys (spec.md §3), later duplicate entries
// are ignored by Get; callers needing all occurrences should range over
// Entries directly.
func (m Meta) Get(key string) (*KeyValue, bool) {
	for _, e := range m.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return nil, false
}
