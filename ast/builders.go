// Programmatic construction of AST nodes, for callers generating ledger
// files from code (CSV importers and similar) rather than parsing them.
// Builders produce nodes with a zero Span and no owning File; Dump on such
// a node synthesizes canonical text instead of slicing source, per the
// base type's doc comment in node.go.
package ast

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewAmount builds an Amount from a decimal string and currency code. A
// well-formed value is rendered by Dump exactly as written ("25.00" stays
// "25.00"). No validation is performed; a malformed value decimal-parses to
// zero and renders as "0".
func NewAmount(value, currency string) *Amount {
	d, err := decimal.NewFromString(value)
	n := &NumberExpr{Value: d}
	if err == nil {
		n.Tree = ExprLiteral{Raw: value}
	}
	return &Amount{
		Number:   n,
		Currency: currency,
	}
}

// NewDateFromTime builds a Date from a time.Time, truncated to its date
// component.
func NewDateFromTime(t time.Time) Date {
	return NewDate(t)
}

// NewTag strips an optional leading '#' and returns the tag name.
func NewTag(name string) Tag {
	if len(name) > 0 && name[0] == '#' {
		name = name[1:]
	}
	return Tag(name)
}

// NewLink strips an optional leading '^' and returns the link name.
func NewLink(name string) Link {
	if len(name) > 0 && name[0] == '^' {
		name = name[1:]
	}
	return Link(name)
}

// NewStringValue builds a metadata entry whose value is a string.
func NewStringValue(key, value string) *KeyValue {
	return &KeyValue{Key: key, Value: SpannedKeyValueValue{Value: KeyValueValue{Kind: KVString, StringValue: value}}}
}

// NewAccountValue builds a metadata entry whose value is an account.
func NewAccountValue(key string, account Account) *KeyValue {
	return &KeyValue{Key: key, Value: SpannedKeyValueValue{Value: KeyValueValue{Kind: KVAccount, AccountVal: account}}}
}

// NewNumberValue builds a metadata entry whose value is a bare number.
func NewNumberValue(key, value string) *KeyValue {
	d, _ := decimal.NewFromString(value)
	return &KeyValue{Key: key, Value: SpannedKeyValueValue{Value: KeyValueValue{Kind: KVNumber, Number: &NumberExpr{Value: d}}}}
}

// TransactionOption configures a Transaction built with NewTransaction.
type TransactionOption func(*Transaction)

// NewTransaction builds a Transaction with the given date and narration.
// By default the flag is FlagCleared ('*'); use WithFlag to change it.
//
//	txn := ast.NewTransaction(date, "Buy groceries",
//	    ast.WithPayee("Whole Foods"),
//	    ast.WithTags("food", "shopping"),
//	    ast.WithPostings(
//	        ast.NewPosting("Expenses:Groceries", ast.WithAmount("45.60", "USD")),
//	        ast.NewPosting("Assets:Checking"),
//	    ),
//	)
func NewTransaction(date Date, narration string, opts ...TransactionOption) *Transaction {
	t := &Transaction{
		Date:      date,
		Flag:      FlagCleared,
		Narration: SpannedStr{Value: narration},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func WithFlag(flag Flag) TransactionOption {
	return func(t *Transaction) { t.Flag = flag }
}

func WithPayee(payee string) TransactionOption {
	return func(t *Transaction) { t.Payee = &SpannedStr{Value: payee} }
}

func WithTags(tags ...string) TransactionOption {
	return func(t *Transaction) {
		for _, tag := range tags {
			t.Tags = append(t.Tags, NewTag(tag))
		}
	}
}

func WithLinks(links ...string) TransactionOption {
	return func(t *Transaction) {
		for _, link := range links {
			t.Links = append(t.Links, NewLink(link))
		}
	}
}

func WithTransactionMeta(entries ...*KeyValue) TransactionOption {
	return func(t *Transaction) { t.Meta.Entries = append(t.Meta.Entries, entries...) }
}

func WithPostings(postings ...*Posting) TransactionOption {
	return func(t *Transaction) { t.Postings = postings }
}

// PostingOption configures a Posting built with NewPosting.
type PostingOption func(*Posting)

// NewPosting builds a Posting for account. Additional fields are set via
// options.
func NewPosting(account Account, opts ...PostingOption) *Posting {
	p := &Posting{Account: account}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func WithAmount(value, currency string) PostingOption {
	return func(p *Posting) { p.Amount = NewAmount(value, currency) }
}

func WithCost(cost *CostSpec) PostingOption {
	return func(p *Posting) { p.Cost = cost }
}

// WithPrice sets a per-unit price (@ syntax).
func WithPrice(value, currency string) PostingOption {
	return func(p *Posting) {
		p.PriceOp = &SpannedPriceOperator{Kind: PriceUnit}
		p.Price = NewAmount(value, currency)
	}
}

// WithTotalPrice sets a total price (@@ syntax).
func WithTotalPrice(value, currency string) PostingOption {
	return func(p *Posting) {
		p.PriceOp = &SpannedPriceOperator{Kind: PriceTotal}
		p.Price = NewAmount(value, currency)
	}
}

func WithPostingFlag(flag Flag) PostingOption {
	return func(p *Posting) { p.Flag = flag }
}

func WithPostingMeta(entries ...*KeyValue) PostingOption {
	return func(p *Posting) { p.Meta.Entries = append(p.Meta.Entries, entries...) }
}

// NewCost builds a per-unit CostSpec from a single amount.
func NewCost(amount *Amount) *CostSpec {
	return &CostSpec{PerUnit: &CostAmount{Number: amount.Number, Currency: amount.Currency}}
}

// NewCostWithDate builds a per-unit CostSpec carrying an acquisition date.
func NewCostWithDate(amount *Amount, date Date) *CostSpec {
	c := NewCost(amount)
	c.Date = &date
	return c
}

// NewCostWithLabel builds a per-unit CostSpec carrying a date and a label.
func NewCostWithLabel(amount *Amount, date Date, label string) *CostSpec {
	c := NewCostWithDate(amount, date)
	c.Label = &SpannedStr{Value: label}
	return c
}

// NewMergeCost builds the bare `{*}` merge-cost marker.
func NewMergeCost() *CostSpec {
	return &CostSpec{Merge: true}
}

// NewOpen builds an Open directive.
func NewOpen(date Date, account Account, currencies []string, bookingMethod string) *Open {
	return &Open{Date: date, Account: account, Currencies: currencies, BookingMeth: BookingMethod(bookingMethod)}
}

func NewClose(date Date, account Account) *Close {
	return &Close{Date: date, Account: account}
}

func NewBalance(date Date, account Account, amount *Amount) *Balance {
	return &Balance{Date: date, Account: account, Amount: *amount}
}

func NewPad(date Date, account, padToAccount Account) *Pad {
	return &Pad{Date: date, Account: account, PadToAccount: padToAccount}
}

func NewNote(date Date, account Account, description string) *Note {
	return &Note{Date: date, Account: account, Description: SpannedStr{Value: description}}
}

func NewDocument(date Date, account Account, path string) *Document {
	return &Document{Date: date, Account: account, Path: SpannedStr{Value: path}}
}

func NewCommodity(date Date, currency string) *Commodity {
	return &Commodity{Date: date, Currency: currency}
}

func NewPrice(date Date, currency string, amount *Amount) *Price {
	return &Price{Date: date, Currency: currency, Amount: *amount}
}

func NewEvent(date Date, eventType, description string) *Event {
	return &Event{Date: date, EventType: SpannedStr{Value: eventType}, Description: SpannedStr{Value: description}}
}

func NewQuery(date Date, name, query string) *Query {
	return &Query{Date: date, Name: SpannedStr{Value: name}, Query: SpannedStr{Value: query}}
}

func NewCustom(date Date, typeName string, values ...CustomValue) *Custom {
	return &Custom{Date: date, Type: SpannedStr{Value: typeName}, Values: values}
}

func NewOption(name, value string) *Option {
	return &Option{Name: SpannedStr{Value: name}, Value: SpannedStr{Value: value}}
}

func NewInclude(path string) *Include {
	return &Include{Path: SpannedStr{Value: path}}
}

func NewPlugin(name string, config string) *Plugin {
	p := &Plugin{Name: SpannedStr{Value: name}}
	if config != "" {
		p.Config = &SpannedStr{Value: config}
	}
	return p
}
