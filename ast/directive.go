package ast

import (
	"fmt"
	"strings"
)

// BookingMethod is an Open directive's inventory booking method. The set is
// closed to the six values the original grammar recognizes; anything else
// is a parser-level diagnostic rather than an arbitrary string.
type BookingMethod string

const (
	BookingStrict         BookingMethod = "STRICT"
	BookingNone           BookingMethod = "NONE"
	BookingAverage        BookingMethod = "AVERAGE"
	BookingFIFO           BookingMethod = "FIFO"
	BookingLIFO           BookingMethod = "LIFO"
	BookingStrictWithSize BookingMethod = "STRICT_WITH_SIZE"
)

// ValidBookingMethod reports whether m is one of the six recognized values.
func ValidBookingMethod(m string) bool {
	switch BookingMethod(m) {
	case BookingStrict, BookingNone, BookingAverage, BookingFIFO, BookingLIFO, BookingStrictWithSize:
		return true
	default:
		return false
	}
}

// Open is the `DATE open ACCOUNT [CURRENCY,...] ["METHOD"]` directive.
type Open struct {
	base
	Date        Date
	Account     Account
	Currencies  []string
	BookingMeth BookingMethod // "" if omitted
	Meta        Meta
}

func (o *Open) Kind() string { return "open" }

func (o *Open) Dump() string {
	if t, ok := o.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s open %s", o.Date.Dump(), o.Account)
	if len(o.Currencies) > 0 {
		fmt.Fprintf(&b, " %s", strings.Join(o.Currencies, ","))
	}
	if o.BookingMeth != "" {
		fmt.Fprintf(&b, " %q", string(o.BookingMeth))
	}
	dumpMeta(&b, o.Meta)
	return b.String()
}

// Close is the `DATE close ACCOUNT` directive.
type Close struct {
	base
	Date    Date
	Account Account
	Meta    Meta
}

func (c *Close) Kind() string { return "close" }

func (c *Close) Dump() string {
	if t, ok := c.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s close %s", c.Date.Dump(), c.Account)
	dumpMeta(&b, c.Meta)
	return b.String()
}

// Balance is the `DATE balance ACCOUNT AMOUNT [~ TOLERANCE]` assertion
// directive. Tolerance is nil when the directive carries no `~` clause.
type Balance struct {
	base
	Date      Date
	Account   Account
	Amount    Amount
	Tolerance *NumberExpr
	Meta      Meta
}

func (a *Balance) Kind() string { return "balance" }

func (a *Balance) Dump() string {
	if t, ok := a.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s balance %s %s", a.Date.Dump(), a.Account, a.Amount.Dump())
	if a.Tolerance != nil {
		fmt.Fprintf(&b, " ~ %s", a.Tolerance.Dump())
	}
	dumpMeta(&b, a.Meta)
	return b.String()
}

// Pad is the `DATE pad ACCOUNT ACCOUNT` directive.
type Pad struct {
	base
	Date        Date
	Account     Account
	PadToAccount Account
	Meta        Meta
}

func (p *Pad) Kind() string { return "pad" }

func (p *Pad) Dump() string {
	if t, ok := p.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s pad %s %s", p.Date.Dump(), p.Account, p.PadToAccount)
	dumpMeta(&b, p.Meta)
	return b.String()
}

// Commodity is the `DATE commodity CURRENCY` directive.
type Commodity struct {
	base
	Date     Date
	Currency string
	Meta     Meta
}

func (c *Commodity) Kind() string { return "commodity" }

func (c *Commodity) Dump() string {
	if t, ok := c.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s commodity %s", c.Date.Dump(), c.Currency)
	dumpMeta(&b, c.Meta)
	return b.String()
}

// Price is the `DATE price CURRENCY AMOUNT` directive.
type Price struct {
	base
	Date     Date
	Currency string
	Amount   Amount
	Meta     Meta
}

func (p *Price) Kind() string { return "price" }

func (p *Price) Dump() string {
	if t, ok := p.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s price %s %s", p.Date.Dump(), p.Currency, p.Amount.Dump())
	dumpMeta(&b, p.Meta)
	return b.String()
}

// Event is the `DATE event STRING STRING` directive.
type Event struct {
	base
	Date        Date
	EventType   SpannedStr
	Description SpannedStr
	Meta        Meta
}

func (e *Event) Kind() string { return "event" }

func (e *Event) Dump() string {
	if t, ok := e.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s event %s %s", e.Date.Dump(), e.EventType.Dump(), e.Description.Dump())
	dumpMeta(&b, e.Meta)
	return b.String()
}

// Query is the `DATE query STRING STRING` directive: a named SQL-like query
// against the ledger. Present in the original grammar's directive registry
// but absent from the distilled directive-variant list; added here since
// it shares Event's two-string shape exactly.
type Query struct {
	base
	Date  Date
	Name  SpannedStr
	Query SpannedStr
	Meta  Meta
}

func (q *Query) Kind() string { return "query" }

func (q *Query) Dump() string {
	if t, ok := q.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s query %s %s", q.Date.Dump(), q.Name.Dump(), q.Query.Dump())
	dumpMeta(&b, q.Meta)
	return b.String()
}

// Note is the `DATE note ACCOUNT STRING` directive.
type Note struct {
	base
	Date        Date
	Account     Account
	Description SpannedStr
	Meta        Meta
}

func (n *Note) Kind() string { return "note" }

func (n *Note) Dump() string {
	if t, ok := n.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s note %s %s", n.Date.Dump(), n.Account, n.Description.Dump())
	dumpMeta(&b, n.Meta)
	return b.String()
}

// Document is the `DATE document ACCOUNT STRING` directive.
type Document struct {
	base
	Date    Date
	Account Account
	Path    SpannedStr
	Meta    Meta
}

func (d *Document) Kind() string { return "document" }

func (d *Document) Dump() string {
	if t, ok := d.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s document %s %s", d.Date.Dump(), d.Account, d.Path.Dump())
	dumpMeta(&b, d.Meta)
	return b.String()
}

// CustomValue is one value in a Custom directive's variadic argument list:
// a string, a bare account token, a number, a boolean, a date, or any other
// bare word (kept as a currency).
type CustomValue struct {
	base
	Value KeyValueValue
}

func (v CustomValue) Dump() string {
	if t, ok := v.sourceText(); ok {
		return t
	}
	return v.Value.render()
}

// Custom is the `DATE custom STRING value...` directive, an open-ended
// extension point whose argument grammar is deliberately loose: each value
// may be a string, account, number, boolean, date, or currency.
type Custom struct {
	base
	Date   Date
	Type   SpannedStr
	Values []CustomValue
	Meta   Meta
}

func (c *Custom) Kind() string { return "custom" }

func (c *Custom) Dump() string {
	if t, ok := c.sourceText(); ok {
		return t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s custom %s", c.Date.Dump(), c.Type.Dump())
	for _, v := range c.Values {
		b.WriteByte(' ')
		b.WriteString(v.Dump())
	}
	dumpMeta(&b, c.Meta)
	return b.String()
}

// Option is the `option STRING STRING` top-level directive.
type Option struct {
	base
	Name  SpannedStr
	Value SpannedStr
}

func (o *Option) Kind() string { return "option" }

func (o *Option) Dump() string {
	if t, ok := o.sourceText(); ok {
		return t
	}
	return fmt.Sprintf("option %s %s", o.Name.Dump(), o.Value.Dump())
}

// Include is the `include STRING` top-level directive. Per the Non-goals,
// the path is never followed or merged; it is retained only as literal
// text for round-tripping.
type Include struct {
	base
	Path SpannedStr
}

func (i *Include) Kind() string { return "include" }

func (i *Include) Dump() string {
	if t, ok := i.sourceText(); ok {
		return t
	}
	return fmt.Sprintf("include %s", i.Path.Dump())
}

// Plugin is the `plugin STRING [STRING]` top-level directive. The plugin
// is never loaded or executed (out of scope); it is retained as text.
type Plugin struct {
	base
	Name   SpannedStr
	Config *SpannedStr // nil if omitted
}

func (p *Plugin) Kind() string { return "plugin" }

func (p *Plugin) Dump() string {
	if t, ok := p.sourceText(); ok {
		return t
	}
	if p.Config != nil {
		return fmt.Sprintf("plugin %s %s", p.Name.Dump(), p.Config.Dump())
	}
	return fmt.Sprintf("plugin %s", p.Name.Dump())
}

// PushTag is the `pushtag #TAG` directive; PopTag is `poptag #TAG`. They
// affect every following transaction until popped, but that propagation is
// downstream tooling's job, not this module's (§1).
type PushTag struct {
	base
	Tag Tag
}

func (t *PushTag) Kind() string { return "pushtag" }

func (t *PushTag) Dump() string {
	if s, ok := t.sourceText(); ok {
		return s
	}
	return fmt.Sprintf("pushtag #%s", t.Tag)
}

type PopTag struct {
	base
	Tag Tag
}

func (t *PopTag) Kind() string { return "poptag" }

func (t *PopTag) Dump() string {
	if s, ok := t.sourceText(); ok {
		return s
	}
	return fmt.Sprintf("poptag #%s", t.Tag)
}

// PushMeta is `pushmeta key: value`; PopMeta is `popmeta key`.
type PushMeta struct {
	base
	KeyValue KeyValue
}

func (m *PushMeta) Kind() string { return "pushmeta" }

func (m *PushMeta) Dump() string {
	if s, ok := m.sourceText(); ok {
		return s
	}
	return fmt.Sprintf("pushmeta %s", m.KeyValue.Dump())
}

type PopMeta struct {
	base
	Key string
}

func (m *PopMeta) Kind() string { return "popmeta" }

func (m *PopMeta) Dump() string {
	if s, ok := m.sourceText(); ok {
		return s
	}
	return fmt.Sprintf("popmeta %s", m.Key)
}

// Comment is a `; ...` comment (a `*` line at column 1 is a Headline
// instead), kept as a first-class
// directive so that Dump round-trips a file byte-for-byte (§4.4) instead of
// silently dropping commentary.
type Comment struct {
	base
	Text string // including the leading comment marker
}

func (c *Comment) Kind() string { return "comment" }

func (c *Comment) Dump() string {
	if s, ok := c.sourceText(); ok {
		return s
	}
	return c.Text
}

// Headline is a Beancount `* Section Title` org-mode-style section marker,
// kept interleaved with the directives it introduces rather than discarded,
// so that Dump round-trips a file's section structure.
type Headline struct {
	base
	Level int // number of leading '*'
	Text  string
}

func (h *Headline) Kind() string { return "headline" }

func (h *Headline) Dump() string {
	if s, ok := h.sourceText(); ok {
		return s
	}
	return strings.Repeat("*", h.Level) + " " + h.Text
}

// dumpMeta appends an indented metadata block to b, matching the layout a
// parser would have produced for these entries: one `  key: value` line per
// entry, each on its own line after the directive's header line.
func dumpMeta(b *strings.Builder, m Meta) {
	for _, kv := range m.Entries {
		b.WriteByte('\n')
		b.WriteString("  ")
		b.WriteString(kv.Dump())
	}
}
