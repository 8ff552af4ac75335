// Package chatentry renders a single chat message as a list item.
//
// Build turns caller-owned Props into an Entry view model. RenderHTML and
// View are two renderers over the same model: one produces an <li> element,
// the other a lipgloss block for terminal lists. All three are pure and safe
// to call concurrently.
package chatentry

import (
	"sort"
	"strings"
	"time"

	"chatentry/pkg/timefmt"
	"chatentry/pkg/ui/components/utils"

	"github.com/samber/lo"
)

// Origin tells whether the local user or another party wrote a message.
type Origin string

const (
	OriginLocal  Origin = "local"
	OriginRemote Origin = "remote"
)

// EditMarker precedes the header time of edited messages.
const EditMarker = "*"

// OrderSummaryLabel is the caption shown above order summaries.
const OrderSummaryLabel = "Order summary"

const orderSummaryPrefix = "order summary:"

// Props describes one rendered message. Zero values of Name and
// HasBeenEdited mean "no sender label" and "not edited".
type Props struct {
	Locale        string
	Timestamp     float64 // epoch milliseconds
	Message       string
	Origin        Origin
	Name          string
	HasBeenEdited bool

	// Class is merged onto the list item's classes.
	Class string
	// Attrs are extra list item attributes. "class" is merged like Class;
	// "title" is ignored because the hover title is always the timestamp.
	Attrs map[string]string
}

// Header is the name and time row above a message.
type Header struct {
	Name     string
	Time     string
	Edited   bool
	Reversed bool
}

// TimeText is the short time with the edit marker applied.
func (h Header) TimeText() string {
	if h.Edited {
		return EditMarker + h.Time
	}
	return h.Time
}

// Align is the horizontal placement of a body.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
)

// Body is the message region of an entry.
type Body struct {
	OrderSummary bool
	Label        string
	Text         string
	Align        Align
	Muted        bool
}

// Classes are the composed class names for the HTML renderer.
type Classes struct {
	Item   string
	Header string
	Name   string
	Time   string
	Body   string
	Label  string
	Text   string
}

// Entry is the fully resolved view model for one message.
type Entry struct {
	Title   string
	Origin  Origin
	Header  Header
	Body    Body
	Classes Classes
	Attrs   map[string]string
}

// Local reports whether the entry was authored locally.
func (e Entry) Local() bool {
	return e.Origin == OriginLocal
}

type buildOptions struct {
	formatter timefmt.Formatter
	location  *time.Location
}

// Option customizes Build.
type Option func(*buildOptions)

// WithFormatter replaces the locale formatter derived from Props.Locale.
func WithFormatter(f timefmt.Formatter) Option {
	return func(o *buildOptions) {
		o.formatter = f
	}
}

// WithLocation sets the zone used by the default formatter.
func WithLocation(loc *time.Location) Option {
	return func(o *buildOptions) {
		o.location = loc
	}
}

// Build resolves p into an Entry.
func Build(p Props, opts ...Option) Entry {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.formatter == nil {
		o.formatter = timefmt.New(p.Locale, o.location)
	}

	local := p.Origin == OriginLocal
	origin := OriginRemote
	if local {
		origin = OriginLocal
	}

	e := Entry{
		Title:  o.formatter.Full(p.Timestamp),
		Origin: origin,
		Header: Header{
			Name:     p.Name,
			Time:     o.formatter.Short(p.Timestamp),
			Edited:   p.HasBeenEdited,
			Reversed: local,
		},
		Attrs: passthroughAttrs(p.Attrs),
	}

	if text, ok := ParseOrderSummary(p.Message); ok {
		e.Body = Body{
			OrderSummary: true,
			Label:        OrderSummaryLabel,
			Text:         text,
			Align:        AlignStart,
		}
	} else {
		e.Body = Body{Text: p.Message, Align: AlignStart}
		if local {
			e.Body.Align = AlignEnd
			e.Body.Muted = true
		}
	}

	e.Classes = composeClasses(e, p.Class, attrClass(p.Attrs))
	return e
}

// ParseOrderSummary reports whether message is an order summary and returns
// its content with the prefix removed. Matching ignores case and leading
// whitespace only.
func ParseOrderSummary(message string) (string, bool) {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < len(orderSummaryPrefix) {
		return "", false
	}
	if !strings.EqualFold(trimmed[:len(orderSummaryPrefix)], orderSummaryPrefix) {
		return "", false
	}
	return strings.TrimSpace(trimmed[len(orderSummaryPrefix):]), true
}

func passthroughAttrs(attrs map[string]string) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if reservedAttr(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// reservedAttr reports attribute names the entry element sets itself.
func reservedAttr(name string) bool {
	switch strings.ToLower(name) {
	case "class", "title", "data-origin":
		return true
	}
	return false
}

// attrClass collects class attribute values under any spelling of the name.
func attrClass(attrs map[string]string) string {
	keys := lo.Filter(lo.Keys(attrs), func(k string, _ int) bool {
		return strings.EqualFold(k, "class")
	})
	sort.Strings(keys)
	return utils.MergeClasses(lo.Map(keys, func(k string, _ int) string {
		return attrs[k]
	})...)
}

func composeClasses(e Entry, extra ...string) Classes {
	local := e.Local()
	c := Classes{
		Item: utils.MergeClasses(append([]string{"group flex flex-col gap-1 px-4 py-1"}, extra...)...),
		Header: utils.MergeClasses(
			"flex items-center gap-2 text-xs text-muted-foreground",
			"opacity-0 transition-opacity group-hover:opacity-100 pointer-coarse:opacity-100",
			utils.ClassIf(e.Header.Reversed, "flex-row-reverse"),
		),
		Name: "font-medium",
		Time: utils.MergeClasses("tabular-nums", utils.ClassIf(e.Header.Edited, "italic")),
	}

	if e.Body.OrderSummary {
		c.Body = "self-start max-w-[75%] rounded-md border border-amber-300 bg-amber-50 px-3 py-2 text-left"
		c.Label = "block text-[10px] font-semibold uppercase tracking-wide text-amber-700"
		c.Text = "whitespace-pre-wrap break-words text-sm"
		return c
	}

	c.Body = utils.MergeClasses(
		"max-w-[75%] whitespace-pre-wrap break-words rounded-lg px-3 py-2 text-sm",
		utils.ClassIf(local, "self-end bg-muted text-right"),
		utils.ClassIf(!local, "self-start text-left"),
	)
	return c
}
