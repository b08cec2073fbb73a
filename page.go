package rift

import (
	"context"
	"errors"
)

// Page is a single pagination result as returned by the query paginate
// operator: the data plus nullable cursors.
type Page struct {
	Data   []any
	Before any
	After  any
}

// PageFromValue converts a decoded paginate resource into a Page.
func PageFromValue(v any) (Page, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Page{}, &InvalidResponseError{Description: "page should be a mapping", Data: v}
	}
	data, ok := m["data"].([]any)
	if !ok {
		return Page{}, &InvalidResponseError{Description: `page should have a "data" array`, Data: v}
	}
	return Page{Data: data, Before: m["before"], After: m["after"]}, nil
}

// MapData returns a new Page whose data has fn applied to each element.
func (p Page) MapData(fn func(any) any) Page {
	data := make([]any, len(p.Data))
	for i, elem := range p.Data {
		data[i] = fn(elem)
	}
	return Page{Data: data, Before: p.Before, After: p.After}
}

// ErrPagerDone is returned by Pager.Next once the set is exhausted.
var ErrPagerDone = errors.New("rift: no more pages")

// PagerOption configures a Pager.
type PagerOption func(*Pager)

// PageSize limits the number of elements fetched per page.
func PageSize(n int) PagerOption {
	return func(p *Pager) { p.size = n }
}

// PageMapper applies a lambda expression to every set element server-side.
func PageMapper(mapper Expr) PagerOption {
	return func(p *Pager) { p.mapper = mapper }
}

// Pager walks a set query page by page, following cursors until the set is
// exhausted. It follows "after" cursors when the first page has one,
// otherwise "before".
type Pager struct {
	client *Client
	set    any
	size   int
	mapper any

	started    bool
	done       bool
	cursorKind string
	cursor     any
}

// NewPager prepares pagination over a set query (e.g. a match expression).
func NewPager(c *Client, set any, opts ...PagerOption) *Pager {
	p := &Pager{client: c, set: set}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next fetches the next page, or ErrPagerDone when exhausted.
func (p *Pager) Next(ctx context.Context) (Page, error) {
	if p.done {
		return Page{}, ErrPagerDone
	}
	if p.started && p.cursor == nil {
		p.done = true
		return Page{}, ErrPagerDone
	}

	q := NewExpr().With("paginate", p.set)
	if p.size > 0 {
		q = q.With("size", p.size)
	}
	if p.started {
		q = q.With(p.cursorKind, p.cursor)
	}
	if p.mapper != nil {
		q = NewExpr().With("map", p.mapper).With("collection", q)
	}

	v, err := p.client.Query(ctx, q)
	if err != nil {
		return Page{}, err
	}
	page, err := PageFromValue(v)
	if err != nil {
		return Page{}, err
	}

	if !p.started {
		p.started = true
		if page.After != nil {
			p.cursorKind = "after"
		} else {
			p.cursorKind = "before"
		}
	}
	if p.cursorKind == "after" {
		p.cursor = page.After
	} else {
		p.cursor = page.Before
	}
	return page, nil
}

// All drains the pager, collecting every element.
func (p *Pager) All(ctx context.Context) ([]any, error) {
	var out []any
	for {
		page, err := p.Next(ctx)
		if errors.Is(err, ErrPagerDone) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, page.Data...)
	}
}

// Event is an instance change event as found in paginated event sets.
type Event struct {
	Resource any
	TS       int64
	Action   string
}

// EventFromValue converts a decoded event mapping into an Event. Events are
// plain mappings on the wire, so conversion is explicit.
func EventFromValue(v any) (Event, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Event{}, &InvalidResponseError{Description: "event should be a mapping", Data: v}
	}
	ts, ok := m["ts"].(int64)
	if !ok {
		return Event{}, &InvalidResponseError{Description: `event should have an integer "ts"`, Data: v}
	}
	action, ok := m["action"].(string)
	if !ok || (action != "create" && action != "delete") {
		return Event{}, &InvalidResponseError{Description: `event action should be "create" or "delete"`, Data: v}
	}
	return Event{Resource: m["resource"], TS: ts, Action: action}, nil
}
