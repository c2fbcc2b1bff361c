// internal/pagination/resource.go
package pagination

import (
	"math"
	"reflect"
)

// Window is the limit/offset pair handed to the query layer.
type Window struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Page describes a page as returned to callers.
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
}

// Params converts the page back into request params.
func (p Page) Params() *Params {
	return &Params{Number: p.Number, Size: p.Size}
}

// Resource is a collection with pagination attached. It is immutable once
// created by Attach.
type Resource struct {
	name   string
	model  any
	config Config
}

// Name identifies the resource in logs and metrics: the model's table name
// when it has one, otherwise its type name.
func (r *Resource) Name() string { return r.name }

// Model returns the model the resource was attached to.
func (r *Resource) Model() any { return r.model }

// Config returns the configuration captured at attach time.
func (r *Resource) Config() Config { return r.config }

func (r *Resource) normalize(p *Params) Normalized {
	return Normalize(p, r.config)
}

// ScopeFilter returns the limit and offset for the requested page.
func (r *Resource) ScopeFilter(p *Params) Window {
	n := r.normalize(p)
	return Window{
		Limit:  n.PageSize,
		Offset: Offset(n.PageSize, n.PageNumber),
	}
}

// CurrentPage returns the requested page after normalization.
func (r *Resource) CurrentPage(p *Params) Page {
	n := r.normalize(p)
	return Page{Number: n.PageNumber, Size: n.PageSize}
}

// HasNextPage reports whether total items extend past the given page. A
// page whose end does not fit in an int can never be exceeded.
func (r *Resource) HasNextPage(page *Params, total int64) bool {
	n := r.normalize(page)
	end, ok := mulNonNegative(n.PageNumber, n.PageSize)
	if !ok {
		return false
	}
	return total > int64(end)
}

// NextPage returns the page following p. Without a total there is no bound
// to check, so the next page is always returned. The last representable
// page is its own successor.
func (r *Resource) NextPage(p *Params) Page {
	cur := r.CurrentPage(p)
	if cur.Number == math.MaxInt {
		return cur
	}
	return Page{Number: cur.Number + 1, Size: cur.Size}
}

// NextPageWithin returns the page following p and true, or false when
// total items do not reach past the current page.
func (r *Resource) NextPageWithin(p *Params, total int64) (Page, bool) {
	cur := r.CurrentPage(p)
	if cur.Number == math.MaxInt || !r.HasNextPage(cur.Params(), total) {
		return Page{}, false
	}
	return Page{Number: cur.Number + 1, Size: cur.Size}, true
}

func modelName(model any) string {
	if model == nil {
		return "<nil>"
	}
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
