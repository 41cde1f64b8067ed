// Package pagination normalizes the page/items query parameters shared by
// every list endpoint. Pages are 1-indexed.
package pagination

const (
	DefaultPage  = 1
	DefaultItems = 20
	MaxItems     = 100
)

type Params struct {
	Page  int
	Items int
}

// Normalize clamps raw query values to the documented bounds: page >= 1,
// 1 <= items <= 100, with 20 items per page by default.
func Normalize(page, items int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if items < 1 || items > MaxItems {
		items = DefaultItems
	}
	return Params{Page: page, Items: items}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Items
}
