package shared

// Filter holds common pagination and ordering parameters for list queries
type Filter struct {
	Page     int
	Limit    int
	OrderBy  string // created_at, name
	OrderDir string // asc, desc
}

// DefaultFilter returns a filter with sane pagination defaults
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		Limit:    20,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// Normalize clamps pagination values into a usable range
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.OrderBy == "" {
		f.OrderBy = "created_at"
	}
	if f.OrderDir == "" {
		f.OrderDir = "desc"
	}
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
