package domain

// PageFilter contains filtering/pagination parameters for title listings.
type PageFilter struct {
	Language string
	Pos      string
	Limit    int
	Offset   int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// Normalize applies the default limit and clamps out-of-range values.
func (f PageFilter) Normalize() PageFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
