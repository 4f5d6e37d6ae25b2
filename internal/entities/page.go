package entities

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// дальше MaxPage листать бессмысленно, а offset не должен переполняться
	MaxPage = 100_000
)

type PageRequest struct {
	Page  int
	Limit int
}

// Normalize подставляет значения по умолчанию и ограничивает page и limit.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
	Pages int
}

func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	pages := 0
	if req.Limit > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: req.Page, Limit: req.Limit, Pages: pages}
}
