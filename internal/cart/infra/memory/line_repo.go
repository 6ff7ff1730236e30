package memory

import "github.com/dwikikusuma/shoping-mobile/internal/cart/domain"

// LineRepo keeps cart lines in process memory. It is not safe for concurrent
// use; callers serialize access per session.
type LineRepo struct {
	order []string
	lines map[string]domain.Line
}

func NewLineRepo() *LineRepo {
	return &LineRepo{
		lines: make(map[string]domain.Line),
	}
}

func (r *LineRepo) Get(productID string) (domain.Line, bool) {
	l, ok := r.lines[productID]
	return l, ok
}

// Put inserts a new line at the end or replaces an existing one in place.
func (r *LineRepo) Put(line domain.Line) {
	if _, ok := r.lines[line.ProductID]; !ok {
		r.order = append(r.order, line.ProductID)
	}
	r.lines[line.ProductID] = line
}

func (r *LineRepo) Delete(productID string) bool {
	if _, ok := r.lines[productID]; !ok {
		return false
	}
	delete(r.lines, productID)
	for i, id := range r.order {
		if id == productID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *LineRepo) List() []domain.Line {
	out := make([]domain.Line, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.lines[id])
	}
	return out
}

func (r *LineRepo) Clear() {
	r.order = nil
	r.lines = make(map[string]domain.Line)
}
