package app

import "github.com/dwikikusuma/shoping-mobile/internal/cart/domain"

// Selection marks which cart lines go to checkout. Ids of lines that have
// since been removed are ignored.
type Selection struct {
	ids   []string
	index map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{index: make(map[string]struct{})}
}

// Toggle flips the selection of productID and reports whether it is now selected.
func (s *Selection) Toggle(productID string) bool {
	if s.IsSelected(productID) {
		s.Deselect(productID)
		return false
	}
	s.Select(productID)
	return true
}

func (s *Selection) Select(productID string) {
	if _, ok := s.index[productID]; ok {
		return
	}
	s.index[productID] = struct{}{}
	s.ids = append(s.ids, productID)
}

func (s *Selection) Deselect(productID string) {
	if _, ok := s.index[productID]; !ok {
		return
	}
	delete(s.index, productID)
	for i, id := range s.ids {
		if id == productID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

func (s *Selection) IsSelected(productID string) bool {
	_, ok := s.index[productID]
	return ok
}

// IDs returns the selected ids in the order they were selected.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// SelectedLines filters lines down to the selected ones, keeping cart order.
func (s *Selection) SelectedLines(lines []domain.Line) []domain.Line {
	out := make([]domain.Line, 0, len(s.ids))
	for _, l := range lines {
		if s.IsSelected(l.ProductID) {
			out = append(out, l)
		}
	}
	return out
}

// Prune drops ids that no longer have a cart line.
func (s *Selection) Prune(lines []domain.Line) {
	present := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		present[l.ProductID] = struct{}{}
	}
	for _, id := range s.IDs() {
		if _, ok := present[id]; !ok {
			s.Deselect(id)
		}
	}
}

func (s *Selection) Reset() {
	s.ids = nil
	s.index = make(map[string]struct{})
}
