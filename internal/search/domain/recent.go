package domain

import "strings"

const DefaultRecentLimit = 10

// RecentSearches holds submitted queries, newest first.
type RecentSearches struct {
	limit   int
	queries []string
}

func NewRecentSearches(limit int) *RecentSearches {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return &RecentSearches{limit: limit}
}

// Submit records q. Blank queries are ignored and a query already in the
// list keeps its position.
func (r *RecentSearches) Submit(q string) bool {
	q = strings.TrimSpace(q)
	if q == "" || r.contains(q) {
		return false
	}

	r.queries = append([]string{q}, r.queries...)
	if len(r.queries) > r.limit {
		r.queries = r.queries[:r.limit]
	}
	return true
}

func (r *RecentSearches) Remove(q string) bool {
	for i, existing := range r.queries {
		if existing == q {
			r.queries = append(r.queries[:i], r.queries[i+1:]...)
			return true
		}
	}
	return false
}

func (r *RecentSearches) Clear() {
	r.queries = nil
}

func (r *RecentSearches) List() []string {
	out := make([]string, len(r.queries))
	copy(out, r.queries)
	return out
}

func (r *RecentSearches) contains(q string) bool {
	for _, existing := range r.queries {
		if existing == q {
			return true
		}
	}
	return false
}
