// Package catalog holds the fixed coffee reference table and the flavor
// tag enumeration. The table is loaded once at construction and never
// mutated; it is passed around as a value so callers can swap in a test
// double.
package catalog

import "sort"

type Tag string

const (
	TagLight     Tag = "light"
	TagMedium    Tag = "medium"
	TagDark      Tag = "dark"
	TagEspresso  Tag = "espresso"
	TagChocolate Tag = "chocolate"
	TagNutty     Tag = "nutty"
	TagFruity    Tag = "fruity"
	TagVanilla   Tag = "vanilla"
	TagIceCream  Tag = "ice cream"
	TagDecaf     Tag = "decaf"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Coffee is one catalog entry. Prices covers only the sizes the shop
// actually sells; absent sizes have no defined price.
type Coffee struct {
	ID          int              `json:"id"`
	Shop        string           `json:"shop"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Prices      map[Size]float64 `json:"prices"`
	Tags        []Tag            `json:"tags"`
}

type Store struct {
	byID   map[int]Coffee
	sorted []Coffee
	tags   []Tag
}

func NewStore() *Store {
	s := &Store{
		byID: make(map[int]Coffee, len(coffees)),
		tags: []Tag{
			TagLight, TagMedium, TagDark, TagEspresso, TagChocolate,
			TagNutty, TagFruity, TagVanilla, TagIceCream, TagDecaf,
		},
	}

	for _, c := range coffees {
		s.byID[c.ID] = c
	}

	s.sorted = make([]Coffee, 0, len(s.byID))
	for _, c := range s.byID {
		s.sorted = append(s.sorted, c)
	}
	sort.Slice(s.sorted, func(i, j int) bool { return s.sorted[i].ID < s.sorted[j].ID })

	return s
}

func (s *Store) Coffee(id int) (Coffee, bool) {
	c, ok := s.byID[id]
	return c, ok
}

func (s *Store) ListSortedByID() []Coffee {
	out := make([]Coffee, len(s.sorted))
	copy(out, s.sorted)
	return out
}

func (s *Store) Tags() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}
