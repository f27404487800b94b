// Package catalog holds the read-only list of known universities.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable, ordered collection of universities.
// All accessors return copies.
type Catalog struct {
	universities []models.University
	byID         map[string]int
}

// New validates the entries and builds a catalog preserving their order.
func New(universities []models.University) (*Catalog, error) {
	c := &Catalog{
		universities: make([]models.University, 0, len(universities)),
		byID:         make(map[string]int, len(universities)),
	}
	for i, u := range universities {
		if err := validate(u); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.byID[u.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, u.ID)
		}
		c.byID[u.ID] = len(c.universities)
		c.universities = append(c.universities, clone(u))
	}
	return c, nil
}

func validate(u models.University) error {
	switch {
	case u.ID == "":
		return errors.New("missing id")
	case u.Name == "":
		return fmt.Errorf("%s: missing name", u.ID)
	case u.TotalCost != u.TuitionFee+u.LivingCost:
		return fmt.Errorf("%s: total_cost %d != tuition_fee + living_cost (%d)", u.ID, u.TotalCost, u.TuitionFee+u.LivingCost)
	case !u.Category.Valid():
		return fmt.Errorf("%s: unknown category %q", u.ID, u.Category)
	case !u.RiskLevel.Valid(), !u.CostLevel.Valid(), !u.AcceptanceChance.Valid():
		return fmt.Errorf("%s: risk, cost and acceptance levels must be low, medium or high", u.ID)
	}
	return nil
}

func clone(u models.University) models.University {
	u.Programs = append([]string(nil), u.Programs...)
	u.Risks = append([]string(nil), u.Risks...)
	return u
}

func (c *Catalog) Len() int { return len(c.universities) }

// All returns every university in catalog order.
func (c *Catalog) All() []models.University {
	out := make([]models.University, len(c.universities))
	for i, u := range c.universities {
		out[i] = clone(u)
	}
	return out
}

func (c *Catalog) Get(id string) (models.University, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.University{}, false
	}
	return clone(c.universities[i]), true
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	Countries    []string
	Program      string
	Category     models.UniversityCategory
	MaxTotalCost int
	Limit        int
}

// Find returns the universities matching f in catalog order.
// Program matching is a case-insensitive substring test against any program.
func (c *Catalog) Find(f Filter) []models.University {
	var out []models.University
	for _, u := range c.universities {
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
		if len(f.Countries) > 0 && !containsString(f.Countries, u.Country) {
			continue
		}
		if f.Category != "" && u.Category != f.Category {
			continue
		}
		if f.MaxTotalCost > 0 && u.TotalCost > f.MaxTotalCost {
			continue
		}
		if !OffersProgram(u, f.Program) {
			continue
		}
		out = append(out, clone(u))
	}
	return out
}

// OffersProgram reports whether any program of u contains field, ignoring case.
// An empty field matches every university.
func OffersProgram(u models.University, field string) bool {
	needle := strings.ToLower(field)
	for _, p := range u.Programs {
		if strings.Contains(strings.ToLower(p), needle) {
			return true
		}
	}
	return false
}

func containsString(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
