package universities

import (
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
)

const maxLimit = 50

type CatalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

func (s *CatalogService) List(f catalog.Filter) []models.University {
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	out := s.catalog.Find(f)
	if out == nil {
		out = []models.University{}
	}
	return out
}

func (s *CatalogService) Get(id string) (models.University, error) {
	u, ok := s.catalog.Get(id)
	if !ok {
		return models.University{}, services.ErrUniversityNotFound
	}
	return u, nil
}

// Recommend lists universities in the applicant's preferred countries that
// offer their field of study, skipping ones already shortlisted.
func (s *CatalogService) Recommend(d *models.OnboardingData, shortlisted func(id string) bool) []models.University {
	out := []models.University{}
	if d == nil {
		return out
	}
	for _, u := range s.catalog.Find(catalog.Filter{
		Countries: d.Goals.PreferredCountries,
		Program:   d.Goals.FieldOfStudy,
	}) {
		if !shortlisted(u.ID) {
			out = append(out, u)
		}
	}
	return out
}
