package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	if c.Len() != 10 {
		t.Fatalf("len = %d, want 10", c.Len())
	}
	mit, ok := c.Get("mit")
	if !ok {
		t.Fatal("mit missing from default catalog")
	}
	if mit.Location() != "Cambridge, USA" {
		t.Fatalf("location = %q", mit.Location())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	u, _ := c.Get("mit")
	u.Programs[0] = "Poetry"
	again, _ := c.Get("mit")
	if again.Programs[0] == "Poetry" {
		t.Fatal("catalog entry mutated through returned copy")
	}
}

func TestFindByCountryAndProgram(t *testing.T) {
	got := Default().Find(Filter{Countries: []string{"USA"}, Program: "computer science", Limit: 3})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"mit", "stanford", "cmu"}
	for i, u := range got {
		if u.ID != want[i] {
			t.Fatalf("got[%d] = %s, want %s", i, u.ID, want[i])
		}
	}
}

func TestFindByCategoryAndCost(t *testing.T) {
	got := Default().Find(Filter{Category: models.CategorySafe, MaxTotalCost: 40000})
	if len(got) != 1 || got[0].ID != "tudelft" {
		t.Fatalf("got %v, want [tudelft]", got)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	u := models.University{ID: "x", Name: "X", Category: models.CategorySafe,
		RiskLevel: models.LevelLow, CostLevel: models.LevelLow, AcceptanceChance: models.LevelHigh}
	_, err := New([]models.University{u, u})
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("err = %v, want ErrInvalidCatalog", err)
	}
}

func TestNewRejectsInconsistentCost(t *testing.T) {
	u := models.University{ID: "x", Name: "X", TuitionFee: 10, LivingCost: 5, TotalCost: 20,
		Category: models.CategorySafe, RiskLevel: models.LevelLow, CostLevel: models.LevelLow, AcceptanceChance: models.LevelHigh}
	if _, err := New([]models.University{u}); err == nil || !strings.Contains(err.Error(), "total_cost") {
		t.Fatalf("err = %v, want total_cost mismatch", err)
	}
}

func TestLoadFileJSONWithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonc")
	body := `{
  // a single entry
  "universities": [
    {"id": "uoa", "name": "University of Auckland", "country": "New Zealand", "city": "Auckland",
     "tuition_fee": 30000, "living_cost": 12000, "total_cost": 42000,
     "programs": ["Computer Science"], "category": "safe",
     "risk_level": "low", "cost_level": "medium", "acceptance_chance": "high",},
  ],
}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if u, ok := c.Get("uoa"); !ok || u.Country != "New Zealand" {
		t.Fatalf("uoa = %+v, %v", u, ok)
	}
}
