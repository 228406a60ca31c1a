package static

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ParsesAndSortsBands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.yaml")
	doc := `stat_weight: 1
skill_weight: 2
knack_weight: 5
tiers:
  - name: normal
    bands:
      - min_total: 80
        outcome: crushing success
      - min_total: 0
        outcome: failure
      - min_total: 25
        outcome: success
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for total, want := range map[int]string{0: "failure", 24: "failure", 25: "success", 79: "success", 200: "crushing success"} {
		got, err := tables.ResolveTier(total, "normal")
		if err != nil {
			t.Fatalf("resolve %d: %v", total, err)
		}
		if got != want {
			t.Fatalf("total %d: expected %q, got %q", total, want, got)
		}
	}
}

func TestLoad_RejectsEmptyTables(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("tiers: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(empty); err == nil || !strings.Contains(err.Error(), "no tiers") {
		t.Fatalf("expected no-tiers error, got %v", err)
	}

	bandless := filepath.Join(dir, "bandless.yaml")
	if err := os.WriteFile(bandless, []byte("tiers:\n  - name: hollow\n    bands: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bandless); err == nil || !strings.Contains(err.Error(), "no bands") {
		t.Fatalf("expected no-bands error, got %v", err)
	}
}

func TestResolveTier_UnknownTier(t *testing.T) {
	if _, err := Default().ResolveTier(10, "mythic"); err == nil || !strings.Contains(err.Error(), "unknown difficulty tier") {
		t.Fatalf("expected unknown tier error, got %v", err)
	}
}

func TestWeights(t *testing.T) {
	tables := Default()
	if got := tables.WeightStat(4); got != 4 {
		t.Fatalf("stat weight: got %d", got)
	}
	if got := tables.WeightSkill(4); got != 8 {
		t.Fatalf("skill weight: got %d", got)
	}
	if got := tables.WeightKnack(2); got != 10 {
		t.Fatalf("knack weight: got %d", got)
	}
}
