package distribution

import (
	"testing"

	"distcalc/domain/dist"
)

func TestRegistryComplete(t *testing.T) {
	entries := All()
	if len(entries) != int(dist.KindCount) {
		t.Fatalf("All() returned %d entries, want %d", len(entries), dist.KindCount)
	}

	seen := make(map[dist.Kind]bool)
	for _, e := range entries {
		if seen[e.Kind] {
			t.Errorf("kind %v registered twice", e.Kind)
		}
		seen[e.Kind] = true

		if e.Impl == nil {
			t.Errorf("%v: nil implementation", e.Kind)
			continue
		}
		if e.Impl.Kind() != e.Kind {
			t.Errorf("%v: implementation reports kind %v", e.Kind, e.Impl.Kind())
		}
		if e.Metadata.Name == "" {
			t.Errorf("%v: empty name", e.Kind)
		}
		if e.Metadata.Description == "" {
			t.Errorf("%v: empty description", e.Kind)
		}
		if e.Metadata.Category != dist.Continuous && e.Metadata.Category != dist.Discrete {
			t.Errorf("%v: bad category %q", e.Kind, e.Metadata.Category)
		}
		if len(e.Metadata.ParamNames) == 0 {
			t.Errorf("%v: no parameter names", e.Kind)
		}
		if len(e.Metadata.ParamNames) != len(e.Metadata.ParamRanges) {
			t.Errorf("%v: %d names but %d ranges",
				e.Kind, len(e.Metadata.ParamNames), len(e.Metadata.ParamRanges))
		}
		for i, r := range e.Metadata.ParamRanges {
			if r.Min >= r.Max {
				t.Errorf("%v: parameter %d has empty range [%v,%v]", e.Kind, i, r.Min, r.Max)
			}
		}
	}
}

func TestRegistryCategories(t *testing.T) {
	if got := CategoryCount(dist.Continuous); got != 11 {
		t.Errorf("continuous count = %d, want 11", got)
	}
	if got := CategoryCount(dist.Discrete); got != 5 {
		t.Errorf("discrete count = %d, want 5", got)
	}
	if got := Count(); got != 16 {
		t.Errorf("Count() = %d, want 16", got)
	}
}

func TestRegistryLookup(t *testing.T) {
	e, ok := Lookup(dist.Normal)
	if !ok || e.Kind != dist.Normal {
		t.Errorf("Lookup(Normal) = %+v, %v", e, ok)
	}
	if _, ok := Lookup(dist.Kind(-1)); ok {
		t.Error("Lookup(-1) should fail")
	}
	if _, ok := Lookup(dist.KindCount); ok {
		t.Error("Lookup(KindCount) should fail")
	}

	m, ok := Metadata(dist.Binomial)
	if !ok {
		t.Fatal("Metadata(Binomial) missing")
	}
	if m.Category != dist.Discrete {
		t.Errorf("binomial category = %q, want discrete", m.Category)
	}
	if m.ParamCount() != 2 {
		t.Errorf("binomial ParamCount = %d, want 2", m.ParamCount())
	}
}
