package achievements

import "testing"

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range DefaultCatalog() {
		if a.ID == "" {
			t.Error("achievement with empty id")
		}
		if seen[a.ID] {
			t.Errorf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestCatalogPrerequisitesPrecedeDependents(t *testing.T) {
	// Each Requires must name an earlier entry. This both guarantees the
	// chains are acyclic and lets a cascade unlock one link per pass in
	// catalog order.
	position := map[string]int{}
	for i, a := range DefaultCatalog() {
		if a.Requires != "" {
			p, known := position[a.Requires]
			if !known {
				t.Errorf("%s requires %q, which does not precede it", a.ID, a.Requires)
			} else if p >= i {
				t.Errorf("%s requires %q at a later position", a.ID, a.Requires)
			}
		}
		position[a.ID] = i
	}
}

func TestCatalogConditionsUseKnownFields(t *testing.T) {
	probe := Stats{}
	for _, a := range DefaultCatalog() {
		if _, ok := probe.Value(a.Condition.Field); !ok {
			t.Errorf("%s conditions on unknown field %q", a.ID, a.Condition.Field)
		}
		for _, c := range a.Extra {
			if _, ok := probe.Value(c.Field); !ok {
				t.Errorf("%s extra conditions on unknown field %q", a.ID, c.Field)
			}
		}
	}
}

func TestOpEval(t *testing.T) {
	tests := []struct {
		op        Op
		value     int
		threshold int
		want      bool
	}{
		{OpGTE, 5, 5, true},
		{OpGTE, 4, 5, false},
		{OpGT, 6, 5, true},
		{OpGT, 5, 5, false},
		{OpEQ, 5, 5, true},
		{OpEQ, 4, 5, false},
		{OpLTE, 5, 5, true},
		{OpLTE, 6, 5, false},
		{OpLT, 4, 5, true},
		{OpLT, 5, 5, false},
		{Op("~="), 5, 5, false},
	}

	for _, tt := range tests {
		if got := tt.op.Eval(tt.value, tt.threshold); got != tt.want {
			t.Errorf("%q.Eval(%d, %d) = %v, want %v",
				tt.op, tt.value, tt.threshold, got, tt.want)
		}
	}
}

func TestStatsValueClampsNegative(t *testing.T) {
	s := Stats{Score: -10, Lines: -1, Combo: -5}

	for _, f := range []Field{FieldScore, FieldLines, FieldCombo} {
		v, ok := s.Value(f)
		if !ok {
			t.Errorf("Value(%q) unknown", f)
		}
		if v != 0 {
			t.Errorf("Value(%q) = %d, want 0", f, v)
		}
	}
}

func TestStatsValueUnknownField(t *testing.T) {
	if _, ok := (Stats{}).Value(Field("wins")); ok {
		t.Error("Value accepted an unknown field")
	}
}
