package studio

import (
	"strings"
	"testing"
)

func TestAllocatePersona_DistinctWithinPoolLength(t *testing.T) {
	n := len(personaPhysiques)
	personas := make([]Persona, n)
	for i := 0; i < n; i++ {
		personas[i] = AllocatePersona(i, "walking in the park", "male")
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if personas[i] == personas[j] {
				t.Fatalf("allocations %d and %d are identical: %+v", i, j, personas[i])
			}
		}
	}
}

func TestAllocatePersona_MaleLongHairSubstitution(t *testing.T) {
	// Index 0 lands on the long-hair pool entry.
	if base := personaHairStyles[1]; base != "Long dark hair tied back" {
		t.Fatalf("pool layout changed, long-hair entry now %q", base)
	}

	male := AllocatePersona(0, "", "male")
	if male.Hair != "Buzz cut" {
		t.Fatalf("male allocation kept long hair: %q", male.Hair)
	}

	female := AllocatePersona(0, "", "female")
	if female.Hair != "Long dark hair tied back" {
		t.Fatalf("female allocation lost the pool entry: %q", female.Hair)
	}
}

func TestAllocatePersona_GenderDoesNotShiftRotation(t *testing.T) {
	for i := 0; i < 10; i++ {
		male := AllocatePersona(i, "", "male")
		female := AllocatePersona(i, "", "female")
		if male.Physique != female.Physique {
			t.Fatalf("index %d: physique rotation differs by gender (%q vs %q)", i, male.Physique, female.Physique)
		}
	}
}

func TestAllocatePersona_FemaleFeatureSubstitution(t *testing.T) {
	for i := 0; i < len(personaFeatures); i++ {
		p := AllocatePersona(i, "", "female")
		if p.Feature == "trimmed beard" || p.Feature == "stubble" {
			t.Fatalf("index %d: female persona kept facial hair %q", i, p.Feature)
		}
	}
}

func TestAllocatePersona_NegativeIndexClamped(t *testing.T) {
	if got, want := AllocatePersona(-3, "", "male"), AllocatePersona(0, "", "male"); got != want {
		t.Fatalf("negative index not clamped: %+v vs %+v", got, want)
	}
}

func TestLocationHint_KeywordMatches(t *testing.T) {
	cases := map[string]string{
		"fishing at the lake":     "river bank or lake",
		"на рибалці":              "river bank or lake",
		"walking in the park":     "Public park",
		"at the gym after work":   "Indoor modern gym",
		"shopping at supermarket": "bright supermarket",
		"washing the car":         "residential parking lot",
		"weekend at the dacha":    "cozy private house",
		"relaxing at home":        "living room",
		"at the local market":     "busy local market",
		"military field training": "camouflage netting",
	}

	for situation, want := range cases {
		got := locationHint(situation)
		if !strings.Contains(got, want) {
			t.Fatalf("situation %q: got %q, want it to mention %q", situation, got, want)
		}
	}
}

func TestLocationHint_FallbackWhenNoKeyword(t *testing.T) {
	if got := locationHint("celebrating a birthday"); got != genericLocation {
		t.Fatalf("got %q, want the generic environment fallback", got)
	}
}
