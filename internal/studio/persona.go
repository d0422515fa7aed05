package studio

import "strings"

// Persona is the trait combination assigned to one review situation.
type Persona struct {
	Physique string
	Hair     string
	Feature  string
	Location string
}

func (p Persona) Describe() string {
	return p.Physique + ", " + p.Hair + ", " + p.Feature + ". Not a professional model."
}

var personaPhysiques = []string{
	"Average build",
	"Slightly muscular but realistic",
	"Soft round tummy",
	"Tall and lean",
	"Stocky and broad-shouldered",
}

var personaHairStyles = []string{
	"Short black hair",
	"Long dark hair tied back",
	"Slightly balding",
	"Greyish hair",
	"Shoulder-length wavy brown hair",
	"Messy casual hair",
}

var personaFeatures = []string{
	"glasses",
	"trimmed beard",
	"stubble",
	"clean-shaven",
	"friendly smile",
}

// Gender overrides are a substitution step after allocation, not a filter on
// the pools, so allocation order stays identical regardless of gender.
var maleHairSwap = map[string]string{
	"Long dark hair tied back":        "Buzz cut",
	"Shoulder-length wavy brown hair": "Short brown hair",
}

var femaleHairSwap = map[string]string{
	"Slightly balding": "Long dark hair tied back",
}

var femaleFeatureSwap = map[string]string{
	"trimmed beard": "light natural makeup",
	"stubble":       "small earrings",
	"clean-shaven":  "no makeup, natural look",
}

// AllocatePersona maps a batch index to a rotating trait combination. It is
// a pure function of the caller-supplied index: no two of the first
// len(personaPhysiques) indices yield the same combination.
func AllocatePersona(index int, situation, gender string) Persona {
	if index < 0 {
		index = 0
	}

	p := Persona{
		Physique: personaPhysiques[index%len(personaPhysiques)],
		Hair:     personaHairStyles[(index+1)%len(personaHairStyles)],
		Feature:  personaFeatures[(index+2)%len(personaFeatures)],
		Location: locationHint(situation),
	}

	if strings.EqualFold(gender, "female") {
		if swap, ok := femaleHairSwap[p.Hair]; ok {
			p.Hair = swap
		}
		if swap, ok := femaleFeatureSwap[p.Feature]; ok {
			p.Feature = swap
		}
	} else {
		if swap, ok := maleHairSwap[p.Hair]; ok {
			p.Hair = swap
		}
	}

	return p
}

type locationRule struct {
	keywords    []string
	description string
}

var locationRules = []locationRule{
	{
		keywords:    []string{"рибал", "fishing"},
		description: "Outdoor at a river bank or lake. Visible reeds, water reflection, fishing rods, bucket, tackle box. Natural overcast daylight.",
	},
	{
		keywords:    []string{"парк", "park", "nature"},
		description: "Public park with paved paths, green benches, tall autumn trees, falling leaves. Soft morning sunlight filtering through branches.",
	},
	{
		keywords:    []string{"спортзал", "gym"},
		description: "Indoor modern gym. Background: dumbbells, weight racks, mirror with gym branding, industrial ceiling lights, rubber flooring.",
	},
	{
		keywords:    []string{"магазин", "store", "supermarket"},
		description: "Inside a bright supermarket. Background: shelves with colorful groceries, price tags, freezer sections, linoleum floor.",
	},
	{
		keywords:    []string{"машин", "car", "garage"},
		description: "Next to a parked silver SUV in a typical residential parking lot. Asphalt ground, other cars blurred in distance. Bright daylight.",
	},
	{
		keywords:    []string{"дача", "dacha", "yard"},
		description: "Backyard of a cozy private house. Wooden fence, garden tools, fruit trees, a plastic chair. Warm evening 'golden hour' light.",
	},
	{
		keywords:    []string{"вдома", "home"},
		description: "Inside a realistic messy living room. Sofa with pillows, TV stand, plant on the shelf. Warm domestic indoor lighting.",
	},
	{
		keywords:    []string{"ринок", "market"},
		description: "Outdoor busy local market. Background stalls with clothes or produce, crowds of people blurred, tent roofs. Harsh direct sunlight.",
	},
	{
		keywords:    []string{"військ", "military"},
		description: "Field conditions. Muddy ground, camouflage netting in background, sandbags, military equipment. Grey cloudy sky.",
	},
}

const genericLocation = "Realistic middle-class environment, authentic textures, no studio perfection."

func locationHint(situation string) string {
	s := strings.ToLower(situation)
	for _, rule := range locationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s, kw) {
				return rule.description
			}
		}
	}
	return genericLocation
}
