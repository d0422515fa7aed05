package studio

// categoryOrder is the fixed display order for grouped results.
var categoryOrder = []Category{
	CategoryModel,
	CategoryFlatlay,
	CategoryMacro,
	CategoryMannequin,
	CategoryNature,
	CategoryPromo,
	CategoryReview,
}

func CategoryOrder() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ProductCategories lists the categories the catalog can expand. Review
// artifacts come only from the review batch path, never from the catalog.
func ProductCategories() []Category {
	out := make([]Category, 0, len(categoryOrder)-1)
	for _, c := range categoryOrder {
		if c == CategoryReview {
			continue
		}
		out = append(out, c)
	}
	return out
}

// VariantsFor returns the catalog variants for one category in submission
// order. An unknown or empty category yields an empty slice.
func VariantsFor(category Category) []Variant {
	out := make([]Variant, 0, 10)
	for _, v := range variants {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

var variants = []Variant{
	{
		Category:    CategoryModel,
		Tag:         "model-front",
		Description: "On model, front view",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE fashion shot. A MAN of UKRAINIAN appearance, aged 30-40 years, wearing this exact item. NECK DOWNWARD VIEW. The face MUST BE COMPLETELY OUTSIDE THE FRAME. Focus strictly on the clothing textures, fit, and silhouette. The model should be DIFFERENT from any person in the source image. Studio wall background. The garment is the absolute priority.",
	},
	{
		Category:    CategoryModel,
		Tag:         "model-back",
		Description: "On model, rear view",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE fashion shot. A MAN of UKRAINIAN appearance, aged 30-40 years, wearing this item. REAR VIEW. Head excluded or cropped out. Focus on the back construction and drape of the fabric. The model should be DIFFERENT from any person in the source image. Studio wall background.",
	},
	{
		Category:    CategoryModel,
		Tag:         "model-profile",
		Description: "On model, side profile",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE fashion shot. A MAN of UKRAINIAN appearance, aged 30-40 years, wearing this item. SIDE PROFILE. FACE MUST BE COMPLETELY HIDDEN or outside the frame. Focus on the profile silhouette and sleeve detail. The model should be DIFFERENT from any person in the source image. Studio wall background.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-gym",
		Description: "Flatlay, gym kit",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: flat lay with training sneakers, sports bottle, and towel. Background: dark grey concrete gym floor. High contrast lighting. Authentic athletic vibe.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-street",
		Description: "Flatlay, street style",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: street/chunky sneakers, baseball cap, and over-ear headphones. Background: cold grey asphalt. Urban sport style, cool neutral tones.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-running",
		Description: "Flatlay, running set",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: lightweight running shoes, sports watch, and headband/buff. Background: matte light grey studio surface. Breathable and movement-oriented atmosphere.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-cold",
		Description: "Flatlay, cold weather",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: winter training gloves, neck buff, and a metal thermos. Background: dark graphite concrete. Cold-weather training theme.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-home",
		Description: "Flatlay, home workout",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: fitness resistance bands, bottle of water, and a sports timer/watch. Background: warm natural wood surface. Home discipline theme.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-minimal",
		Description: "Flatlay, minimal",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: minimal sneakers, sleek digital watch, and a smartphone. Background: perfectly clean solid grey surface. Functional and modern aesthetic.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-outdoor",
		Description: "Flatlay, outdoor trail",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: trail running shoes, folded lightweight windbreaker, and an outdoor flask. Background: dark wood and natural stone elements. Wilderness and freedom theme.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-power",
		Description: "Flatlay, strength training",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: weightlifting straps/gloves, protein shaker, and a rugged watch. Background: industrial rough concrete. Strength and power vibe.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-after",
		Description: "Flatlay, post-training",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: folded towel, thermos, and sneakers. Background: warm grey-brown aesthetic surface. Recovery and post-training calm theme.",
	},
	{
		Category:    CategoryFlatlay,
		Tag:         "flatlay-active",
		Description: "Flatlay, everyday active",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE flatlay. The central focus is the GARMENT. Composition: lifestyle sneakers, urban backpack, and wireless headphones. Background: city urban concrete. All-day active movement theme.",
	},
	{
		Category:    CategoryMacro,
		Tag:         "macro-collar",
		Description: "Macro, collar",
		Aspect:      aspectSquare,
		Template:    "1:1 SQUARE MACRO CLOSE-UP. COLLAR detail. Sharp stitching.",
	},
	{
		Category:    CategoryMacro,
		Tag:         "macro-fastener",
		Description: "Macro, fastener",
		Aspect:      aspectSquare,
		Template:    "1:1 SQUARE MACRO CLOSE-UP. FASTENER detail, buttons or zipper. High precision.",
	},
	{
		Category:    CategoryMacro,
		Tag:         "macro-cuff",
		Description: "Macro, sleeve cuff",
		Aspect:      aspectSquare,
		Template:    "1:1 SQUARE MACRO CLOSE-UP. SLEEVE CUFF detail. Texture focus.",
	},
	{
		Category:    CategoryMacro,
		Tag:         "macro-pocket",
		Description: "Macro, pocket",
		Aspect:      aspectSquare,
		Template:    "1:1 SQUARE MACRO CLOSE-UP. POCKET detail.",
	},
	{
		Category:    CategoryMacro,
		Tag:         "macro-fabric",
		Description: "Macro, fabric weave",
		Aspect:      aspectSquare,
		Template:    "1:1 SQUARE MACRO CLOSE-UP. Extreme focus on the MAIN FABRIC TEXTURE and weave pattern. Show the high quality of the material and fiber detail.",
	},
	{
		Category:    CategoryMacro,
		Tag:         "macro-lining",
		Description: "Macro, inner lining",
		Aspect:      aspectSquare,
		Template:    "1:1 SQUARE MACRO CLOSE-UP. Focus on the INTERNAL LINING fabric. Show the inside detail, stitching of the lining, and inner material texture.",
	},
	{
		Category:    CategoryMannequin,
		Tag:         "mannequin-front",
		Description: "Ghost mannequin, front",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product photo. FRONT VIEW, perfectly centered and MAXIMALLY ZOOMED IN, extremely close to the viewer. Focus on the garment's 3D VOLUME and structural integrity. The item must appear as if worn by an INVISIBLE PERSON with STRAIGHT LIMBS: strictly NO BENDS in knees or elbows. The garment must be perfectly symmetrical. NO body parts, NO face, NO hands, NO feet, NO shoes, NO mannequin visible. Clean white studio background. Sharp realistic shadows.",
	},
	{
		Category:    CategoryMannequin,
		Tag:         "mannequin-motion",
		Description: "Ghost mannequin, in motion",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product photo. DYNAMIC ACTION SHOT. The garment is shown floating in air as if worn by an invisible body. The item is UNZIPPED or UNBUTTONED so the INTERNAL LINING is visible, or it has a strong WIND-BLOWN EFFECT where the front is opened/fluttering to show depth. The silhouette shows fluid movement. NO body parts, NO people, NO shoes, NO mannequin visible. Clean white studio background.",
	},
	{
		Category:    CategoryMannequin,
		Tag:         "mannequin-angle",
		Description: "Ghost mannequin, 3/4 turn",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product photo. 3/4 TURN VIEW (semi-profile). The garment floats in air, appearing to have full 3D VOLUME on an invisible person. Focus on the depth, layering, and dimensional structure. NO body parts, NO people, NO shoes, NO mannequin visible. Clean white studio background. Sharp shadows.",
	},
	{
		Category:    CategoryNature,
		Tag:         "nature-eco",
		Description: "Styled, eco & nature",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product shot. STYLE: Eco / Nature. THE GARMENT ALONE, laid flat or carefully draped to show maximum surface area. STRICTLY NO PERSON, NO MANNEQUIN, NO BODY PARTS. Background: Warm texture of wood, dried flowers. The background colors must CONTRAST SHARPLY with the garment's colors. HIGH-END DEPTH OF FIELD (blurred background). Natural warm lighting.",
	},
	{
		Category:    CategoryNature,
		Tag:         "nature-industrial",
		Description: "Styled, industrial loft",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product shot. STYLE: Industrial / Loft. THE GARMENT ALONE, presented for maximum visibility. STRICTLY NO PERSON, NO MANNEQUIN, NO BODY PARTS. Background: Grey concrete wall and minimalist metal structures. The background colors must CONTRAST SHARPLY with the garment's colors. SHALLOW DEPTH OF FIELD. Cool-toned studio lighting consistent with the scene.",
	},
	{
		Category:    CategoryNature,
		Tag:         "nature-abstract",
		Description: "Styled, abstract color block",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product shot. STYLE: Abstract / Color Block. THE GARMENT ALONE, displayed on a designer podium. STRICTLY NO PERSON, NO MANNEQUIN, NO BODY PARTS. Background: Smooth matte solid surface. CHOOSE A BACKGROUND COLOR THAT MAXIMALLY CONTRASTS with the item's primary color. Geometric podiums. Minimalist artistic mood. Clean professional lighting.",
	},
	{
		Category:    CategoryNature,
		Tag:         "nature-home",
		Description: "Styled, cozy home",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product shot. STYLE: Home / Cozy. THE GARMENT ALONE, laid out in a domestic setting. STRICTLY NO PERSON, NO MANNEQUIN, NO BODY PARTS. Background: Bright airy interior, soft linen textures, soft carpet. The background colors must CONTRAST SHARPLY with the garment's colors. BLURRED BACKGROUND (depth of field). Soft diffused morning light.",
	},
	{
		Category:    CategoryNature,
		Tag:         "nature-street",
		Description: "Styled, street light",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product shot. STYLE: Street Light. THE GARMENT ALONE, positioned for full product visibility. STRICTLY NO PERSON, NO MANNEQUIN, NO BODY PARTS. Background: Neutral minimalist wall with dramatic sunlight patterns (blinds/window shadows). The background colors must CONTRAST SHARPLY with the garment's colors. Dynamic play of light and shadow. High contrast studio photography feel.",
	},
	{
		Category:    CategoryNature,
		Tag:         "nature-grass",
		Description: "Styled, fresh outdoor",
		Aspect:      aspectSquare,
		Template:    "Professional 1:1 SQUARE product shot. STYLE: Outdoor / Fresh. THE GARMENT ALONE, laid out on LUSH VIBRANT GREEN GRASS. STRICTLY NO PERSON, NO MANNEQUIN, NO BODY PARTS. The bright green of the grass must CONTRAST SHARPLY with the garment's colors. SHALLOW DEPTH OF FIELD (blurred background). Bright natural daylight, soft shadows.",
	},
	{
		Category:    CategoryPromo,
		Tag:         "promo-urban",
		Description: "Promo, urban lifestyle",
		Aspect:      aspectSquare,
		Template:    "COMMERCIAL AD: Lifestyle (Urban). 1:1 SQUARE. A charismatic man of UKRAINIAN appearance, AGED 30-50 YEARS, wearing this exact garment. Sitting in a modern cafe or walking in a Kyiv-style contemporary urban setting. Realistic lifestyle context. COMPOSITION: Leave a clear SAFE ZONE (empty space) on the left side.",
	},
	{
		Category:    CategoryPromo,
		Tag:         "promo-studio",
		Description: "Promo, minimalist studio",
		Aspect:      aspectSquare,
		Template:    "COMMERCIAL AD: Minimalist Studio. 1:1 SQUARE. Premium fashion aesthetic. Clean centered shot of a UKRAINIAN model, AGED 30-50 YEARS, wearing the garment. Background: solid light neutral grey or beige. Soft diffused lighting, minimal shadows. COMPOSITION: Balanced with space at the top for a brand logo.",
	},
	{
		Category:    CategoryPromo,
		Tag:         "promo-action",
		Description: "Promo, dynamic action",
		Aspect:      aspectSquare,
		Template:    "COMMERCIAL AD: Dynamic Action. 1:1 SQUARE. UKRAINIAN model, AGED 30-50 YEARS, in a dynamic pose (walking fast or jumping). Background has subtle MOTION BLUR. Highlight the movement of the fabric. COMPOSITION: Subject shifted to the right, leaving a SAFE ZONE on the left.",
	},
	{
		Category:    CategoryPromo,
		Tag:         "promo-texture",
		Description: "Promo, texture & material",
		Aspect:      aspectSquare,
		Template:    "COMMERCIAL AD: Texture & Material. 1:1 SQUARE. A sophisticated artistic composition showing a close-up detail of the fabric texture (stitching, weave) blended with a full view of the garment on a UKRAINIAN man AGED 30-50 YEARS. Focus on premium quality materials. Studio lighting highlighting fibers.",
	},
	{
		Category:    CategoryPromo,
		Tag:         "promo-editorial",
		Description: "Promo, editorial high fashion",
		Aspect:      aspectSquare,
		Template:    "COMMERCIAL AD: Editorial / High Fashion. 1:1 SQUARE. Bold and trendy magazine styling. UKRAINIAN model, AGED 30-50 YEARS. Hard lighting with deep shadows. Creative camera angle (low angle). Background: textured concrete or bold contrast color. COMPOSITION: Edgy layout, leave space at the bottom.",
	},
	{
		Category:    CategoryPromo,
		Tag:         "promo-thematic",
		Description: "Promo, thematic environment",
		Aspect:      aspectSquare,
		Template:    "COMMERCIAL AD: Thematic Environment. 1:1 SQUARE. Atmospheric scene matching the garment's purpose. UKRAINIAN man, AGED 30-50 YEARS, is part of the environment. If it's warm: cold blue tones, frost/pine background. If it's light: warm sunny backyard or industrial interior. Use natural elements (wood/stone). COMPOSITION: Wide shot. Safe zone available.",
	},
}
