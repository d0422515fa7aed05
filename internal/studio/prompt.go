package studio

import (
	"fmt"
	"strings"
)

const productOnlyGuardrail = "CRITICAL INSTRUCTION: THIS IS A PRODUCT-ONLY SHOT. " +
	"YOU MUST REMOVE ANY PEOPLE, MODELS, MANNEQUINS, SHOES, OR BODY PARTS FROM THE SOURCE IMAGE. " +
	"SHOW ONLY THE CLOTHING GARMENT."

const ghostMannequinGuardrail = "THE GARMENT MUST LOOK AS IF IT IS WORN BY AN INVISIBLE PERSON " +
	"(GHOST MANNEQUIN STYLE), SHOWING FULL 3D VOLUME AND INTERNAL STRUCTURE."

// RenderInstruction turns a catalog variant plus request context into the
// final instruction string. Guardrails are category-scoped and prepended;
// the overlay branch applies only to overlay-capable categories and always
// fires exactly one of its two arms.
func RenderInstruction(v Variant, ctx RenderContext) string {
	var b strings.Builder

	switch v.Category {
	case CategoryMannequin:
		b.WriteString(productOnlyGuardrail)
		b.WriteString(" ")
		b.WriteString(ghostMannequinGuardrail)
		b.WriteString(" ")
	case CategoryNature:
		b.WriteString(productOnlyGuardrail)
		b.WriteString(" ")
	}

	b.WriteString(v.Template)

	if v.Category == CategoryPromo {
		overlay := strings.TrimSpace(ctx.Overlay)
		if overlay != "" {
			fmt.Fprintf(&b, " TEXT OVERLAY: Include the following text: %q. "+
				"Place it tastefully within the safe zone using a professional, modern sans-serif font. "+
				"Ensure high legibility and aesthetic integration with the scene.", overlay)
		} else {
			b.WriteString(" STRICTLY NO TEXT OVERLAY. The image must contain no letters, " +
				"no characters, and no numbers. Pure visual content only.")
		}
	}

	return b.String()
}

// CorrectionInstruction builds the directive for a single correction job.
// The feedback dominates; product identity stays locked to the reference.
func CorrectionInstruction(feedback string) string {
	return fmt.Sprintf("USER INSTRUCTION: %s.\n"+
		"Keep the garment from the first reference image identical.\n"+
		"Modify the second image (current image) strictly following the user instruction.\n"+
		"Focus on background, lighting, or atmosphere changes while preserving the product details.",
		strings.TrimSpace(feedback))
}

func reviewAppearance(language string) (ethnicity, region string) {
	if language == "en" {
		return "Western (American/European) ethnicity.", "USA/Europe"
	}
	return "SLAVIC (Ukrainian) ethnicity.", "Ukraine"
}

func reviewSubject(gender string) string {
	if strings.EqualFold(gender, "female") {
		return "WOMAN"
	}
	return "MAN"
}

// ReviewImageInstruction composes the candid-photo prompt for one situation.
func ReviewImageInstruction(situation string, persona Persona, req ReviewRequest) string {
	ethnicity, _ := reviewAppearance(req.Language)
	subject := reviewSubject(req.Gender)

	var b strings.Builder
	b.WriteString("STYLE: RAW CANDID SMARTPHONE PHOTO for a product review.\n")
	fmt.Fprintf(&b, "SITUATION: A real person is %s.\n", strings.TrimSpace(situation))
	fmt.Fprintf(&b, "LOCATION/ENVIRONMENT: %s\n\n", persona.Location)
	b.WriteString("SUBJECT:\n")
	fmt.Fprintf(&b, "- A %s, %s years old.\n", subject, req.AgeBracket)
	fmt.Fprintf(&b, "- ETHNICITY: %s\n", ethnicity)
	fmt.Fprintf(&b, "- PERSONA: %s\n", persona.Describe())
	b.WriteString("- THEY ARE WEARING THE EXACT CLOTHING FROM THE SOURCE IMAGE.\n")
	b.WriteString("- The clothing is the main focus but fits naturally in the scene.\n\n")
	b.WriteString("PHOTO QUALITY:\n")
	b.WriteString("- Amateur composition.\n")
	b.WriteString("- Shot on iPhone/Android.\n")
	b.WriteString("- Slightly soft focus on background.\n")
	b.WriteString("- No professional studio lights, no white background, no modeling poses.\n\n")
	b.WriteString("FORMAT: Vertical 3:4 portrait.")
	return b.String()
}

func reviewLanguageName(language string) string {
	switch language {
	case "uk":
		return "Ukrainian"
	case "ru":
		return "Russian"
	default:
		return "English"
	}
}

// ReviewTextInstruction asks for the short first-person review note.
func ReviewTextInstruction(situation string, req ReviewRequest) string {
	return fmt.Sprintf("Write a short, realistic 5-star customer review (1-2 sentences) in %s.\n"+
		"Subject: A %s year old person who is %s and happy with the garment quality.\n"+
		"Tone: Genuine customer, practical, informal.\n"+
		"ONLY output the review text.",
		reviewLanguageName(req.Language), req.AgeBracket, strings.TrimSpace(situation))
}
