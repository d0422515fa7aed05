package studio

// MaxCorrections is the ceiling on user-directed corrections per artifact.
// Callers gate on it before invoking Correct; the engine trusts the gate.
const MaxCorrections = 3

type Category string

const (
	CategoryModel     Category = "model"
	CategoryFlatlay   Category = "flatlay"
	CategoryMacro     Category = "macro"
	CategoryMannequin Category = "mannequin"
	CategoryNature    Category = "nature"
	CategoryReview    Category = "review"
	CategoryPromo     Category = "promo"
)

const (
	aspectSquare   = "1:1"
	aspectPortrait = "3:4"
)

// SourceAsset is the uploaded reference photo. The engine never mutates it.
type SourceAsset struct {
	DataBase64 string
	MimeType   string
}

// Variant is one instruction template within a category. The catalog order
// of variants defines both submission order and default display order.
type Variant struct {
	Category    Category
	Tag         string
	Description string
	Template    string
	Aspect      string
}

// Artifact is one generated output: an image data URL plus optional text,
// with identity and a correction counter.
type Artifact struct {
	ID              string   `json:"id"`
	ImageURL        string   `json:"image_url"`
	Category        Category `json:"category"`
	Variant         string   `json:"variant"`
	Description     string   `json:"description"`
	CorrectionCount int      `json:"correction_count"`
	TextNote        string   `json:"text_note,omitempty"`
	Overlay         string   `json:"overlay,omitempty"`
}

// CorrectionsExhausted reports whether the artifact has reached the
// correction ceiling. The calling layer checks this before Correct.
func (a Artifact) CorrectionsExhausted() bool {
	return a.CorrectionCount >= MaxCorrections
}

// RenderContext carries request-scoped inputs into the variant renderer.
type RenderContext struct {
	// Overlay is optional slogan text for overlay-capable categories.
	Overlay string
}

// ReviewRequest drives one review batch. Situations must be non-empty.
type ReviewRequest struct {
	Situations []string
	Language   string // "uk" | "en" | "ru"
	AgeBracket string // "30-40" | "40-50" | "50+"
	Gender     string // "male" | "female"
}
