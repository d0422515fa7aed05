package studio

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

const fakeImageURL = "data:image/png;base64,aW1n"

type fakeGenerator struct {
	mu        sync.Mutex
	imageJobs []ImageJob
	textCalls []string

	failImage  func(ImageJob) bool
	emptyImage func(ImageJob) bool
	failText   func(string) bool
	textReply  string
}

func (f *fakeGenerator) GenerateImage(_ context.Context, job ImageJob) (string, error) {
	f.mu.Lock()
	f.imageJobs = append(f.imageJobs, job)
	f.mu.Unlock()

	if f.failImage != nil && f.failImage(job) {
		return "", errors.New("model unavailable")
	}
	if f.emptyImage != nil && f.emptyImage(job) {
		return "", nil
	}
	return fakeImageURL, nil
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.textCalls = append(f.textCalls, prompt)
	f.mu.Unlock()

	if f.failText != nil && f.failText(prompt) {
		return "", errors.New("model unavailable")
	}
	if f.textReply != "" {
		return f.textReply, nil
	}
	return "Fits great, my wife approves!", nil
}

func (f *fakeGenerator) imageJobCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.imageJobs)
}

func newTestEngine(gen Generator) *Engine {
	return NewEngine(Options{Generator: gen, MaxConcurrent: 3})
}

func testSource() SourceAsset {
	return SourceAsset{DataBase64: "c3JjLWltYWdl", MimeType: "image/jpeg"}
}

func TestGenerateCategory_OneJobPerVariant(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateCategory(context.Background(), testSource(), CategoryFlatlay, RenderContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := len(VariantsFor(CategoryFlatlay))
	if gen.imageJobCount() != want {
		t.Fatalf("submitted %d jobs, want %d", gen.imageJobCount(), want)
	}
	if len(artifacts) != want {
		t.Fatalf("got %d artifacts, want %d", len(artifacts), want)
	}

	ids := make(map[string]struct{})
	for _, a := range artifacts {
		if a.CorrectionCount != 0 {
			t.Fatalf("fresh artifact has correction count %d", a.CorrectionCount)
		}
		if a.Category != CategoryFlatlay {
			t.Fatalf("artifact carries category %q", a.Category)
		}
		if a.ImageURL != fakeImageURL {
			t.Fatalf("artifact image URL = %q", a.ImageURL)
		}
		if _, dup := ids[a.ID]; dup {
			t.Fatalf("duplicate artifact id %q", a.ID)
		}
		ids[a.ID] = struct{}{}
	}
}

func TestGenerateCategory_PartialFailureYieldsSubset(t *testing.T) {
	// Fail three specific flatlay variants by matching their templates.
	failing := []string{"gym floor", "cold grey asphalt", "weightlifting straps"}
	gen := &fakeGenerator{
		failImage: func(job ImageJob) bool {
			for _, marker := range failing {
				if strings.Contains(job.Instruction, marker) {
					return true
				}
			}
			return false
		},
	}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateCategory(context.Background(), testSource(), CategoryFlatlay, RenderContext{})
	if err != nil {
		t.Fatalf("partial failure must not raise: %v", err)
	}
	if want := len(VariantsFor(CategoryFlatlay)) - len(failing); len(artifacts) != want {
		t.Fatalf("got %d artifacts, want %d", len(artifacts), want)
	}
	if gen.imageJobCount() != len(VariantsFor(CategoryFlatlay)) {
		t.Fatalf("every variant still gets exactly one attempt")
	}
}

func TestGenerateCategory_EmptyResponseCountsAsFailure(t *testing.T) {
	gen := &fakeGenerator{
		emptyImage: func(job ImageJob) bool {
			return strings.Contains(job.Instruction, "COLLAR detail")
		},
	}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateCategory(context.Background(), testSource(), CategoryMacro, RenderContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := len(VariantsFor(CategoryMacro)) - 1; len(artifacts) != want {
		t.Fatalf("got %d artifacts, want %d", len(artifacts), want)
	}
}

func TestGenerateCategory_AllFailedIsEmptyNotError(t *testing.T) {
	gen := &fakeGenerator{failImage: func(ImageJob) bool { return true }}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateCategory(context.Background(), testSource(), CategoryModel, RenderContext{})
	if err != nil {
		t.Fatalf("all-failed batch must not raise: %v", err)
	}
	if len(artifacts) != 0 {
		t.Fatalf("got %d artifacts, want 0", len(artifacts))
	}
}

func TestGenerateCategory_UnknownCategorySubmitsNothing(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateCategory(context.Background(), testSource(), "poster", RenderContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artifacts) != 0 || gen.imageJobCount() != 0 {
		t.Fatalf("unknown category must yield no jobs and no artifacts")
	}
}

func TestGenerateCategory_PromoCarriesOverlay(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateCategory(context.Background(), testSource(), CategoryPromo, RenderContext{Overlay: "JUST MOVE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range artifacts {
		if a.Overlay != "JUST MOVE" {
			t.Fatalf("promo artifact lost its overlay: %q", a.Overlay)
		}
	}
	for _, job := range gen.imageJobs {
		if n := strings.Count(job.Instruction, "JUST MOVE"); n != 1 {
			t.Fatalf("overlay appears %d times in instruction, want 1", n)
		}
	}
}

func TestCorrect_EmptyFeedbackRejectedBeforeSubmission(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	_, err := engine.Correct(context.Background(), testSource(), Artifact{ID: "a1"}, "   ")
	if err == nil {
		t.Fatalf("empty feedback must be rejected")
	}
	if gen.imageJobCount() != 0 {
		t.Fatalf("precondition violation still dispatched %d jobs", gen.imageJobCount())
	}
}

func TestCorrect_SuccessMintsNewIDAndBumpsCount(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	original := Artifact{
		ID:              "orig",
		ImageURL:        "data:image/png;base64,b2xk",
		Category:        CategoryFlatlay,
		Variant:         "flatlay-gym",
		Description:     "Flatlay, gym kit",
		CorrectionCount: 2,
	}

	corrected, err := engine.Correct(context.Background(), testSource(), original, "make it brighter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if corrected.CorrectionCount != 3 {
		t.Fatalf("correction count = %d, want 3", corrected.CorrectionCount)
	}
	if corrected.ID == original.ID || corrected.ID == "" {
		t.Fatalf("correction must mint a fresh id, got %q", corrected.ID)
	}
	if corrected.Variant != original.Variant || corrected.Description != original.Description {
		t.Fatalf("correction must preserve variant metadata")
	}

	if gen.imageJobCount() != 1 {
		t.Fatalf("correction submitted %d jobs, want exactly 1", gen.imageJobCount())
	}
	job := gen.imageJobs[0]
	if job.Current == nil {
		t.Fatalf("correction job must reference the artifact being corrected")
	}
	if job.AspectRatio != aspectSquare {
		t.Fatalf("product correction aspect = %q, want %q", job.AspectRatio, aspectSquare)
	}
}

func TestCorrect_ReviewArtifactKeepsPortraitAspect(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	original := Artifact{ID: "r1", ImageURL: fakeImageURL, Category: CategoryReview, Variant: "review"}
	if _, err := engine.Correct(context.Background(), testSource(), original, "less blur"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gen.imageJobs[0].AspectRatio; got != aspectPortrait {
		t.Fatalf("review correction aspect = %q, want %q", got, aspectPortrait)
	}
}

func TestCorrect_FailurePropagates(t *testing.T) {
	gen := &fakeGenerator{failImage: func(ImageJob) bool { return true }}
	engine := newTestEngine(gen)

	_, err := engine.Correct(context.Background(), testSource(), Artifact{ID: "a1", ImageURL: fakeImageURL}, "brighter")
	if err == nil {
		t.Fatalf("correction failure must surface to the caller")
	}
}

func TestCorrect_EmptyResponseIsAnError(t *testing.T) {
	gen := &fakeGenerator{emptyImage: func(ImageJob) bool { return true }}
	engine := newTestEngine(gen)

	_, err := engine.Correct(context.Background(), testSource(), Artifact{ID: "a1", ImageURL: fakeImageURL}, "brighter")
	if err == nil {
		t.Fatalf("empty correction response must surface as an error")
	}
}

func TestCorrectionsExhausted_Gate(t *testing.T) {
	if (Artifact{CorrectionCount: 2}).CorrectionsExhausted() {
		t.Fatalf("count 2 must still allow a correction")
	}
	if !(Artifact{CorrectionCount: MaxCorrections}).CorrectionsExhausted() {
		t.Fatalf("count %d must be gated", MaxCorrections)
	}
}

func TestGenerateReviews_TextFailureDegradesToFallback(t *testing.T) {
	gen := &fakeGenerator{
		textReply: "Works great on the river!",
		failText: func(prompt string) bool {
			return strings.Contains(prompt, "at the gym")
		},
	}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateReviews(context.Background(), testSource(), ReviewRequest{
		Situations: []string{"fishing at the lake", "at the gym"},
		Language:   "en",
		AgeBracket: "30-40",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("got %d artifacts, want 2", len(artifacts))
	}

	notes := map[string]string{}
	for _, a := range artifacts {
		if a.Category != CategoryReview {
			t.Fatalf("review artifact carries category %q", a.Category)
		}
		notes[a.Description] = a.TextNote
	}
	if notes["fishing at the lake"] != "Works great on the river!" {
		t.Fatalf("surviving text note lost: %q", notes["fishing at the lake"])
	}
	if notes["at the gym"] != reviewTextFallback {
		t.Fatalf("failed text job note = %q, want fallback %q", notes["at the gym"], reviewTextFallback)
	}
}

func TestGenerateReviews_ImageFailureDropsOnlyThatSituation(t *testing.T) {
	gen := &fakeGenerator{
		failImage: func(job ImageJob) bool {
			return strings.Contains(job.Instruction, "at the gym")
		},
	}
	engine := newTestEngine(gen)

	artifacts, err := engine.GenerateReviews(context.Background(), testSource(), ReviewRequest{
		Situations: []string{"fishing at the lake", "at the gym"},
		Language:   "uk",
		AgeBracket: "40-50",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artifacts) != 1 {
		t.Fatalf("got %d artifacts, want 1", len(artifacts))
	}
	if artifacts[0].Description != "fishing at the lake" {
		t.Fatalf("wrong situation survived: %q", artifacts[0].Description)
	}
}

func TestGenerateReviews_EmptySituationsRejectedBeforeSubmission(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	for _, situations := range [][]string{nil, {}, {"", "   "}} {
		_, err := engine.GenerateReviews(context.Background(), testSource(), ReviewRequest{Situations: situations})
		if err == nil {
			t.Fatalf("situations %v must be rejected", situations)
		}
	}
	if gen.imageJobCount() != 0 || len(gen.textCalls) != 0 {
		t.Fatalf("precondition violation still dispatched jobs")
	}
}

func TestGenerateReviews_PairSubmitsImageAndText(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestEngine(gen)

	situations := []string{"fishing at the lake", "at the gym", "walking in the park"}
	artifacts, err := engine.GenerateReviews(context.Background(), testSource(), ReviewRequest{
		Situations: situations,
		Language:   "en",
		AgeBracket: "50+",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artifacts) != len(situations) {
		t.Fatalf("got %d artifacts, want %d", len(artifacts), len(situations))
	}
	if gen.imageJobCount() != len(situations) {
		t.Fatalf("submitted %d image jobs, want %d", gen.imageJobCount(), len(situations))
	}
	if len(gen.textCalls) != len(situations) {
		t.Fatalf("submitted %d text jobs, want %d", len(gen.textCalls), len(situations))
	}
	for _, job := range gen.imageJobs {
		if job.AspectRatio != aspectPortrait {
			t.Fatalf("review image aspect = %q, want %q", job.AspectRatio, aspectPortrait)
		}
	}
}
