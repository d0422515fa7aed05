package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const reviewTextFallback = "Great quality!"

// ImageJob is one generation request handed to the Generator. Current is set
// only for corrections, where the job references both the original source
// asset and the artifact being corrected.
type ImageJob struct {
	Instruction string
	AspectRatio string
	Temperature float64
	Source      SourceAsset
	Current     *SourceAsset
}

// Generator is the external model boundary. GenerateImage returns a data URL
// for the produced image; an empty result from a nominally successful call is
// treated by the engine as a failure.
type Generator interface {
	GenerateImage(ctx context.Context, job ImageJob) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Options struct {
	Generator     Generator
	Logger        *slog.Logger
	MaxConcurrent int
}

// Engine expands semantic requests into bounded concurrent generation jobs
// and assembles the surviving artifacts. It holds no state between calls.
type Engine struct {
	gen    Generator
	logger *slog.Logger
	limit  int
}

func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	limit := opts.MaxConcurrent
	if limit < 1 {
		limit = 4
	}

	return &Engine{
		gen:    opts.Generator,
		logger: logger,
		limit:  limit,
	}
}

// GenerateCategory runs one job per catalog variant of the category and
// returns the artifacts that survived. Each variant gets exactly one
// attempt; per-job failures are logged and dropped. An unknown category
// yields an empty result, not an error.
func (e *Engine) GenerateCategory(ctx context.Context, source SourceAsset, category Category, rc RenderContext) ([]Artifact, error) {
	defs := VariantsFor(category)
	if len(defs) == 0 {
		return nil, nil
	}

	results := make([]*Artifact, len(defs))

	eg, jobCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.limit)
	for i, def := range defs {
		i, def := i, def
		eg.Go(func() error {
			job := ImageJob{
				Instruction: RenderInstruction(def, rc),
				AspectRatio: def.Aspect,
				Source:      source,
			}

			url, err := e.gen.GenerateImage(jobCtx, job)
			if err != nil {
				e.logger.Error("variant generation failed", "category", category, "variant", def.Tag, "err", err)
				return nil
			}
			if url == "" {
				e.logger.Error("variant returned no image", "category", category, "variant", def.Tag)
				return nil
			}

			artifact := Artifact{
				ID:          uuid.NewString(),
				ImageURL:    url,
				Category:    def.Category,
				Variant:     def.Tag,
				Description: def.Description,
			}
			if def.Category == CategoryPromo {
				artifact.Overlay = strings.TrimSpace(rc.Overlay)
			}
			results[i] = &artifact
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Artifact, 0, len(defs))
	for _, a := range results {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

// Correct runs a single regeneration job against one artifact, guided by
// free-text feedback. It is the one path that surfaces a job failure to the
// caller. The correction ceiling is enforced by the caller, not here.
func (e *Engine) Correct(ctx context.Context, source SourceAsset, original Artifact, feedback string) (Artifact, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return Artifact{}, errors.New("feedback text is empty")
	}

	aspect := aspectSquare
	if original.Category == CategoryReview {
		aspect = aspectPortrait
	}

	job := ImageJob{
		Instruction: CorrectionInstruction(feedback),
		AspectRatio: aspect,
		Temperature: 0.8,
		Source:      source,
		Current: &SourceAsset{
			DataBase64: original.ImageURL,
			MimeType:   "image/png",
		},
	}

	url, err := e.gen.GenerateImage(ctx, job)
	if err != nil {
		return Artifact{}, fmt.Errorf("correction job: %w", err)
	}
	if url == "" {
		return Artifact{}, errors.New("correction job returned no image")
	}

	corrected := original
	corrected.ID = uuid.NewString()
	corrected.ImageURL = url
	corrected.CorrectionCount = original.CorrectionCount + 1
	return corrected, nil
}

// GenerateReviews issues an image job and a text job per situation. The
// image is the primary deliverable: its failure drops the situation, while
// a text failure degrades to a fixed fallback note.
func (e *Engine) GenerateReviews(ctx context.Context, source SourceAsset, req ReviewRequest) ([]Artifact, error) {
	situations := make([]string, 0, len(req.Situations))
	for _, s := range req.Situations {
		if s = strings.TrimSpace(s); s != "" {
			situations = append(situations, s)
		}
	}
	if len(situations) == 0 {
		return nil, errors.New("at least one situation is required")
	}

	results := make([]*Artifact, len(situations))

	eg, batchCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.limit)
	for i, situation := range situations {
		i, situation := i, situation
		eg.Go(func() error {
			persona := AllocatePersona(i, situation, req.Gender)

			var (
				imageURL string
				imageErr error
				textNote string
			)

			pair, pairCtx := errgroup.WithContext(batchCtx)
			pair.Go(func() error {
				imageURL, imageErr = e.gen.GenerateImage(pairCtx, ImageJob{
					Instruction: ReviewImageInstruction(situation, persona, req),
					AspectRatio: aspectPortrait,
					Temperature: 0.9,
					Source:      source,
				})
				return nil
			})
			pair.Go(func() error {
				text, err := e.gen.GenerateText(pairCtx, ReviewTextInstruction(situation, req))
				if err != nil {
					e.logger.Warn("review text job failed", "situation", situation, "err", err)
					return nil
				}
				textNote = strings.TrimSpace(text)
				return nil
			})
			_ = pair.Wait()

			if imageErr != nil {
				e.logger.Error("review image job failed", "situation", situation, "err", imageErr)
				return nil
			}
			if imageURL == "" {
				e.logger.Error("review image job returned no image", "situation", situation)
				return nil
			}
			if textNote == "" {
				textNote = reviewTextFallback
			}

			results[i] = &Artifact{
				ID:          uuid.NewString(),
				ImageURL:    imageURL,
				Category:    CategoryReview,
				Variant:     string(CategoryReview),
				Description: situation,
				TextNote:    textNote,
			}
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Artifact, 0, len(situations))
	for _, a := range results {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}
