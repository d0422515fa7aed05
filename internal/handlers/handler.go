package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"garment-studio-bot/internal/mediagroup"
	"garment-studio-bot/internal/session"
	"garment-studio-bot/internal/studio"
	"garment-studio-bot/internal/telegram"
)

const studioCallbackPrefix = "st"

type Options struct {
	Telegram *telegram.Client
	Engine   *studio.Engine
	Sessions *session.Store
	Logger   *slog.Logger
}

type Handler struct {
	tg         *telegram.Client
	engine     *studio.Engine
	sessions   *session.Store
	logger     *slog.Logger
	aggregator *mediagroup.Aggregator
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		tg:       opts.Telegram,
		engine:   opts.Engine,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

func (h *Handler) SetAlbumAggregator(ag *mediagroup.Aggregator) {
	h.aggregator = ag
}

func (h *Handler) HandleUpdate(ctx context.Context, update telegram.Update) error {
	if update.CallbackQuery != nil {
		return h.handleCallback(ctx, update.CallbackQuery)
	}

	if update.Message == nil {
		return nil
	}

	msg := update.Message
	chatID := msg.Chat.ID
	userID := msg.From.ID

	if msg.IsCommand() {
		return h.handleCommand(ctx, chatID, userID, msg)
	}

	if len(msg.Photo) > 0 {
		return h.handlePhoto(ctx, chatID, userID, msg)
	}

	if msg.Text != "" {
		return h.handleText(ctx, chatID, userID, msg)
	}

	return nil
}

// HandleAlbum resolves a debounced album upload: the first photo of the
// album becomes the reference asset.
func (h *Handler) HandleAlbum(ctx context.Context, album mediagroup.Album) {
	if len(album.FileIDs) == 0 {
		return
	}
	if err := h.setReferencePhoto(ctx, album.ChatID, album.UserID, album.FileIDs[0], len(album.FileIDs)); err != nil {
		h.logger.Error("album processing failed", "err", err)
	}
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, userID int64, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return h.tg.SendText(chatID,
			"Garment Studio\n\n"+
				"Send a photo of your product and I will generate marketplace-ready "+
				"shots: on-model, flatlay, macro, ghost mannequin, styled scenes, and promo ads.\n\n"+
				"Commands:\n"+
				"/slogan <text> - set promo overlay text (empty to clear)\n"+
				"/reviews a; b; c - generate customer-review photos for situations\n"+
				"/results - show what has been generated\n"+
				"/clear - drop all results\n"+
				"/help - details",
		)
	case "help":
		return h.tg.SendText(chatID,
			"1. Send one product photo (albums work too, the first photo is used).\n"+
				"2. Pick a category from the keyboard to generate a batch.\n"+
				"3. Re-picking a category replaces its previous batch.\n"+
				"4. Reply to any generated photo with feedback text to correct it "+
				fmt.Sprintf("(up to %d corrections per photo).\n", studio.MaxCorrections)+
				"5. /reviews fishing at the lake; walking in the park lang=en age=40-50 gender=female",
		)
	case "slogan":
		slogan := strings.TrimSpace(msg.CommandArguments())
		h.sessions.Update(chatID, userID, func(st *session.State) { st.Slogan = slogan })
		if slogan == "" {
			return h.tg.SendText(chatID, "Promo overlay cleared. Promo shots will contain no text.")
		}
		return h.tg.SendText(chatID, fmt.Sprintf("Promo overlay set to %q.", slogan))
	case "reviews":
		return h.handleReviews(ctx, chatID, userID, msg.CommandArguments())
	case "results":
		return h.sendResultsSummary(chatID, userID)
	case "clear":
		h.sessions.Update(chatID, userID, func(st *session.State) {
			st.Results = nil
			st.ArtifactByMessage = make(map[int]string)
		})
		return h.tg.SendText(chatID, "Results cleared.")
	default:
		return h.tg.SendText(chatID, "Unknown command. Try /help.")
	}
}

func (h *Handler) handlePhoto(ctx context.Context, chatID int64, userID int64, msg *tgbotapi.Message) error {
	photo := msg.Photo[len(msg.Photo)-1]

	if msg.MediaGroupID != "" && h.aggregator != nil {
		h.aggregator.Add(mediagroup.Photo{
			ChatID:       chatID,
			UserID:       userID,
			Username:     msg.From.UserName,
			MediaGroupID: msg.MediaGroupID,
			Caption:      msg.Caption,
			FileID:       photo.FileID,
		})
		return nil
	}

	return h.setReferencePhoto(ctx, chatID, userID, photo.FileID, 1)
}

func (h *Handler) setReferencePhoto(ctx context.Context, chatID int64, userID int64, fileID string, albumSize int) error {
	base64Data, mimeType, err := h.tg.DownloadFileBase64(ctx, fileID)
	if err != nil {
		h.logger.Error("reference photo download failed", "err", err)
		return h.tg.SendText(chatID, "Could not download the photo. Please try again.")
	}

	h.sessions.Update(chatID, userID, func(st *session.State) {
		st.Source = &studio.SourceAsset{DataBase64: base64Data, MimeType: mimeType}
	})

	text := "Reference photo saved. Pick a category:"
	if albumSize > 1 {
		text = fmt.Sprintf("Album received, using the first of %d photos as reference. Pick a category:", albumSize)
	}

	_, err = h.tg.SendTextWithKeyboard(chatID, text, categoryKeyboard(userID))
	return err
}

func (h *Handler) handleText(ctx context.Context, chatID int64, userID int64, msg *tgbotapi.Message) error {
	if msg.ReplyToMessage != nil {
		st := h.sessions.Get(chatID, userID)
		if id, ok := st.ArtifactByMessage[msg.ReplyToMessage.MessageID]; ok {
			return h.handleCorrection(ctx, chatID, userID, id, msg.Text)
		}
	}

	return h.tg.SendText(chatID,
		"Send a product photo to start, or reply to a generated photo with feedback to correct it.")
}

func (h *Handler) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if q.Message == nil {
		return nil
	}
	data := strings.TrimSpace(q.Data)
	if !strings.HasPrefix(data, studioCallbackPrefix+":") {
		return nil
	}

	parts := strings.Split(data, ":")
	if len(parts) < 4 {
		return nil
	}

	ownerID, action, arg := parts[1], parts[2], parts[3]
	if ownerID != fmt.Sprintf("%d", q.From.ID) {
		return h.tg.AnswerCallback(q.ID, "This menu belongs to another user.", true)
	}

	chatID := q.Message.Chat.ID

	switch action {
	case "gen":
		_ = h.tg.AnswerCallback(q.ID, "Generating...", false)
		return h.generateCategory(ctx, chatID, q.From.ID, studio.Category(arg))
	default:
		return h.tg.AnswerCallback(q.ID, "OK", false)
	}
}

func (h *Handler) generateCategory(ctx context.Context, chatID int64, userID int64, category studio.Category) error {
	st := h.sessions.Get(chatID, userID)
	if st.Source == nil {
		return h.tg.SendText(chatID, "Send a product photo first.")
	}

	variantCount := len(studio.VariantsFor(category))
	if variantCount == 0 {
		return h.tg.SendText(chatID, "Unknown category.")
	}

	h.tg.SendUploadingPhoto(chatID)
	_ = h.tg.SendText(chatID, fmt.Sprintf("Generating %d %s shots, this can take a while...", variantCount, category))

	artifacts, err := h.engine.GenerateCategory(ctx, *st.Source, category, studio.RenderContext{Overlay: st.Slogan})
	if err != nil {
		h.logger.Error("category generation failed", "category", category, "err", err)
		return h.tg.SendText(chatID, "Generation failed. Please try again.")
	}
	if len(artifacts) == 0 {
		return h.tg.SendText(chatID, "Nothing was generated this time. Try the category again.")
	}

	h.sessions.Update(chatID, userID, func(s *session.State) {
		s.Results = studio.Merge(s.Results, category, artifacts)
	})

	if err := h.sendArtifacts(chatID, userID, artifacts); err != nil {
		return err
	}

	summary := fmt.Sprintf("Done: %d of %d %s shots. Reply to any photo with feedback to correct it.",
		len(artifacts), variantCount, category)
	return h.tg.SendText(chatID, summary)
}

func (h *Handler) handleReviews(ctx context.Context, chatID int64, userID int64, args string) error {
	st := h.sessions.Get(chatID, userID)
	if st.Source == nil {
		return h.tg.SendText(chatID, "Send a product photo first.")
	}

	req, err := parseReviewArgs(args, st)
	if err != nil {
		return h.tg.SendText(chatID,
			"List the situations separated by semicolons, e.g.:\n"+
				"/reviews fishing at the lake; at the gym; walking in the park lang=en age=40-50")
	}

	h.sessions.Update(chatID, userID, func(s *session.State) {
		s.ReviewLanguage = req.Language
		s.AgeBracket = req.AgeBracket
		s.Gender = req.Gender
	})

	h.tg.SendUploadingPhoto(chatID)
	_ = h.tg.SendText(chatID, fmt.Sprintf("Generating %d review photos...", len(req.Situations)))

	artifacts, err := h.engine.GenerateReviews(ctx, *st.Source, req)
	if err != nil {
		h.logger.Error("review generation failed", "err", err)
		return h.tg.SendText(chatID, "Review generation failed. Please try again.")
	}
	if len(artifacts) == 0 {
		return h.tg.SendText(chatID, "No review photos came out. Try again or change the situations.")
	}

	h.sessions.Update(chatID, userID, func(s *session.State) {
		s.Results = studio.Merge(s.Results, studio.CategoryReview, artifacts)
	})

	return h.sendArtifacts(chatID, userID, artifacts)
}

func (h *Handler) handleCorrection(ctx context.Context, chatID int64, userID int64, artifactID string, feedback string) error {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return h.tg.SendText(chatID, "Describe what to change, e.g. \"make it brighter\".")
	}

	st := h.sessions.Get(chatID, userID)
	if st.Source == nil {
		return h.tg.SendText(chatID, "The reference photo is gone. Send it again first.")
	}

	original, ok := st.FindArtifact(artifactID)
	if !ok {
		return h.tg.SendText(chatID, "That photo is no longer in the results (its category was regenerated).")
	}
	if original.CorrectionsExhausted() {
		return h.tg.SendText(chatID,
			fmt.Sprintf("This photo already used all %d corrections. Regenerate the category instead.", studio.MaxCorrections))
	}

	h.tg.SendUploadingPhoto(chatID)

	corrected, err := h.engine.Correct(ctx, *st.Source, original, feedback)
	if err != nil {
		h.logger.Error("correction failed", "artifact", artifactID, "err", err)
		return h.tg.SendText(chatID, "The correction failed. Please try different feedback.")
	}

	h.sessions.Update(chatID, userID, func(s *session.State) {
		for i := range s.Results {
			if s.Results[i].ID == original.ID {
				s.Results[i] = corrected
				break
			}
		}
	})

	caption := fmt.Sprintf("%s (correction %d/%d)", corrected.Description, corrected.CorrectionCount, studio.MaxCorrections)
	msgID, err := h.tg.SendPhotoDataURL(chatID, corrected.ImageURL, caption)
	if err != nil {
		return err
	}

	h.sessions.Update(chatID, userID, func(s *session.State) {
		s.ArtifactByMessage[msgID] = corrected.ID
	})
	return nil
}

func (h *Handler) sendArtifacts(chatID int64, userID int64, artifacts []studio.Artifact) error {
	for _, a := range artifacts {
		caption := a.Description
		if a.TextNote != "" {
			caption += "\n\n" + a.TextNote
		}

		msgID, err := h.tg.SendPhotoDataURL(chatID, a.ImageURL, caption)
		if err != nil {
			return err
		}

		id := a.ID
		h.sessions.Update(chatID, userID, func(s *session.State) {
			s.ArtifactByMessage[msgID] = id
		})
	}
	return nil
}

func (h *Handler) sendResultsSummary(chatID int64, userID int64) error {
	st := h.sessions.Get(chatID, userID)
	groups := studio.GroupForDisplay(st.Results)
	if len(groups) == 0 {
		return h.tg.SendText(chatID, "Nothing generated yet. Send a product photo and pick a category.")
	}

	var b strings.Builder
	b.WriteString("Generated so far:\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\n%s (%d):\n", g.Category, len(g.Artifacts))
		for _, a := range g.Artifacts {
			fmt.Fprintf(&b, "- %s", a.Description)
			if a.CorrectionCount > 0 {
				fmt.Fprintf(&b, " (corrected %dx)", a.CorrectionCount)
			}
			b.WriteString("\n")
		}
	}
	return h.tg.SendText(chatID, b.String())
}

func parseReviewArgs(raw string, st session.State) (studio.ReviewRequest, error) {
	req := studio.ReviewRequest{
		Language:   st.ReviewLanguage,
		AgeBracket: st.AgeBracket,
		Gender:     st.Gender,
	}

	var kept []string
	for _, tok := range strings.Fields(raw) {
		lower := strings.ToLower(tok)
		switch {
		case strings.HasPrefix(lower, "lang="):
			if v := strings.TrimPrefix(lower, "lang="); v == "uk" || v == "en" || v == "ru" {
				req.Language = v
			}
		case strings.HasPrefix(lower, "age="):
			if v := strings.TrimPrefix(lower, "age="); v == "30-40" || v == "40-50" || v == "50+" {
				req.AgeBracket = v
			}
		case strings.HasPrefix(lower, "gender="):
			if v := strings.TrimPrefix(lower, "gender="); v == "male" || v == "female" {
				req.Gender = v
			}
		default:
			kept = append(kept, tok)
		}
	}

	for _, s := range strings.Split(strings.Join(kept, " "), ";") {
		if s = strings.TrimSpace(s); s != "" {
			req.Situations = append(req.Situations, s)
		}
	}
	if len(req.Situations) == 0 {
		return studio.ReviewRequest{}, fmt.Errorf("no situations given")
	}
	return req, nil
}

func categoryKeyboard(ownerID int64) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, c := range studio.ProductCategories() {
		label := fmt.Sprintf("%s (%d)", c, len(studio.VariantsFor(c)))
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, cb(ownerID, "gen", string(c))))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func cb(ownerID int64, parts ...string) string {
	return fmt.Sprintf("%s:%d:%s", studioCallbackPrefix, ownerID, strings.Join(parts, ":"))
}
