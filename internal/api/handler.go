package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idea-agent/internal/models"
	"github.com/idea-agent/internal/render"
	"github.com/idea-agent/pkg/logger"
)

// IdeaGenerator is the part of ideas.Generator the API needs
type IdeaGenerator interface {
	Generate(ctx context.Context, topic string, category models.Category) *models.Batch
	LiveEnabled() bool
	Provider() string
}

// Handler serves the idea endpoints
type Handler struct {
	generator IdeaGenerator
	validate  *validator.Validate
	log       *logger.Logger
}

// NewHandler creates a handler
func NewHandler(generator IdeaGenerator, log *logger.Logger) *Handler {
	return &Handler{
		generator: generator,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log.WithComponent("api"),
	}
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CategoryResponse describes one category
type CategoryResponse struct {
	ID          models.Category `json:"id"`
	Description string          `json:"description"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status         string `json:"status"`
	LiveGeneration bool   `json:"live_generation"`
	Provider       string `json:"provider,omitempty"`
}

type ideasQuery struct {
	Topic    string `validate:"required,max=200"`
	Category string `validate:"omitempty,oneof=all humor tech finance fitness education lifestyle"`
	Format   string `validate:"omitempty,oneof=json html"`
}

// GET /api/ideas?topic=&category=&format=
func (h *Handler) GetIdeas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := ideasQuery{
		Topic:    strings.TrimSpace(q.Get("topic")),
		Category: strings.ToLower(strings.TrimSpace(q.Get("category"))),
		Format:   strings.ToLower(strings.TrimSpace(q.Get("format"))),
	}

	if err := h.validate.Struct(query); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", validationMessage(err))
		return
	}

	category, err := models.ParseCategory(query.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	batch := h.generator.Generate(r.Context(), query.Topic, category)

	if query.Format == string(render.FormatHTML) {
		html, err := render.HTML(batch)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to render ideas")
			writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
		return
	}

	writeJSON(w, http.StatusOK, batch)
}

// GET /api/categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]CategoryResponse, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, CategoryResponse{ID: c, Description: c.Description()})
	}
	writeJSON(w, http.StatusOK, categories)
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:         "ok",
		LiveGeneration: h.generator.LiveEnabled(),
		Provider:       h.generator.Provider(),
	})
}

// validationMessage turns validator errors into a short client message
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
