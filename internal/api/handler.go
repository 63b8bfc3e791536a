package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"news_curator/internal/domain"
)

// Curator is the application surface the handlers drive.
type Curator interface {
	Refresh(ctx context.Context) (int, error)
	Recommend(ctx context.Context) ([]domain.Article, error)
	RecordFeedback(ctx context.Context, id string, helpful bool, reason string) error
	Interests() []domain.Category
	SetInterests(tags []domain.Category) error
	Persona() domain.UserPersona
}

type Handler struct {
	curator Curator
}

func NewHandler(curator Curator) *Handler {
	return &Handler{curator: curator}
}

type RefreshResponse struct {
	New int `json:"new"`
}

type FeedbackRequest struct {
	Helpful *bool  `json:"helpful"`
	Reason  string `json:"reason"`
}

type InterestsBody struct {
	Tags []domain.Category `json:"tags"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Refresh(c echo.Context) error {
	n, err := h.curator.Refresh(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "refresh failed").SetInternal(err)
	}
	return c.JSON(http.StatusOK, RefreshResponse{New: n})
}

func (h *Handler) Recommendations(c echo.Context) error {
	articles, err := h.curator.Recommend(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "recommendation failed").SetInternal(err)
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *Handler) Feedback(c echo.Context) error {
	id, err := url.PathUnescape(c.Param("id"))
	if err != nil || id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Helpful == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "helpful is required")
	}

	err = h.curator.RecordFeedback(c.Request().Context(), id, *req.Helpful, strings.TrimSpace(req.Reason))
	if errors.Is(err, domain.ErrArticleNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "feedback failed").SetInternal(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetInterests(c echo.Context) error {
	tags := h.curator.Interests()
	if tags == nil {
		tags = []domain.Category{}
	}
	return c.JSON(http.StatusOK, InterestsBody{Tags: tags})
}

func (h *Handler) PutInterests(c echo.Context) error {
	var body InterestsBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tags := make([]domain.Category, 0, len(body.Tags))
	for _, t := range body.Tags {
		tags = append(tags, domain.ParseCategory(string(t)))
	}

	if err := h.curator.SetInterests(tags); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "saving interests failed").SetInternal(err)
	}
	return c.JSON(http.StatusOK, InterestsBody{Tags: h.curator.Interests()})
}

func (h *Handler) Persona(c echo.Context) error {
	return c.JSON(http.StatusOK, h.curator.Persona())
}
