package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boardhub/board-api/internal/api/metrics"
	"github.com/boardhub/board-api/internal/core/ports"
)

// ArticleHandler exposes the board CRUD routes. Every route sits behind the
// access gate; ownership checks happen in the service where the stored
// record's author is known.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /api/articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Article
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.service.Create(c.Request().Context(), identity, ports.CreateArticleInput{
		Title:    req.Title,
		Contents: req.Contents,
	})
	if err != nil {
		return err
	}

	metrics.ArticlesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, article)
}

// List handles GET /api/articles.
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// ListMine handles GET /api/articles/my, the caller's own articles.
func (h *ArticleHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	articles, err := h.service.ListMine(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// GetByID handles GET /api/articles/:id.
func (h *ArticleHandler) GetByID(c echo.Context) error {
	article, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Search handles GET /api/articles/search?author=<keyword>.
func (h *ArticleHandler) Search(c echo.Context) error {
	articles, err := h.service.SearchByAuthor(c.Request().Context(), c.QueryParam("author"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Update handles PUT /api/articles/:id. Owner or admin only.
func (h *ArticleHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), ports.UpdateArticleInput{
		Title:    req.Title,
		Contents: req.Contents,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// UpdateStatus handles PATCH /api/articles/:id/status. Admin only, enforced
// by the route's requirement.
func (h *ArticleHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/articles/:id. Owner or admin only.
func (h *ArticleHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
