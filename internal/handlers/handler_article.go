package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ediba/backoffice_app/internal/apperrors"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// articleHandler handles HTTP requests related to catalog articles.
type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

// newArticleHandler creates a new articleHandler.
func newArticleHandler(as portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{
		articleService: as,
	}
}

// registerArticleRoutes registers all article-related routes.
func registerArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade) {
	h := newArticleHandler(articleService)

	articles := rg.Group("/articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("", h.listArticles)
		articles.GET("/:articleID", h.getArticle)
		articles.PUT("/:articleID", h.updateArticle)
		articles.DELETE("/:articleID", h.deleteArticle)
	}

	categories := rg.Group("/article-categories")
	{
		categories.POST("", h.createArticleCategory)
		categories.GET("", h.listArticleCategories)
		categories.PUT("/:categoryID", h.updateArticleCategory)
		categories.DELETE("/:categoryID", h.deleteArticleCategory)
	}

	lots := rg.Group("/article-lots")
	{
		lots.POST("", h.createArticleLot)
		lots.GET("", h.listArticleLots)
		lots.PUT("/:lotID", h.updateArticleLot)
		lots.DELETE("/:lotID", h.deleteArticleLot)
	}
}

// createArticle godoc
// @Summary Create a new article
// @Description Adds an article to the catalog
// @Tags articles
// @Accept  json
// @Produce  json
// @Param   article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create article"
// @Security BearerAuth
// @Router /articles [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create article request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create article in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	logger.Info("Article created", slog.String("article_id", article.ArticleID))
	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// listArticles godoc
// @Summary List articles
// @Description Retrieves catalog articles with pagination
// @Tags articles
// @Produce  json
// @Param   limit query int false "Max results (default 50)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListArticlesResponse
// @Failure 500 {object} map[string]string "Failed to list articles"
// @Security BearerAuth
// @Router /articles [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	articles, err := h.articleService.ListArticles(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list articles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListArticlesResponse(articles))
}

// getArticle godoc
// @Summary Get an article by ID
// @Description Retrieves details for a specific catalog article
// @Tags articles
// @Produce  json
// @Param   articleID path string true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 500 {object} map[string]string "Failed to retrieve article"
// @Security BearerAuth
// @Router /articles/{articleID} [get]
func (h *articleHandler) getArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("articleID")

	article, err := h.articleService.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		logger.Error("Failed to get article", slog.String("error", err.Error()), slog.String("article_id", articleID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve article"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// updateArticle godoc
// @Summary Update an article
// @Description Applies a partial update to a catalog article
// @Tags articles
// @Accept  json
// @Produce  json
// @Param   articleID path string true "Article ID"
// @Param   article body dto.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 500 {object} map[string]string "Failed to update article"
// @Security BearerAuth
// @Router /articles/{articleID} [put]
func (h *articleHandler) updateArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("articleID")

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update article request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), articleID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		logger.Error("Failed to update article", slog.String("error", err.Error()), slog.String("article_id", articleID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	logger.Info("Article updated", slog.String("article_id", articleID))
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deleteArticle godoc
// @Summary Delete an article
// @Description Removes an article from the catalog
// @Tags articles
// @Produce  json
// @Param   articleID path string true "Article ID"
// @Success 204 "Article deleted"
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 500 {object} map[string]string "Failed to delete article"
// @Security BearerAuth
// @Router /articles/{articleID} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("articleID")

	if err := h.articleService.DeleteArticle(c.Request.Context(), articleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		logger.Error("Failed to delete article", slog.String("error", err.Error()), slog.String("article_id", articleID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}

	logger.Info("Article deleted", slog.String("article_id", articleID))
	c.Status(http.StatusNoContent)
}

// createArticleCategory godoc
// @Summary Create an article category
// @Description Adds a category to the catalog; a parent category may be referenced for nesting
// @Tags article-categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateArticleCategoryRequest true "Category details"
// @Success 201 {object} dto.ArticleCategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parent category not found"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Security BearerAuth
// @Router /article-categories [post]
func (h *articleHandler) createArticleCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateArticleCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.articleService.CreateArticleCategory(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent category not found"})
			return
		}
		logger.Error("Failed to create article category in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	logger.Info("Article category created", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToArticleCategoryResponse(category))
}

// listArticleCategories godoc
// @Summary List article categories
// @Description Retrieves catalog categories with pagination
// @Tags article-categories
// @Produce  json
// @Param   limit query int false "Max results (default 50)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListArticleCategoriesResponse
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /article-categories [get]
func (h *articleHandler) listArticleCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	categories, err := h.articleService.ListArticleCategories(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list article categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListArticleCategoriesResponse(categories))
}

// updateArticleCategory godoc
// @Summary Update an article category
// @Description Applies a partial update to a category's mutable fields
// @Tags article-categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateArticleCategoryRequest true "Fields to update"
// @Success 200 {object} dto.ArticleCategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to update category"
// @Security BearerAuth
// @Router /article-categories/{categoryID} [put]
func (h *articleHandler) updateArticleCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.UpdateArticleCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update category request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.articleService.UpdateArticleCategory(c.Request.Context(), categoryID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		logger.Error("Failed to update article category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	logger.Info("Article category updated", slog.String("category_id", categoryID))
	c.JSON(http.StatusOK, dto.ToArticleCategoryResponse(category))
}

// deleteArticleCategory godoc
// @Summary Delete an article category
// @Description Removes a category; lots inside it are removed as well
// @Tags article-categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 204 "Category deleted"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Security BearerAuth
// @Router /article-categories/{categoryID} [delete]
func (h *articleHandler) deleteArticleCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	if err := h.articleService.DeleteArticleCategory(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		logger.Error("Failed to delete article category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	logger.Info("Article category deleted", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}

// createArticleLot godoc
// @Summary Create an article lot
// @Description Adds a lot inside an existing category
// @Tags article-lots
// @Accept  json
// @Produce  json
// @Param   lot body dto.CreateArticleLotRequest true "Lot details"
// @Success 201 {object} dto.ArticleLotResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to create lot"
// @Security BearerAuth
// @Router /article-lots [post]
func (h *articleHandler) createArticleLot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateArticleLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create lot request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lot, err := h.articleService.CreateArticleLot(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		logger.Error("Failed to create article lot in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lot"})
		return
	}

	logger.Info("Article lot created", slog.String("lot_id", lot.LotID))
	c.JSON(http.StatusCreated, dto.ToArticleLotResponse(lot))
}

// listArticleLots godoc
// @Summary List article lots
// @Description Retrieves lots with pagination
// @Tags article-lots
// @Produce  json
// @Param   limit query int false "Max results (default 50)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListArticleLotsResponse
// @Failure 500 {object} map[string]string "Failed to list lots"
// @Security BearerAuth
// @Router /article-lots [get]
func (h *articleHandler) listArticleLots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	lots, err := h.articleService.ListArticleLots(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list article lots", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list lots"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListArticleLotsResponse(lots))
}

// updateArticleLot godoc
// @Summary Update an article lot
// @Description Applies a partial update to a lot; moving it validates the target category
// @Tags article-lots
// @Accept  json
// @Produce  json
// @Param   lotID path string true "Lot ID"
// @Param   lot body dto.UpdateArticleLotRequest true "Fields to update"
// @Success 200 {object} dto.ArticleLotResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Lot not found"
// @Failure 500 {object} map[string]string "Failed to update lot"
// @Security BearerAuth
// @Router /article-lots/{lotID} [put]
func (h *articleHandler) updateArticleLot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lotID := c.Param("lotID")

	var req dto.UpdateArticleLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update lot request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lot, err := h.articleService.UpdateArticleLot(c.Request.Context(), lotID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lot not found"})
			return
		}
		logger.Error("Failed to update article lot", slog.String("error", err.Error()), slog.String("lot_id", lotID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lot"})
		return
	}

	logger.Info("Article lot updated", slog.String("lot_id", lotID))
	c.JSON(http.StatusOK, dto.ToArticleLotResponse(lot))
}

// deleteArticleLot godoc
// @Summary Delete an article lot
// @Description Removes a lot permanently
// @Tags article-lots
// @Produce  json
// @Param   lotID path string true "Lot ID"
// @Success 204 "Lot deleted"
// @Failure 404 {object} map[string]string "Lot not found"
// @Failure 500 {object} map[string]string "Failed to delete lot"
// @Security BearerAuth
// @Router /article-lots/{lotID} [delete]
func (h *articleHandler) deleteArticleLot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lotID := c.Param("lotID")

	if err := h.articleService.DeleteArticleLot(c.Request.Context(), lotID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lot not found"})
			return
		}
		logger.Error("Failed to delete article lot", slog.String("error", err.Error()), slog.String("lot_id", lotID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lot"})
		return
	}

	logger.Info("Article lot deleted", slog.String("lot_id", lotID))
	c.Status(http.StatusNoContent)
}
