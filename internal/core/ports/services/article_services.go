package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// ArticleSvcFacade defines the operations for managing catalog articles,
// their categories and lots.
type ArticleSvcFacade interface {
	CreateArticle(ctx context.Context, req dto.CreateArticleRequest, creatorUserID string) (*domain.Article, error)
	GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	ListArticles(ctx context.Context, limit int, offset int) ([]domain.Article, error)
	UpdateArticle(ctx context.Context, articleID string, req dto.UpdateArticleRequest, userID string) (*domain.Article, error)
	DeleteArticle(ctx context.Context, articleID string) error

	CreateArticleCategory(ctx context.Context, req dto.CreateArticleCategoryRequest, creatorUserID string) (*domain.ArticleCategory, error)
	ListArticleCategories(ctx context.Context, limit int, offset int) ([]domain.ArticleCategory, error)
	UpdateArticleCategory(ctx context.Context, categoryID string, req dto.UpdateArticleCategoryRequest, userID string) (*domain.ArticleCategory, error)
	DeleteArticleCategory(ctx context.Context, categoryID string) error

	// CreateArticleLot creates a lot inside an existing category.
	CreateArticleLot(ctx context.Context, req dto.CreateArticleLotRequest, creatorUserID string) (*domain.ArticleLot, error)
	ListArticleLots(ctx context.Context, limit int, offset int) ([]domain.ArticleLot, error)
	UpdateArticleLot(ctx context.Context, lotID string, req dto.UpdateArticleLotRequest, userID string) (*domain.ArticleLot, error)
	DeleteArticleLot(ctx context.Context, lotID string) error
}
