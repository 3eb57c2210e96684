package repositories

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// ArticleReader defines read operations for catalog articles.
type ArticleReader interface {
	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	ListArticles(ctx context.Context, limit int, offset int) ([]domain.Article, error)
}

// ArticleWriter defines write operations for catalog articles.
type ArticleWriter interface {
	SaveArticle(ctx context.Context, article domain.Article) error
	UpdateArticle(ctx context.Context, article domain.Article) error
	DeleteArticle(ctx context.Context, articleID string) error
}

// ArticleCategoryReader defines read operations for article categories.
type ArticleCategoryReader interface {
	FindArticleCategoryByID(ctx context.Context, categoryID string) (*domain.ArticleCategory, error)
	ListArticleCategories(ctx context.Context, limit int, offset int) ([]domain.ArticleCategory, error)
}

// ArticleCategoryWriter defines write operations for article categories.
type ArticleCategoryWriter interface {
	SaveArticleCategory(ctx context.Context, category domain.ArticleCategory) error
	UpdateArticleCategory(ctx context.Context, category domain.ArticleCategory) error
	DeleteArticleCategory(ctx context.Context, categoryID string) error
}

// ArticleLotReader defines read operations for article lots.
type ArticleLotReader interface {
	FindArticleLotByID(ctx context.Context, lotID string) (*domain.ArticleLot, error)
	ListArticleLots(ctx context.Context, limit int, offset int) ([]domain.ArticleLot, error)
}

// ArticleLotWriter defines write operations for article lots.
type ArticleLotWriter interface {
	SaveArticleLot(ctx context.Context, lot domain.ArticleLot) error
	UpdateArticleLot(ctx context.Context, lot domain.ArticleLot) error
	DeleteArticleLot(ctx context.Context, lotID string) error
}

// ArticleRepositoryFacade combines all article repository interfaces.
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
	ArticleCategoryReader
	ArticleCategoryWriter
	ArticleLotReader
	ArticleLotWriter
}
