package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/google/uuid"
)

// articleService provides catalog article operations.
type articleService struct {
	articleRepo portsrepo.ArticleRepositoryFacade
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo portsrepo.ArticleRepositoryFacade) portssvc.ArticleSvcFacade {
	return &articleService{articleRepo: articleRepo}
}

var _ portssvc.ArticleSvcFacade = (*articleService)(nil)

func (s *articleService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest, creatorUserID string) (*domain.Article, error) {
	now := time.Now().UTC()

	article := domain.Article{
		ArticleID:   uuid.NewString(),
		Designation: req.Designation,
		Category:    req.Category,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		TaxRate:     req.TaxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.articleRepo.SaveArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}
	return &article, nil
}

func (s *articleService) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	return s.articleRepo.FindArticleByID(ctx, articleID)
}

func (s *articleService) ListArticles(ctx context.Context, limit int, offset int) ([]domain.Article, error) {
	return s.articleRepo.ListArticles(ctx, limit, offset)
}

func (s *articleService) UpdateArticle(ctx context.Context, articleID string, req dto.UpdateArticleRequest, userID string) (*domain.Article, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if req.Designation != nil {
		article.Designation = *req.Designation
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Unit != nil {
		article.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		article.UnitPrice = *req.UnitPrice
	}
	if req.TaxRate != nil {
		article.TaxRate = *req.TaxRate
	}
	article.LastUpdatedAt = time.Now().UTC()
	article.LastUpdatedBy = userID

	if err := s.articleRepo.UpdateArticle(ctx, *article); err != nil {
		return nil, fmt.Errorf("failed to update article %s: %w", articleID, err)
	}
	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, articleID string) error {
	return s.articleRepo.DeleteArticle(ctx, articleID)
}

func (s *articleService) CreateArticleCategory(ctx context.Context, req dto.CreateArticleCategoryRequest, creatorUserID string) (*domain.ArticleCategory, error) {
	if req.ParentID != nil {
		if _, err := s.articleRepo.FindArticleCategoryByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("failed to resolve parent category %s: %w", *req.ParentID, err)
		}
	}

	now := time.Now().UTC()
	category := domain.ArticleCategory{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		ParentID:    req.ParentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.articleRepo.SaveArticleCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save article category: %w", err)
	}
	return &category, nil
}

func (s *articleService) ListArticleCategories(ctx context.Context, limit int, offset int) ([]domain.ArticleCategory, error) {
	return s.articleRepo.ListArticleCategories(ctx, limit, offset)
}

func (s *articleService) UpdateArticleCategory(ctx context.Context, categoryID string, req dto.UpdateArticleCategoryRequest, userID string) (*domain.ArticleCategory, error) {
	category, err := s.articleRepo.FindArticleCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.ParentID != nil {
		if _, err := s.articleRepo.FindArticleCategoryByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("failed to resolve parent category %s: %w", *req.ParentID, err)
		}
		category.ParentID = req.ParentID
	}
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = userID

	if err := s.articleRepo.UpdateArticleCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update article category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *articleService) DeleteArticleCategory(ctx context.Context, categoryID string) error {
	return s.articleRepo.DeleteArticleCategory(ctx, categoryID)
}

func (s *articleService) CreateArticleLot(ctx context.Context, req dto.CreateArticleLotRequest, creatorUserID string) (*domain.ArticleLot, error) {
	// A lot must belong to an existing category.
	if _, err := s.articleRepo.FindArticleCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	now := time.Now().UTC()
	lot := domain.ArticleLot{
		LotID:       uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		CategoryID:  req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.articleRepo.SaveArticleLot(ctx, lot); err != nil {
		return nil, fmt.Errorf("failed to save article lot: %w", err)
	}
	return &lot, nil
}

func (s *articleService) ListArticleLots(ctx context.Context, limit int, offset int) ([]domain.ArticleLot, error) {
	return s.articleRepo.ListArticleLots(ctx, limit, offset)
}

func (s *articleService) UpdateArticleLot(ctx context.Context, lotID string, req dto.UpdateArticleLotRequest, userID string) (*domain.ArticleLot, error) {
	lot, err := s.articleRepo.FindArticleLotByID(ctx, lotID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		lot.Name = *req.Name
	}
	if req.Description != nil {
		lot.Description = *req.Description
	}
	if req.Color != nil {
		lot.Color = *req.Color
	}
	if req.Icon != nil {
		lot.Icon = *req.Icon
	}
	if req.CategoryID != nil {
		if _, err := s.articleRepo.FindArticleCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategoryID, err)
		}
		lot.CategoryID = *req.CategoryID
	}
	lot.LastUpdatedAt = time.Now().UTC()
	lot.LastUpdatedBy = userID

	if err := s.articleRepo.UpdateArticleLot(ctx, *lot); err != nil {
		return nil, fmt.Errorf("failed to update article lot %s: %w", lotID, err)
	}
	return lot, nil
}

func (s *articleService) DeleteArticleLot(ctx context.Context, lotID string) error {
	return s.articleRepo.DeleteArticleLot(ctx, lotID)
}
