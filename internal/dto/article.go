package dto

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateArticleRequest defines the data needed to create a catalog article.
type CreateArticleRequest struct {
	Designation string          `json:"designation" binding:"required"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// UpdateArticleRequest defines the data allowed for updating an article.
type UpdateArticleRequest struct {
	Designation *string          `json:"designation"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
}

// ArticleResponse defines the data returned for an article.
type ArticleResponse struct {
	ArticleID   string          `json:"articleID"`
	Designation string          `json:"designation"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// ToArticleResponse converts a domain.Article to ArticleResponse DTO.
func ToArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:   a.ArticleID,
		Designation: a.Designation,
		Category:    a.Category,
		Unit:        a.Unit,
		UnitPrice:   a.UnitPrice,
		TaxRate:     a.TaxRate,
	}
}

// ListArticlesResponse wraps the list of articles.
type ListArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

// ToListArticlesResponse converts a slice of domain.Article to ListArticlesResponse.
func ToListArticlesResponse(articles []domain.Article) ListArticlesResponse {
	responses := make([]ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = ToArticleResponse(&articles[i])
	}
	return ListArticlesResponse{Articles: responses}
}

// CreateArticleCategoryRequest defines the data needed to create a category.
type CreateArticleCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	ParentID    *string `json:"parentID"`
}

// UpdateArticleCategoryRequest defines the mutable fields of a category.
type UpdateArticleCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	ParentID    *string `json:"parentID"`
}

// ArticleCategoryResponse defines the data returned for a category.
type ArticleCategoryResponse struct {
	CategoryID  string  `json:"categoryID"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Color       string  `json:"color,omitempty"`
	ParentID    *string `json:"parentID,omitempty"`
}

// ToArticleCategoryResponse converts a domain.ArticleCategory to its DTO.
func ToArticleCategoryResponse(c *domain.ArticleCategory) ArticleCategoryResponse {
	return ArticleCategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		ParentID:    c.ParentID,
	}
}

// ListArticleCategoriesResponse wraps the list of categories.
type ListArticleCategoriesResponse struct {
	Categories []ArticleCategoryResponse `json:"categories"`
}

// ToListArticleCategoriesResponse converts a slice of domain.ArticleCategory to ListArticleCategoriesResponse.
func ToListArticleCategoriesResponse(categories []domain.ArticleCategory) ListArticleCategoriesResponse {
	responses := make([]ArticleCategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToArticleCategoryResponse(&categories[i])
	}
	return ListArticleCategoriesResponse{Categories: responses}
}

// CreateArticleLotRequest defines the data needed to create a lot.
type CreateArticleLotRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	CategoryID  string `json:"categoryID" binding:"required"`
}

// UpdateArticleLotRequest defines the mutable fields of a lot.
type UpdateArticleLotRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	CategoryID  *string `json:"categoryID"`
}

// ArticleLotResponse defines the data returned for a lot.
type ArticleLotResponse struct {
	LotID       string `json:"lotID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	CategoryID  string `json:"categoryID"`
}

// ToArticleLotResponse converts a domain.ArticleLot to its DTO.
func ToArticleLotResponse(l *domain.ArticleLot) ArticleLotResponse {
	return ArticleLotResponse{
		LotID:       l.LotID,
		Name:        l.Name,
		Description: l.Description,
		Color:       l.Color,
		Icon:        l.Icon,
		CategoryID:  l.CategoryID,
	}
}

// ListArticleLotsResponse wraps the list of lots.
type ListArticleLotsResponse struct {
	Lots []ArticleLotResponse `json:"lots"`
}

// ToListArticleLotsResponse converts a slice of domain.ArticleLot to ListArticleLotsResponse.
func ToListArticleLotsResponse(lots []domain.ArticleLot) ListArticleLotsResponse {
	responses := make([]ArticleLotResponse, len(lots))
	for i := range lots {
		responses[i] = ToArticleLotResponse(&lots[i])
	}
	return ListArticleLotsResponse{Lots: responses}
}
