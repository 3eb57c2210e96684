package mapping

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/models"
)

// ToModelArticle converts a domain Article to a model Article.
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ArticleID:   d.ArticleID,
		Designation: d.Designation,
		Category:    d.Category,
		Unit:        d.Unit,
		UnitPrice:   d.UnitPrice,
		TaxRate:     d.TaxRate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticle converts a model Article to a domain Article.
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ArticleID:   m.ArticleID,
		Designation: m.Designation,
		Category:    m.Category,
		Unit:        m.Unit,
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelArticleCategory converts a domain ArticleCategory to a model ArticleCategory.
func ToModelArticleCategory(d domain.ArticleCategory) models.ArticleCategory {
	return models.ArticleCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Color:       d.Color,
		ParentID:    d.ParentID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticleCategory converts a model ArticleCategory to a domain ArticleCategory.
func ToDomainArticleCategory(m models.ArticleCategory) domain.ArticleCategory {
	return domain.ArticleCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		Color:       m.Color,
		ParentID:    m.ParentID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelArticleLot converts a domain ArticleLot to a model ArticleLot.
func ToModelArticleLot(d domain.ArticleLot) models.ArticleLot {
	return models.ArticleLot{
		LotID:       d.LotID,
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		Icon:        d.Icon,
		CategoryID:  d.CategoryID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticleLot converts a model ArticleLot to a domain ArticleLot.
func ToDomainArticleLot(m models.ArticleLot) domain.ArticleLot {
	return domain.ArticleLot{
		LotID:       m.LotID,
		Name:        m.Name,
		Description: m.Description,
		Color:       m.Color,
		Icon:        m.Icon,
		CategoryID:  m.CategoryID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
