package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	"github.com/ediba/backoffice_app/internal/models"
	"github.com/ediba/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxArticleRepository persists catalog articles.
type PgxArticleRepository struct {
	BaseRepository
}

func newPgxArticleRepository(db *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

const articleColumns = `
	article_id, designation, category, unit, unit_price, tax_rate,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	m := mapping.ToModelArticle(article)
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ArticleID, m.Designation, m.Category, m.Unit, m.UnitPrice, m.TaxRate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save article %s: %w", m.ArticleID, err)
	}
	return nil
}

func (r *PgxArticleRepository) UpdateArticle(ctx context.Context, article domain.Article) error {
	m := mapping.ToModelArticle(article)
	query := `
		UPDATE articles SET
			designation = $2, category = $3, unit = $4, unit_price = $5, tax_rate = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE article_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ArticleID, m.Designation, m.Category, m.Unit, m.UnitPrice, m.TaxRate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update article %s: %w", m.ArticleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM articles WHERE article_id = $1;`, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", articleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE article_id = $1;`

	var m models.Article
	err := r.Pool.QueryRow(ctx, query, articleID).Scan(
		&m.ArticleID, &m.Designation, &m.Category, &m.Unit, &m.UnitPrice, &m.TaxRate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article %s: %w", articleID, err)
	}

	article := mapping.ToDomainArticle(m)
	return &article, nil
}

func (r *PgxArticleRepository) ListArticles(ctx context.Context, limit int, offset int) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY designation ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var m models.Article
		err := rows.Scan(
			&m.ArticleID, &m.Designation, &m.Category, &m.Unit, &m.UnitPrice, &m.TaxRate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, mapping.ToDomainArticle(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, nil
}

const articleCategoryColumns = `
	category_id, name, description, icon, color, parent_id,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxArticleRepository) SaveArticleCategory(ctx context.Context, category domain.ArticleCategory) error {
	m := mapping.ToModelArticleCategory(category)
	query := `
		INSERT INTO article_categories (` + articleCategoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.Name, m.Description, m.Icon, m.Color, m.ParentID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save article category %s: %w", m.CategoryID, err)
	}
	return nil
}

func (r *PgxArticleRepository) UpdateArticleCategory(ctx context.Context, category domain.ArticleCategory) error {
	m := mapping.ToModelArticleCategory(category)
	query := `
		UPDATE article_categories SET
			name = $2, description = $3, icon = $4, color = $5, parent_id = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.Name, m.Description, m.Icon, m.Color, m.ParentID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update article category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) DeleteArticleCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM article_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete article category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) FindArticleCategoryByID(ctx context.Context, categoryID string) (*domain.ArticleCategory, error) {
	query := `SELECT ` + articleCategoryColumns + ` FROM article_categories WHERE category_id = $1;`

	var m models.ArticleCategory
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID, &m.Name, &m.Description, &m.Icon, &m.Color, &m.ParentID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article category %s: %w", categoryID, err)
	}

	category := mapping.ToDomainArticleCategory(m)
	return &category, nil
}

func (r *PgxArticleRepository) ListArticleCategories(ctx context.Context, limit int, offset int) ([]domain.ArticleCategory, error) {
	query := `SELECT ` + articleCategoryColumns + ` FROM article_categories ORDER BY name ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list article categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.ArticleCategory
	for rows.Next() {
		var m models.ArticleCategory
		err := rows.Scan(
			&m.CategoryID, &m.Name, &m.Description, &m.Icon, &m.Color, &m.ParentID,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainArticleCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article category rows: %w", err)
	}
	return categories, nil
}

const articleLotColumns = `
	lot_id, name, description, color, icon, category_id,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxArticleRepository) SaveArticleLot(ctx context.Context, lot domain.ArticleLot) error {
	m := mapping.ToModelArticleLot(lot)
	query := `
		INSERT INTO article_lots (` + articleLotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LotID, m.Name, m.Description, m.Color, m.Icon, m.CategoryID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save article lot %s: %w", m.LotID, err)
	}
	return nil
}

func (r *PgxArticleRepository) UpdateArticleLot(ctx context.Context, lot domain.ArticleLot) error {
	m := mapping.ToModelArticleLot(lot)
	query := `
		UPDATE article_lots SET
			name = $2, description = $3, color = $4, icon = $5, category_id = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE lot_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.LotID, m.Name, m.Description, m.Color, m.Icon, m.CategoryID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update article lot %s: %w", m.LotID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) DeleteArticleLot(ctx context.Context, lotID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM article_lots WHERE lot_id = $1;`, lotID)
	if err != nil {
		return fmt.Errorf("failed to delete article lot %s: %w", lotID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) FindArticleLotByID(ctx context.Context, lotID string) (*domain.ArticleLot, error) {
	query := `SELECT ` + articleLotColumns + ` FROM article_lots WHERE lot_id = $1;`

	var m models.ArticleLot
	err := r.Pool.QueryRow(ctx, query, lotID).Scan(
		&m.LotID, &m.Name, &m.Description, &m.Color, &m.Icon, &m.CategoryID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article lot %s: %w", lotID, err)
	}

	lot := mapping.ToDomainArticleLot(m)
	return &lot, nil
}

func (r *PgxArticleRepository) ListArticleLots(ctx context.Context, limit int, offset int) ([]domain.ArticleLot, error) {
	query := `SELECT ` + articleLotColumns + ` FROM article_lots ORDER BY name ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list article lots: %w", err)
	}
	defer rows.Close()

	var lots []domain.ArticleLot
	for rows.Next() {
		var m models.ArticleLot
		err := rows.Scan(
			&m.LotID, &m.Name, &m.Description, &m.Color, &m.Icon, &m.CategoryID,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article lot row: %w", err)
		}
		lots = append(lots, mapping.ToDomainArticleLot(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article lot rows: %w", err)
	}
	return lots, nil
}
