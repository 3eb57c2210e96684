package services

import (
	"context"
	"testing"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeArticleRepo is a stateful in-memory ArticleRepositoryFacade.
type fakeArticleRepo struct {
	articles   map[string]domain.Article
	categories map[string]domain.ArticleCategory
	lots       map[string]domain.ArticleLot
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles:   make(map[string]domain.Article),
		categories: make(map[string]domain.ArticleCategory),
		lots:       make(map[string]domain.ArticleLot),
	}
}

var _ portsrepo.ArticleRepositoryFacade = (*fakeArticleRepo)(nil)

func (f *fakeArticleRepo) SaveArticle(_ context.Context, a domain.Article) error {
	f.articles[a.ArticleID] = a
	return nil
}

func (f *fakeArticleRepo) UpdateArticle(_ context.Context, a domain.Article) error {
	if _, ok := f.articles[a.ArticleID]; !ok {
		return apperrors.ErrNotFound
	}
	f.articles[a.ArticleID] = a
	return nil
}

func (f *fakeArticleRepo) DeleteArticle(_ context.Context, articleID string) error {
	if _, ok := f.articles[articleID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.articles, articleID)
	return nil
}

func (f *fakeArticleRepo) FindArticleByID(_ context.Context, articleID string) (*domain.Article, error) {
	a, ok := f.articles[articleID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (f *fakeArticleRepo) ListArticles(_ context.Context, _ int, _ int) ([]domain.Article, error) {
	var out []domain.Article
	for _, a := range f.articles {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArticleRepo) SaveArticleCategory(_ context.Context, c domain.ArticleCategory) error {
	f.categories[c.CategoryID] = c
	return nil
}

func (f *fakeArticleRepo) UpdateArticleCategory(_ context.Context, c domain.ArticleCategory) error {
	if _, ok := f.categories[c.CategoryID]; !ok {
		return apperrors.ErrNotFound
	}
	f.categories[c.CategoryID] = c
	return nil
}

func (f *fakeArticleRepo) DeleteArticleCategory(_ context.Context, categoryID string) error {
	if _, ok := f.categories[categoryID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.categories, categoryID)
	return nil
}

func (f *fakeArticleRepo) FindArticleCategoryByID(_ context.Context, categoryID string) (*domain.ArticleCategory, error) {
	c, ok := f.categories[categoryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (f *fakeArticleRepo) ListArticleCategories(_ context.Context, _ int, _ int) ([]domain.ArticleCategory, error) {
	var out []domain.ArticleCategory
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeArticleRepo) SaveArticleLot(_ context.Context, l domain.ArticleLot) error {
	f.lots[l.LotID] = l
	return nil
}

func (f *fakeArticleRepo) UpdateArticleLot(_ context.Context, l domain.ArticleLot) error {
	if _, ok := f.lots[l.LotID]; !ok {
		return apperrors.ErrNotFound
	}
	f.lots[l.LotID] = l
	return nil
}

func (f *fakeArticleRepo) DeleteArticleLot(_ context.Context, lotID string) error {
	if _, ok := f.lots[lotID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.lots, lotID)
	return nil
}

func (f *fakeArticleRepo) FindArticleLotByID(_ context.Context, lotID string) (*domain.ArticleLot, error) {
	l, ok := f.lots[lotID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (f *fakeArticleRepo) ListArticleLots(_ context.Context, _ int, _ int) ([]domain.ArticleLot, error) {
	var out []domain.ArticleLot
	for _, l := range f.lots {
		out = append(out, l)
	}
	return out, nil
}

func TestArticleCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id and audit fields", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		cat, err := svc.CreateArticleCategory(ctx, dto.CreateArticleCategoryRequest{
			Name:  "Informatique",
			Icon:  "laptop",
			Color: "#1f6feb",
		}, "user-1")
		require.NoError(t, err)

		assert.NotEmpty(t, cat.CategoryID)
		assert.Equal(t, "Informatique", cat.Name)
		assert.Nil(t, cat.ParentID)
		assert.Equal(t, "user-1", cat.CreatedBy)
		assert.Contains(t, repo.categories, cat.CategoryID)
	})

	t.Run("create with missing parent is rejected", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		missing := "no-such-category"
		_, err := svc.CreateArticleCategory(ctx, dto.CreateArticleCategoryRequest{
			Name:     "Périphériques",
			ParentID: &missing,
		}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Empty(t, repo.categories)
	})

	t.Run("create nested under existing parent", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		parent, err := svc.CreateArticleCategory(ctx, dto.CreateArticleCategoryRequest{Name: "Informatique"}, "user-1")
		require.NoError(t, err)

		child, err := svc.CreateArticleCategory(ctx, dto.CreateArticleCategoryRequest{
			Name:     "Périphériques",
			ParentID: &parent.CategoryID,
		}, "user-1")
		require.NoError(t, err)
		require.NotNil(t, child.ParentID)
		assert.Equal(t, parent.CategoryID, *child.ParentID)
	})

	t.Run("partial update preserves untouched fields", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		cat, err := svc.CreateArticleCategory(ctx, dto.CreateArticleCategoryRequest{
			Name:  "Informatique",
			Color: "#1f6feb",
		}, "user-1")
		require.NoError(t, err)

		name := "Matériel informatique"
		updated, err := svc.UpdateArticleCategory(ctx, cat.CategoryID, dto.UpdateArticleCategoryRequest{Name: &name}, "user-2")
		require.NoError(t, err)

		assert.Equal(t, "Matériel informatique", updated.Name)
		assert.Equal(t, "#1f6feb", updated.Color)
		assert.Equal(t, "user-2", updated.LastUpdatedBy)
	})

	t.Run("delete missing category yields not found", func(t *testing.T) {
		svc := NewArticleService(newFakeArticleRepo())
		assert.ErrorIs(t, svc.DeleteArticleCategory(ctx, "no-such-category"), apperrors.ErrNotFound)
	})
}

func TestArticleLots(t *testing.T) {
	ctx := context.Background()

	newCategory := func(t *testing.T, svc portssvc.ArticleSvcFacade) *domain.ArticleCategory {
		t.Helper()
		cat, err := svc.CreateArticleCategory(ctx, dto.CreateArticleCategoryRequest{Name: "Informatique"}, "user-1")
		require.NoError(t, err)
		return cat
	}

	t.Run("create inside existing category", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)
		cat := newCategory(t, svc)

		lot, err := svc.CreateArticleLot(ctx, dto.CreateArticleLotRequest{
			Name:       "Lot 1 - Serveurs",
			CategoryID: cat.CategoryID,
		}, "user-1")
		require.NoError(t, err)

		assert.NotEmpty(t, lot.LotID)
		assert.Equal(t, cat.CategoryID, lot.CategoryID)
		assert.Contains(t, repo.lots, lot.LotID)
	})

	t.Run("create with missing category is rejected", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		_, err := svc.CreateArticleLot(ctx, dto.CreateArticleLotRequest{
			Name:       "Lot 1 - Serveurs",
			CategoryID: "no-such-category",
		}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Empty(t, repo.lots)
	})

	t.Run("moving a lot validates the target category", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)
		cat := newCategory(t, svc)

		lot, err := svc.CreateArticleLot(ctx, dto.CreateArticleLotRequest{
			Name:       "Lot 1 - Serveurs",
			CategoryID: cat.CategoryID,
		}, "user-1")
		require.NoError(t, err)

		missing := "no-such-category"
		_, err = svc.UpdateArticleLot(ctx, lot.LotID, dto.UpdateArticleLotRequest{CategoryID: &missing}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, cat.CategoryID, repo.lots[lot.LotID].CategoryID, "failed move must not write")

		other, err := svc.CreateArticleCategory(ctx, dto.CreateArticleCategoryRequest{Name: "Mobilier"}, "user-1")
		require.NoError(t, err)
		moved, err := svc.UpdateArticleLot(ctx, lot.LotID, dto.UpdateArticleLotRequest{CategoryID: &other.CategoryID}, "user-1")
		require.NoError(t, err)
		assert.Equal(t, other.CategoryID, moved.CategoryID)
	})

	t.Run("delete missing lot yields not found", func(t *testing.T) {
		svc := NewArticleService(newFakeArticleRepo())
		assert.ErrorIs(t, svc.DeleteArticleLot(ctx, "no-such-lot"), apperrors.ErrNotFound)
	})
}
