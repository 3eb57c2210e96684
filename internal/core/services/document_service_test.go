package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocumentRepo is a stateful in-memory DocumentRepositoryFacade.
type fakeDocumentRepo struct {
	mu   sync.Mutex
	docs map[string]domain.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]domain.Document)}
}

var _ portsrepo.DocumentRepositoryFacade = (*fakeDocumentRepo)(nil)

func (f *fakeDocumentRepo) SaveDocument(_ context.Context, doc domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[doc.DocumentID] = doc
	return nil
}

func (f *fakeDocumentRepo) UpdateDocument(_ context.Context, doc domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[doc.DocumentID]; !ok {
		return apperrors.ErrNotFound
	}
	f.docs[doc.DocumentID] = doc
	return nil
}

func (f *fakeDocumentRepo) DeleteDocument(_ context.Context, documentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[documentID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.docs, documentID)
	return nil
}

func (f *fakeDocumentRepo) FindDocumentByID(_ context.Context, documentID string) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[documentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeDocumentRepo) ListDocuments(_ context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Document
	for _, doc := range f.docs {
		if filter.Type != nil && doc.Type != *filter.Type {
			continue
		}
		if filter.Year != nil && doc.Date.Year() != *filter.Year {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeDocumentRepo) get(t *testing.T, documentID string) domain.Document {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[documentID]
	require.True(t, ok, "document %s not in store", documentID)
	return doc
}

func quoteRequest(date time.Time) dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{
		Type:       domain.Proforma,
		Date:       date,
		ClientName: "SONABEL",
		Address:    "01 BP 54",
		City:       "Ouagadougou",
		TVA:        decimal.NewFromInt(18),
		Items: []dto.LineItemRequest{
			{Description: "Serveur rack", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(400)},
			{Description: "Onduleur", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(200)},
		},
	}
}

func TestCreateDocument(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("assigns sequential numbers per type and year", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		first, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)
		second, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)

		assert.Equal(t, "N°D2500001", first.DocumentID)
		assert.Equal(t, "2025-0001", first.Reference)
		assert.Equal(t, "N°D2500002", second.DocumentID)
		assert.Equal(t, "2025-0002", second.Reference)
		assert.Equal(t, domain.StatusPending, first.Status)
		assert.Equal(t, domain.WorkflowDraft, first.WorkflowStatus)
	})

	t.Run("different types use independent sequences", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		_, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)

		invReq := quoteRequest(date)
		invReq.Type = domain.Invoice
		inv, err := svc.CreateDocument(ctx, invReq, "user-1")
		require.NoError(t, err)

		assert.Equal(t, "N°F2500001", inv.DocumentID)
		assert.Equal(t, "2025-0001", inv.Reference)
	})

	t.Run("skips unparsable references when numbering", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		repo.docs["weird"] = domain.Document{
			DocumentID: "weird",
			Type:       domain.Proforma,
			Reference:  "imported-without-number",
			Date:       date,
		}
		repo.docs["N°D2500004"] = domain.Document{
			DocumentID: "N°D2500004",
			Type:       domain.Proforma,
			Reference:  "2025-0004",
			Date:       date,
		}
		svc := NewDocumentService(repo)

		doc, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "2025-0005", doc.Reference)
		assert.Equal(t, "N°D2500005", doc.DocumentID)
	})

	t.Run("derives due date from payment terms", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		req := quoteRequest(date)
		terms := 30
		req.PaymentTermsDays = &terms

		doc, err := svc.CreateDocument(ctx, req, "user-1")
		require.NoError(t, err)
		require.NotNil(t, doc.DueDate)
		assert.Equal(t, date.AddDate(0, 0, 30), *doc.DueDate)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		req := quoteRequest(date)
		req.Items = nil

		_, err := svc.CreateDocument(ctx, req, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Empty(t, repo.docs)
	})
}

func TestCreateDocumentConcurrent(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)

	const n = 25
	results := make([]*domain.Document, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		}(i)
	}
	wg.Wait()

	ids := make(map[string]bool, n)
	refs := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i])
		assert.False(t, ids[results[i].DocumentID], "duplicate document id %s", results[i].DocumentID)
		assert.False(t, refs[results[i].Reference], "duplicate reference %s", results[i].Reference)
		ids[results[i].DocumentID] = true
		refs[results[i].Reference] = true
	}
	assert.Len(t, repo.docs, n)
}

func TestValidateQuote(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("marks a proforma validated in place", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		quote, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)

		validated, err := svc.ValidateQuote(ctx, quote.DocumentID, "user-2")
		require.NoError(t, err)
		assert.Equal(t, domain.WorkflowValidated, validated.WorkflowStatus)
		assert.Equal(t, domain.StatusValidated, validated.Status)
		assert.Equal(t, "user-2", validated.LastUpdatedBy)

		stored := repo.get(t, quote.DocumentID)
		assert.Equal(t, domain.WorkflowValidated, stored.WorkflowStatus)
		assert.Len(t, repo.docs, 1, "validation must not create a new document")
	})

	t.Run("rejects non-quote and leaves store untouched", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		invReq := quoteRequest(date)
		invReq.Type = domain.Invoice
		inv, err := svc.CreateDocument(ctx, invReq, "user-1")
		require.NoError(t, err)

		before := repo.get(t, inv.DocumentID)
		_, err = svc.ValidateQuote(ctx, inv.DocumentID, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		assert.Equal(t, before, repo.get(t, inv.DocumentID))
	})

	t.Run("missing document yields not found", func(t *testing.T) {
		svc := NewDocumentService(newFakeDocumentRepo())
		_, err := svc.ValidateQuote(ctx, "N°D2500099", "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

// buildChain runs a quote through order, delivery and invoice, returning the
// four document IDs in lifecycle order.
func buildChain(t *testing.T, svc portssvc.DocumentSvcFacade) []string {
	t.Helper()
	ctx := context.Background()
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	quote, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
	require.NoError(t, err)
	_, err = svc.ValidateQuote(ctx, quote.DocumentID, "user-1")
	require.NoError(t, err)
	order, err := svc.CreateOrderFromQuote(ctx, quote.DocumentID, dto.CreateOrderRequest{OrderNumber: "LC-2025-17"}, "user-1")
	require.NoError(t, err)
	delivery, err := svc.CreateDeliveryFromOrder(ctx, order.DocumentID, "user-1")
	require.NoError(t, err)
	invoice, err := svc.CreateInvoiceFromDelivery(ctx, delivery.DocumentID, "user-1")
	require.NoError(t, err)

	return []string{quote.DocumentID, order.DocumentID, delivery.DocumentID, invoice.DocumentID}
}

func TestWorkflowTransitions(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("order derivation links parent and child", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		quote, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)
		_, err = svc.ValidateQuote(ctx, quote.DocumentID, "user-1")
		require.NoError(t, err)

		order, err := svc.CreateOrderFromQuote(ctx, quote.DocumentID, dto.CreateOrderRequest{
			OrderNumber: "LC-2025-17",
			ContractTerms: &dto.ContractTermsRequest{
				WarrantyPeriod: "12 mois",
			},
		}, "user-1")
		require.NoError(t, err)

		assert.Equal(t, domain.Order, order.Type)
		assert.Equal(t, domain.WorkflowOrdered, order.WorkflowStatus)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, "LC-2025-17", order.OrderNumber)
		require.NotNil(t, order.ContractTerms)
		assert.Equal(t, "12 mois", order.ContractTerms.WarrantyPeriod)
		require.NotNil(t, order.ParentDocumentID)
		assert.Equal(t, quote.DocumentID, *order.ParentDocumentID)
		assert.Empty(t, order.Payments)

		storedQuote := repo.get(t, quote.DocumentID)
		assert.Equal(t, []string{order.DocumentID}, storedQuote.ChildDocuments)
		assert.Equal(t, domain.WorkflowOrdered, storedQuote.WorkflowStatus)

		// Items are copied, not shared.
		assert.Equal(t, quote.Items, order.Items)
	})

	t.Run("full chain carries client and items through", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		ids := buildChain(t, svc)
		invoice := repo.get(t, ids[3])

		assert.Equal(t, domain.Invoice, invoice.Type)
		assert.Equal(t, domain.WorkflowCompleted, invoice.WorkflowStatus)
		assert.Equal(t, "SONABEL", invoice.ClientName)
		assert.Len(t, invoice.Items, 2)

		delivery := repo.get(t, ids[2])
		assert.Equal(t, domain.WorkflowCompleted, delivery.WorkflowStatus)
		assert.Equal(t, []string{ids[3]}, delivery.ChildDocuments)
	})

	t.Run("delivery from non-order is rejected", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		quote, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)

		_, err = svc.CreateDeliveryFromOrder(ctx, quote.DocumentID, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		assert.Len(t, repo.docs, 1, "failed transition must not write")
	})

	t.Run("invoice from non-delivery is rejected", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		quote, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)

		_, err = svc.CreateInvoiceFromDelivery(ctx, quote.DocumentID, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run("administrative override sets any status", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)

		quote, err := svc.CreateDocument(ctx, quoteRequest(date), "user-1")
		require.NoError(t, err)

		doc, err := svc.UpdateDocumentWorkflowStatus(ctx, quote.DocumentID, domain.WorkflowCompleted, "admin")
		require.NoError(t, err)
		assert.Equal(t, domain.WorkflowCompleted, doc.WorkflowStatus)
		assert.Equal(t, domain.WorkflowCompleted, repo.get(t, quote.DocumentID).WorkflowStatus)
	})
}

func TestGetDocumentWorkflow(t *testing.T) {
	ctx := context.Background()

	t.Run("returns same chain from any node", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)
		ids := buildChain(t, svc)

		for _, start := range ids {
			chain, err := svc.GetDocumentWorkflow(ctx, start)
			require.NoError(t, err)
			got := make([]string, len(chain))
			for i, d := range chain {
				got[i] = d.DocumentID
			}
			assert.Equal(t, ids, got, "chain from %s", start)
		}
	})

	t.Run("tolerates dangling child reference", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)
		ids := buildChain(t, svc)

		// Remove the invoice but leave the delivery's link to it.
		repo.mu.Lock()
		delete(repo.docs, ids[3])
		repo.mu.Unlock()

		chain, err := svc.GetDocumentWorkflow(ctx, ids[0])
		require.NoError(t, err)
		got := make([]string, len(chain))
		for i, d := range chain {
			got[i] = d.DocumentID
		}
		assert.Equal(t, ids[:3], got)
	})

	t.Run("tolerates dangling parent reference", func(t *testing.T) {
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)
		ids := buildChain(t, svc)

		repo.mu.Lock()
		delete(repo.docs, ids[0])
		repo.mu.Unlock()

		chain, err := svc.GetDocumentWorkflow(ctx, ids[1])
		require.NoError(t, err)
		got := make([]string, len(chain))
		for i, d := range chain {
			got[i] = d.DocumentID
		}
		assert.Equal(t, ids[1:], got)
	})

	t.Run("missing start document yields not found", func(t *testing.T) {
		svc := NewDocumentService(newFakeDocumentRepo())
		_, err := svc.GetDocumentWorkflow(ctx, "N°F2500099")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAddPayment(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	payDate := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

	// quoteRequest totals: HT 1000, TVA 18% -> 180, TTC 1180.
	newInvoice := func(t *testing.T) (*fakeDocumentRepo, *domain.Document, func() domain.Document) {
		t.Helper()
		repo := newFakeDocumentRepo()
		svc := NewDocumentService(repo)
		req := quoteRequest(date)
		req.Type = domain.Invoice
		inv, err := svc.CreateDocument(ctx, req, "user-1")
		require.NoError(t, err)
		return repo, inv, func() domain.Document { return repo.get(t, inv.DocumentID) }
	}

	t.Run("partial payment", func(t *testing.T) {
		repo, inv, stored := newInvoice(t)
		svc := NewDocumentService(repo)

		doc, err := svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{
			Date:   payDate,
			Amount: decimal.NewFromInt(500),
			Note:   "Acompte",
		}, "user-1")
		require.NoError(t, err)

		assert.Equal(t, domain.StatusPartial, doc.Status)
		require.Len(t, doc.Payments, 1)
		assert.True(t, doc.Payments[0].Amount.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, domain.StatusPartial, stored().Status)
	})

	t.Run("exact settlement has no synthetic entry", func(t *testing.T) {
		repo, inv, _ := newInvoice(t)
		svc := NewDocumentService(repo)

		_, err := svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{Date: payDate, Amount: decimal.NewFromInt(500)}, "user-1")
		require.NoError(t, err)
		doc, err := svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{Date: payDate, Amount: decimal.NewFromInt(680)}, "user-1")
		require.NoError(t, err)

		assert.Equal(t, domain.StatusPaid, doc.Status)
		require.Len(t, doc.Payments, 2)
		assert.True(t, doc.TotalPaid().Equal(decimal.NewFromInt(1180)))
	})

	t.Run("overpayment is split into a Reliquat entry", func(t *testing.T) {
		repo, inv, _ := newInvoice(t)
		svc := NewDocumentService(repo)

		_, err := svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{Date: payDate, Amount: decimal.NewFromInt(1000)}, "user-1")
		require.NoError(t, err)
		doc, err := svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{
			Date:   payDate,
			Amount: decimal.NewFromInt(300),
			Note:   "Virement BOA",
		}, "user-1")
		require.NoError(t, err)

		require.Len(t, doc.Payments, 3)
		assert.True(t, doc.Payments[1].Amount.Equal(decimal.NewFromInt(180)), "appended payment reduced to fit")
		assert.True(t, doc.Payments[2].Amount.Equal(decimal.NewFromInt(120)), "excess split off")
		assert.Equal(t, "Reliquat - Virement BOA", doc.Payments[2].Note)
		assert.Equal(t, payDate, doc.Payments[2].Date)
		assert.Equal(t, domain.StatusPaid, doc.Status)
		assert.True(t, doc.TotalPaid().Equal(decimal.NewFromInt(1300)))
	})

	t.Run("overpayment without note defaults to Paiement", func(t *testing.T) {
		repo, inv, _ := newInvoice(t)
		svc := NewDocumentService(repo)

		doc, err := svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{Date: payDate, Amount: decimal.NewFromInt(1200)}, "user-1")
		require.NoError(t, err)

		require.Len(t, doc.Payments, 2)
		assert.True(t, doc.Payments[0].Amount.Equal(decimal.NewFromInt(1180)))
		assert.True(t, doc.Payments[1].Amount.Equal(decimal.NewFromInt(20)))
		assert.Equal(t, "Reliquat - Paiement", doc.Payments[1].Note)
		assert.Equal(t, domain.StatusPaid, doc.Status)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		repo, inv, stored := newInvoice(t)
		svc := NewDocumentService(repo)

		_, err := svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{Date: payDate, Amount: decimal.Zero}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = svc.AddPayment(ctx, inv.DocumentID, dto.AddPaymentRequest{Date: payDate, Amount: decimal.NewFromInt(-5)}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		assert.Empty(t, stored().Payments)
	})

	t.Run("missing document yields not found", func(t *testing.T) {
		svc := NewDocumentService(newFakeDocumentRepo())
		_, err := svc.AddPayment(ctx, "N°F2500099", dto.AddPaymentRequest{Date: payDate, Amount: decimal.NewFromInt(10)}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestListDocumentsOverdueDerivation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)

	past := time.Now().UTC().AddDate(0, 0, -10)
	req := quoteRequest(past)
	req.Type = domain.Invoice
	due := past.AddDate(0, 0, 5)
	req.DueDate = &due

	inv, err := svc.CreateDocument(ctx, req, "user-1")
	require.NoError(t, err)

	got, err := svc.GetDocumentByID(ctx, inv.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOverdue, got.Status)

	// The derivation is read-side only.
	assert.Equal(t, domain.StatusPending, repo.get(t, inv.DocumentID).Status)
}
