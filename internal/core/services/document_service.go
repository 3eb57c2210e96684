package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrNotAQuote     = errors.New("document is not a quote")
	ErrNotAnOrder    = errors.New("document is not an order")
	ErrNotADelivery  = errors.New("document is not a delivery note")
	ErrNoItems       = errors.New("document must have at least one line item")
	ErrPaymentAmount = errors.New("payment amount must be positive")
)

// documentService implements the document workflow engine: numbering,
// guarded lifecycle transitions, payment/balance computation and workflow
// chain traversal.
type documentService struct {
	docRepo portsrepo.DocumentRepositoryFacade

	// seqMu serializes sequence allocation. The numbering scheme is
	// read-max-then-write, so two concurrent creations of the same
	// (type, year) would otherwise claim the same reference.
	seqMu sync.Mutex
}

// NewDocumentService creates a new document service.
func NewDocumentService(docRepo portsrepo.DocumentRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{docRepo: docRepo}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// allocateNumber reserves the next sequence for (docType, year) and returns
// the formatted document number and raw reference. Callers must hold seqMu
// until the document carrying the number has been saved.
func (s *documentService) allocateNumber(ctx context.Context, docType domain.DocumentType, year int) (string, string, error) {
	existing, err := s.docRepo.ListDocuments(ctx, portsrepo.DocumentFilter{Type: &docType, Year: &year})
	if err != nil {
		return "", "", fmt.Errorf("failed to list documents for numbering: %w", err)
	}
	seq := nextSequence(existing, docType, year)
	return formatDocumentNumber(docType, year, seq), formatReference(year, seq), nil
}

// CreateDocument creates a new document with a freshly assigned number.
// The year of the document date fixes the numbering sequence.
func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoItems)
	}

	now := time.Now().UTC()
	year := req.Date.Year()

	dueDate := req.DueDate
	if dueDate == nil && req.PaymentTermsDays != nil {
		d := req.Date.AddDate(0, 0, *req.PaymentTermsDays)
		dueDate = &d
	}

	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	documentID, reference, err := s.allocateNumber(ctx, req.Type, year)
	if err != nil {
		return nil, err
	}

	doc := domain.Document{
		DocumentID:             documentID,
		Type:                   req.Type,
		Reference:              reference,
		Date:                   req.Date,
		DueDate:                dueDate,
		ClientName:             req.ClientName,
		Address:                req.Address,
		City:                   req.City,
		TVA:                    req.TVA,
		Items:                  toDomainItems(req.Items),
		Status:                 domain.StatusPending,
		WorkflowStatus:         domain.WorkflowDraft,
		Payments:               []domain.Payment{},
		PaymentTermsDays:       req.PaymentTermsDays,
		ContractOrderReference: req.ContractOrderReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.docRepo.SaveDocument(ctx, doc); err != nil {
		logger.Error("Failed to save document", slog.String("document_id", documentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	logger.Info("Document created", slog.String("document_id", documentID), slog.String("type", string(doc.Type)))
	return &doc, nil
}

// GetDocumentByID retrieves a single document.
func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	applyOverdue(doc, time.Now().UTC())
	return doc, nil
}

// ListDocuments retrieves documents matching the filter parameters.
func (s *documentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, error) {
	docs, err := s.docRepo.ListDocuments(ctx, portsrepo.DocumentFilter{Type: params.Type, Year: params.Year})
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range docs {
		applyOverdue(&docs[i], now)
	}
	return docs, nil
}

// UpdateDocument applies a partial update to a document's mutable fields.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		doc.Date = *req.Date
	}
	if req.DueDate != nil {
		doc.DueDate = req.DueDate
	}
	if req.ClientName != nil {
		doc.ClientName = *req.ClientName
	}
	if req.Address != nil {
		doc.Address = *req.Address
	}
	if req.City != nil {
		doc.City = *req.City
	}
	if req.TVA != nil {
		doc.TVA = *req.TVA
	}
	if req.Items != nil {
		doc.Items = toDomainItems(*req.Items)
	}
	if req.PaymentTermsDays != nil {
		doc.PaymentTermsDays = req.PaymentTermsDays
	}
	if req.ContractOrderReference != nil {
		doc.ContractOrderReference = *req.ContractOrderReference
	}
	doc.LastUpdatedAt = time.Now().UTC()
	doc.LastUpdatedBy = userID

	if err := s.docRepo.UpdateDocument(ctx, *doc); err != nil {
		return nil, fmt.Errorf("failed to update document %s: %w", documentID, err)
	}
	return doc, nil
}

// DeleteDocument removes a document; deletion is a passthrough to the store.
func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	return s.docRepo.DeleteDocument(ctx, documentID)
}

// ValidateQuote marks a proforma as validated, in place. No new document is
// created.
func (s *documentService) ValidateQuote(ctx context.Context, quoteID string, userID string) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	quote, err := s.docRepo.FindDocumentByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Type != domain.Proforma {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrNotAQuote)
	}

	quote.WorkflowStatus = domain.WorkflowValidated
	quote.Status = domain.StatusValidated
	quote.LastUpdatedAt = time.Now().UTC()
	quote.LastUpdatedBy = userID

	if err := s.docRepo.UpdateDocument(ctx, *quote); err != nil {
		return nil, fmt.Errorf("failed to update quote %s: %w", quoteID, err)
	}

	logger.Info("Quote validated", slog.String("document_id", quoteID))
	return quote, nil
}

// CreateOrderFromQuote derives an order from a quote. The quote's line
// items, client and terms are carried over; the order gets a fresh number
// for the current year and is linked as a child of the quote.
func (s *documentService) CreateOrderFromQuote(ctx context.Context, quoteID string, req dto.CreateOrderRequest, userID string) (*domain.Document, error) {
	quote, err := s.docRepo.FindDocumentByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Type != domain.Proforma {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrNotAQuote)
	}

	return s.deriveChild(ctx, quote, domain.Order, domain.WorkflowOrdered, domain.WorkflowOrdered, userID, func(order *domain.Document) {
		order.OrderNumber = req.OrderNumber
		order.ContractTerms = toDomainContractTerms(req.ContractTerms)
	})
}

// CreateDeliveryFromOrder derives a delivery note from an order.
func (s *documentService) CreateDeliveryFromOrder(ctx context.Context, orderID string, userID string) (*domain.Document, error) {
	order, err := s.docRepo.FindDocumentByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Type != domain.Order {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrNotAnOrder)
	}
	return s.deriveChild(ctx, order, domain.Delivery, domain.WorkflowDelivered, domain.WorkflowDelivered, userID, nil)
}

// CreateInvoiceFromDelivery derives an invoice from a delivery note. The
// invoice completes the workflow chain.
func (s *documentService) CreateInvoiceFromDelivery(ctx context.Context, deliveryID string, userID string) (*domain.Document, error) {
	delivery, err := s.docRepo.FindDocumentByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.Type != domain.Delivery {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrNotADelivery)
	}
	return s.deriveChild(ctx, delivery, domain.Invoice, domain.WorkflowCompleted, domain.WorkflowCompleted, userID, nil)
}

// deriveChild clones a parent document into a new child of childType with a
// fresh number, links the two, and advances the parent's workflow status.
// decorate, when non-nil, is applied to the child before it is saved.
// The child is written before the parent is touched, so a failed child save
// leaves no partial state behind.
func (s *documentService) deriveChild(ctx context.Context, parent *domain.Document, childType domain.DocumentType, childWorkflow, parentWorkflow domain.WorkflowStatus, userID string, decorate func(*domain.Document)) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()
	year := now.Year()

	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	documentID, reference, err := s.allocateNumber(ctx, childType, year)
	if err != nil {
		return nil, err
	}

	parentID := parent.DocumentID
	child := domain.Document{
		DocumentID:             documentID,
		Type:                   childType,
		Reference:              reference,
		Date:                   now,
		DueDate:                parent.DueDate,
		ClientName:             parent.ClientName,
		Address:                parent.Address,
		City:                   parent.City,
		TVA:                    parent.TVA,
		Items:                  cloneItems(parent.Items),
		Status:                 domain.StatusPending,
		WorkflowStatus:         childWorkflow,
		ParentDocumentID:       &parentID,
		ChildDocuments:         []string{},
		Payments:               []domain.Payment{},
		PaymentTermsDays:       parent.PaymentTermsDays,
		OrderNumber:            parent.OrderNumber,
		ContractTerms:          parent.ContractTerms,
		ContractOrderReference: parent.ContractOrderReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if decorate != nil {
		decorate(&child)
	}

	if err := s.docRepo.SaveDocument(ctx, child); err != nil {
		logger.Error("Failed to save derived document", slog.String("document_id", documentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save derived document: %w", err)
	}

	parent.ChildDocuments = append(parent.ChildDocuments, documentID)
	parent.WorkflowStatus = parentWorkflow
	parent.LastUpdatedAt = now
	parent.LastUpdatedBy = userID
	if err := s.docRepo.UpdateDocument(ctx, *parent); err != nil {
		// The child is already persisted; the store offers no multi-document
		// transaction, so the link update is reported but not rolled back.
		logger.Error("Failed to link parent after deriving child", slog.String("parent_id", parentID), slog.String("child_id", documentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update parent document %s: %w", parentID, err)
	}

	logger.Info("Document derived", slog.String("parent_id", parentID), slog.String("child_id", documentID), slog.String("type", string(childType)))
	return &child, nil
}

// UpdateDocumentWorkflowStatus sets the workflow status with no transition
// validation. Administrative override, kept separate from the guarded
// transitions on purpose.
func (s *documentService) UpdateDocumentWorkflowStatus(ctx context.Context, documentID string, status domain.WorkflowStatus, userID string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	doc.WorkflowStatus = status
	doc.LastUpdatedAt = time.Now().UTC()
	doc.LastUpdatedBy = userID
	if err := s.docRepo.UpdateDocument(ctx, *doc); err != nil {
		return nil, fmt.Errorf("failed to update document %s: %w", documentID, err)
	}
	return doc, nil
}

// GetDocumentWorkflow returns the workflow chain of a document: ancestors
// oldest-first, the document itself, then all descendants depth-first.
// Dangling parent or child references stop traversal at that edge.
func (s *documentService) GetDocumentWorkflow(ctx context.Context, documentID string) ([]domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	visited := map[string]bool{doc.DocumentID: true}
	var chain []domain.Document

	current := doc
	for current.ParentDocumentID != nil {
		parent, err := s.docRepo.FindDocumentByID(ctx, *current.ParentDocumentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				break
			}
			return nil, err
		}
		if visited[parent.DocumentID] {
			break
		}
		visited[parent.DocumentID] = true
		chain = append([]domain.Document{*parent}, chain...)
		current = parent
	}

	chain = append(chain, *doc)

	if err := s.appendDescendants(ctx, doc, visited, &chain); err != nil {
		return nil, err
	}
	return chain, nil
}

func (s *documentService) appendDescendants(ctx context.Context, doc *domain.Document, visited map[string]bool, chain *[]domain.Document) error {
	for _, childID := range doc.ChildDocuments {
		if visited[childID] {
			continue
		}
		child, err := s.docRepo.FindDocumentByID(ctx, childID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return err
		}
		visited[childID] = true
		*chain = append(*chain, *child)
		if err := s.appendDescendants(ctx, child, visited, chain); err != nil {
			return err
		}
	}
	return nil
}

// AddPayment appends a payment to the document's ledger and re-derives the
// financial status. When the cumulative paid amount overshoots the payable
// total, the appended payment is reduced to fit exactly and the excess is
// appended as a synthetic "Reliquat" entry with the same date.
func (s *documentService) AddPayment(ctx context.Context, documentID string, req dto.AddPaymentRequest, userID string) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPaymentAmount)
	}

	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{Date: req.Date, Amount: req.Amount, Note: req.Note}
	doc.Payments = append(doc.Payments, payment)

	ttc := doc.TotalTTC()
	paid := doc.TotalPaid()

	if paid.GreaterThan(ttc) {
		excess := paid.Sub(ttc)
		doc.Payments[len(doc.Payments)-1].Amount = payment.Amount.Sub(excess)
		note := payment.Note
		if note == "" {
			note = "Paiement"
		}
		doc.Payments = append(doc.Payments, domain.Payment{
			Date:   payment.Date,
			Amount: excess,
			Note:   "Reliquat - " + note,
		})
	}

	// Payments never regress the financial status.
	switch {
	case paid.GreaterThanOrEqual(ttc):
		doc.Status = domain.StatusPaid
	case paid.GreaterThan(decimal.Zero):
		doc.Status = domain.StatusPartial
	}

	doc.LastUpdatedAt = time.Now().UTC()
	doc.LastUpdatedBy = userID

	if err := s.docRepo.UpdateDocument(ctx, *doc); err != nil {
		logger.Error("Failed to record payment", slog.String("document_id", documentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record payment on %s: %w", documentID, err)
	}

	logger.Info("Payment recorded", slog.String("document_id", documentID), slog.String("amount", req.Amount.String()), slog.String("status", string(doc.Status)))
	return doc, nil
}

// applyOverdue flags pending/partial documents past their due date. The
// derivation is read-side only and never persisted.
func applyOverdue(doc *domain.Document, now time.Time) {
	if doc.Status != domain.StatusPending && doc.Status != domain.StatusPartial {
		return
	}
	if doc.IsOverdue(now) {
		doc.Status = domain.StatusOverdue
	}
}

func toDomainItems(items []dto.LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, it := range items {
		out[i] = domain.LineItem{
			Description:      it.Description,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ReceivedQuantity: it.ReceivedQuantity,
		}
	}
	return out
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ReceivedQuantity != nil {
			qty := *out[i].ReceivedQuantity
			out[i].ReceivedQuantity = &qty
		}
	}
	return out
}

func toDomainContractTerms(req *dto.ContractTermsRequest) *domain.ContractTerms {
	if req == nil {
		return nil
	}
	schedule := make([]domain.PaymentScheduleEntry, len(req.PaymentSchedule))
	for i, e := range req.PaymentSchedule {
		schedule[i] = domain.PaymentScheduleEntry{Date: e.Date, Amount: e.Amount, Description: e.Description}
	}
	return &domain.ContractTerms{
		DeliveryDate:      req.DeliveryDate,
		WarrantyPeriod:    req.WarrantyPeriod,
		SpecialConditions: req.SpecialConditions,
		PaymentSchedule:   schedule,
	}
}
