package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	"github.com/ediba/backoffice_app/internal/models"
	"github.com/ediba/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentRepository persists customer documents. Line items, payments,
// child links and contract terms live in JSONB columns of the documents row,
// so a document is always read and written as one unit.
type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `
	document_id, type, reference, date, due_date, client_name, address, city, tva,
	items, status, workflow_status, parent_document_id, child_documents, payments,
	payment_terms_days, order_number, contract_terms, contract_order_reference,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)

	itemsJSON, paymentsJSON, childrenJSON, termsJSON, err := marshalDocumentJSON(m)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.DocumentID, m.Type, m.Reference, m.Date, m.DueDate, m.ClientName, m.Address, m.City, m.TVA,
		itemsJSON, m.Status, m.WorkflowStatus, m.ParentDocumentID, childrenJSON, paymentsJSON,
		m.PaymentTermsDays, m.OrderNumber, termsJSON, m.ContractOrderReference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", m.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)

	itemsJSON, paymentsJSON, childrenJSON, termsJSON, err := marshalDocumentJSON(m)
	if err != nil {
		return err
	}

	query := `
		UPDATE documents SET
			date = $2, due_date = $3, client_name = $4, address = $5, city = $6, tva = $7,
			items = $8, status = $9, workflow_status = $10, parent_document_id = $11,
			child_documents = $12, payments = $13, payment_terms_days = $14,
			order_number = $15, contract_terms = $16, contract_order_reference = $17,
			last_updated_at = $18, last_updated_by = $19
		WHERE document_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.Date, m.DueDate, m.ClientName, m.Address, m.City, m.TVA,
		itemsJSON, m.Status, m.WorkflowStatus, m.ParentDocumentID,
		childrenJSON, paymentsJSON, m.PaymentTermsDays,
		m.OrderNumber, termsJSON, m.ContractOrderReference,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", m.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	row := r.Pool.QueryRow(ctx, query, documentID)

	m, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}

	doc := mapping.ToDomainDocument(*m)
	return &doc, nil
}

func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents`
	var conditions []string
	var args []interface{}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conditions = append(conditions, "type = $"+strconv.Itoa(len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conditions = append(conditions, "EXTRACT(YEAR FROM date) = $"+strconv.Itoa(len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY date DESC, reference DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var modelDocs []models.Document
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		modelDocs = append(modelDocs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return mapping.ToDomainDocumentSlice(modelDocs), nil
}

// scanDocument reads one documents row, decoding the JSONB columns.
func scanDocument(row pgx.Row) (*models.Document, error) {
	var m models.Document
	var itemsJSON, paymentsJSON, childrenJSON []byte
	var termsJSON []byte

	err := row.Scan(
		&m.DocumentID, &m.Type, &m.Reference, &m.Date, &m.DueDate, &m.ClientName, &m.Address, &m.City, &m.TVA,
		&itemsJSON, &m.Status, &m.WorkflowStatus, &m.ParentDocumentID, &childrenJSON, &paymentsJSON,
		&m.PaymentTermsDays, &m.OrderNumber, &termsJSON, &m.ContractOrderReference,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &m.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items of %s: %w", m.DocumentID, err)
	}
	if err := json.Unmarshal(paymentsJSON, &m.Payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments of %s: %w", m.DocumentID, err)
	}
	if err := json.Unmarshal(childrenJSON, &m.ChildDocuments); err != nil {
		return nil, fmt.Errorf("failed to decode child documents of %s: %w", m.DocumentID, err)
	}
	if termsJSON != nil {
		if err := json.Unmarshal(termsJSON, &m.ContractTerms); err != nil {
			return nil, fmt.Errorf("failed to decode contract terms of %s: %w", m.DocumentID, err)
		}
	}
	return &m, nil
}

// marshalDocumentJSON encodes the JSONB columns of a documents row. Nil item,
// payment and child slices are stored as empty arrays so reads never yield
// SQL NULL for them; contract terms stay NULL when absent.
func marshalDocumentJSON(m models.Document) (items, payments, children, terms []byte, err error) {
	if m.Items == nil {
		m.Items = []models.LineItem{}
	}
	if m.Payments == nil {
		m.Payments = []models.Payment{}
	}
	if m.ChildDocuments == nil {
		m.ChildDocuments = []string{}
	}

	if items, err = json.Marshal(m.Items); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode items: %w", err)
	}
	if payments, err = json.Marshal(m.Payments); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode payments: %w", err)
	}
	if children, err = json.Marshal(m.ChildDocuments); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode child documents: %w", err)
	}
	if m.ContractTerms != nil {
		if terms, err = json.Marshal(m.ContractTerms); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("failed to encode contract terms: %w", err)
		}
	}
	return items, payments, children, terms, nil
}
