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

// PgxSupplierRepository persists suppliers and their received invoices.
type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `
	supplier_id, type, raison_sociale, nif, rccm, classification, regime_fiscal,
	address, phone, email, created_at, created_by, last_updated_at, last_updated_by`

const supplierInvoiceColumns = `
	supplier_invoice_id, supplier_id, invoice_number, supplier_name, nif, date,
	ht, tva, ttc, status, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Type, m.RaisonSociale, m.NIF, m.RCCM, m.Classification, m.RegimeFiscal,
		m.Address, m.Phone, m.Email, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier %s: %w", m.SupplierID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers SET
			type = $2, raison_sociale = $3, nif = $4, rccm = $5, classification = $6,
			regime_fiscal = $7, address = $8, phone = $9, email = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Type, m.RaisonSociale, m.NIF, m.RCCM, m.Classification,
		m.RegimeFiscal, m.Address, m.Phone, m.Email,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", m.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`

	var m models.Supplier
	err := r.Pool.QueryRow(ctx, query, supplierID).Scan(
		&m.SupplierID, &m.Type, &m.RaisonSociale, &m.NIF, &m.RCCM, &m.Classification, &m.RegimeFiscal,
		&m.Address, &m.Phone, &m.Email, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}

	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY raison_sociale ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var m models.Supplier
		err := rows.Scan(
			&m.SupplierID, &m.Type, &m.RaisonSociale, &m.NIF, &m.RCCM, &m.Classification, &m.RegimeFiscal,
			&m.Address, &m.Phone, &m.Email, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, mapping.ToDomainSupplier(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) SaveSupplierInvoice(ctx context.Context, invoice domain.SupplierInvoice) error {
	m := mapping.ToModelSupplierInvoice(invoice)
	query := `
		INSERT INTO supplier_invoices (` + supplierInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierInvoiceID, m.SupplierID, m.InvoiceNumber, m.SupplierName, m.NIF, m.Date,
		m.HT, m.TVA, m.TTC, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier invoice %s: %w", m.SupplierInvoiceID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) ListSupplierInvoices(ctx context.Context, supplierID string) ([]domain.SupplierInvoice, error) {
	query := `SELECT ` + supplierInvoiceColumns + ` FROM supplier_invoices WHERE supplier_id = $1 ORDER BY date DESC;`

	rows, err := r.Pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.SupplierInvoice
	for rows.Next() {
		var m models.SupplierInvoice
		err := rows.Scan(
			&m.SupplierInvoiceID, &m.SupplierID, &m.InvoiceNumber, &m.SupplierName, &m.NIF, &m.Date,
			&m.HT, &m.TVA, &m.TTC, &m.Status, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier invoice row: %w", err)
		}
		invoices = append(invoices, mapping.ToDomainSupplierInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier invoice rows: %w", err)
	}
	return invoices, nil
}
