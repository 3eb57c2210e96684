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

// PgxContractOrderRepository persists formal contract and order documents.
type PgxContractOrderRepository struct {
	BaseRepository
}

func newPgxContractOrderRepository(db *pgxpool.Pool) portsrepo.ContractOrderRepositoryFacade {
	return &PgxContractOrderRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ContractOrderRepositoryFacade = (*PgxContractOrderRepository)(nil)

const contractOrderColumns = `
	contract_order_id, type, document_number, date, authorizing_reference, awardee, tax_id,
	amount, amount_in_words, warranty_period, warranty_retention, performance_guarantee,
	bank_account, bank_name, budget_allocation, deposit_account, deposit_account_title,
	subject, lot_description, execution_period, issuing_authority, country, motto,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxContractOrderRepository) SaveContractOrder(ctx context.Context, contractOrder domain.ContractOrder) error {
	m := mapping.ToModelContractOrder(contractOrder)
	query := `
		INSERT INTO contract_orders (` + contractOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractOrderID, m.Type, m.DocumentNumber, m.Date, m.AuthorizingReference, m.Awardee, m.TaxID,
		m.Amount, m.AmountInWords, m.WarrantyPeriod, m.WarrantyRetention, m.PerformanceGuarantee,
		m.BankAccount, m.BankName, m.BudgetAllocation, m.DepositAccount, m.DepositAccountTitle,
		m.Subject, m.LotDescription, m.ExecutionPeriod, m.IssuingAuthority, m.Country, m.Motto,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save contract order %s: %w", m.ContractOrderID, err)
	}
	return nil
}

func (r *PgxContractOrderRepository) UpdateContractOrder(ctx context.Context, contractOrder domain.ContractOrder) error {
	m := mapping.ToModelContractOrder(contractOrder)
	query := `
		UPDATE contract_orders SET
			document_number = $2, date = $3, authorizing_reference = $4, awardee = $5, tax_id = $6,
			amount = $7, amount_in_words = $8, warranty_period = $9, warranty_retention = $10,
			performance_guarantee = $11, bank_account = $12, bank_name = $13, budget_allocation = $14,
			deposit_account = $15, deposit_account_title = $16, subject = $17, lot_description = $18,
			execution_period = $19, issuing_authority = $20, country = $21, motto = $22,
			last_updated_at = $23, last_updated_by = $24
		WHERE contract_order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ContractOrderID, m.DocumentNumber, m.Date, m.AuthorizingReference, m.Awardee, m.TaxID,
		m.Amount, m.AmountInWords, m.WarrantyPeriod, m.WarrantyRetention,
		m.PerformanceGuarantee, m.BankAccount, m.BankName, m.BudgetAllocation,
		m.DepositAccount, m.DepositAccountTitle, m.Subject, m.LotDescription,
		m.ExecutionPeriod, m.IssuingAuthority, m.Country, m.Motto,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract order %s: %w", m.ContractOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractOrderRepository) DeleteContractOrder(ctx context.Context, contractOrderID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM contract_orders WHERE contract_order_id = $1;`, contractOrderID)
	if err != nil {
		return fmt.Errorf("failed to delete contract order %s: %w", contractOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractOrderRepository) FindContractOrderByID(ctx context.Context, contractOrderID string) (*domain.ContractOrder, error) {
	query := `SELECT ` + contractOrderColumns + ` FROM contract_orders WHERE contract_order_id = $1;`

	var m models.ContractOrder
	err := r.Pool.QueryRow(ctx, query, contractOrderID).Scan(
		&m.ContractOrderID, &m.Type, &m.DocumentNumber, &m.Date, &m.AuthorizingReference, &m.Awardee, &m.TaxID,
		&m.Amount, &m.AmountInWords, &m.WarrantyPeriod, &m.WarrantyRetention, &m.PerformanceGuarantee,
		&m.BankAccount, &m.BankName, &m.BudgetAllocation, &m.DepositAccount, &m.DepositAccountTitle,
		&m.Subject, &m.LotDescription, &m.ExecutionPeriod, &m.IssuingAuthority, &m.Country, &m.Motto,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract order %s: %w", contractOrderID, err)
	}

	contractOrder := mapping.ToDomainContractOrder(m)
	return &contractOrder, nil
}

func (r *PgxContractOrderRepository) ListContractOrders(ctx context.Context, limit int, offset int) ([]domain.ContractOrder, error) {
	query := `SELECT ` + contractOrderColumns + ` FROM contract_orders ORDER BY date DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract orders: %w", err)
	}
	defer rows.Close()

	var contractOrders []domain.ContractOrder
	for rows.Next() {
		var m models.ContractOrder
		err := rows.Scan(
			&m.ContractOrderID, &m.Type, &m.DocumentNumber, &m.Date, &m.AuthorizingReference, &m.Awardee, &m.TaxID,
			&m.Amount, &m.AmountInWords, &m.WarrantyPeriod, &m.WarrantyRetention, &m.PerformanceGuarantee,
			&m.BankAccount, &m.BankName, &m.BudgetAllocation, &m.DepositAccount, &m.DepositAccountTitle,
			&m.Subject, &m.LotDescription, &m.ExecutionPeriod, &m.IssuingAuthority, &m.Country, &m.Motto,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract order row: %w", err)
		}
		contractOrders = append(contractOrders, mapping.ToDomainContractOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract order rows: %w", err)
	}
	return contractOrders, nil
}

func (r *PgxContractOrderRepository) ListContractOrderIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT contract_order_id FROM contract_orders;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract order ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan contract order id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract order ids: %w", err)
	}
	return ids, nil
}
