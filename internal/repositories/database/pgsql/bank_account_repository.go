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

// PgxBankAccountRepository persists company bank accounts.
type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(db *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `
	bank_account_id, bank_name, account_number, holder, balance,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankAccountID, m.BankName, m.AccountNumber, m.Holder, m.Balance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bank account %s: %w", m.BankAccountID, err)
	}
	return nil
}

func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		UPDATE bank_accounts SET
			bank_name = $2, account_number = $3, holder = $4, balance = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE bank_account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BankAccountID, m.BankName, m.AccountNumber, m.Holder, m.Balance,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank account %s: %w", m.BankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBankAccountRepository) DeleteBankAccount(ctx context.Context, bankAccountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bank_accounts WHERE bank_account_id = $1;`, bankAccountID)
	if err != nil {
		return fmt.Errorf("failed to delete bank account %s: %w", bankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`

	var m models.BankAccount
	err := r.Pool.QueryRow(ctx, query, bankAccountID).Scan(
		&m.BankAccountID, &m.BankName, &m.AccountNumber, &m.Holder, &m.Balance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", bankAccountID, err)
	}

	account := mapping.ToDomainBankAccount(m)
	return &account, nil
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts ORDER BY bank_name ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		var m models.BankAccount
		err := rows.Scan(
			&m.BankAccountID, &m.BankName, &m.AccountNumber, &m.Holder, &m.Balance,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainBankAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	return accounts, nil
}
