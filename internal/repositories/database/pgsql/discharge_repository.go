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

// PgxDischargeRepository persists discharge receipts.
type PgxDischargeRepository struct {
	BaseRepository
}

func newPgxDischargeRepository(db *pgxpool.Pool) portsrepo.DischargeRepositoryFacade {
	return &PgxDischargeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DischargeRepositoryFacade = (*PgxDischargeRepository)(nil)

const dischargeColumns = `
	discharge_id, prestataire, service, montant, date_prestation, lieu, telephone, cni,
	status, signature, signed_by, signed_at, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxDischargeRepository) SaveDischarge(ctx context.Context, discharge domain.Discharge) error {
	m := mapping.ToModelDischarge(discharge)
	query := `
		INSERT INTO discharges (` + dischargeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DischargeID, m.Prestataire, m.Service, m.Montant, m.DatePrestation, m.Lieu, m.Telephone, m.CNI,
		m.Status, m.Signature, m.SignedBy, m.SignedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save discharge %s: %w", m.DischargeID, err)
	}
	return nil
}

func (r *PgxDischargeRepository) UpdateDischarge(ctx context.Context, discharge domain.Discharge) error {
	m := mapping.ToModelDischarge(discharge)
	query := `
		UPDATE discharges SET
			prestataire = $2, service = $3, montant = $4, date_prestation = $5, lieu = $6,
			telephone = $7, cni = $8, status = $9, signature = $10, signed_by = $11, signed_at = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE discharge_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DischargeID, m.Prestataire, m.Service, m.Montant, m.DatePrestation, m.Lieu,
		m.Telephone, m.CNI, m.Status, m.Signature, m.SignedBy, m.SignedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update discharge %s: %w", m.DischargeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDischargeRepository) DeleteDischarge(ctx context.Context, dischargeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM discharges WHERE discharge_id = $1;`, dischargeID)
	if err != nil {
		return fmt.Errorf("failed to delete discharge %s: %w", dischargeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDischargeRepository) FindDischargeByID(ctx context.Context, dischargeID string) (*domain.Discharge, error) {
	query := `SELECT ` + dischargeColumns + ` FROM discharges WHERE discharge_id = $1;`

	var m models.Discharge
	err := r.Pool.QueryRow(ctx, query, dischargeID).Scan(
		&m.DischargeID, &m.Prestataire, &m.Service, &m.Montant, &m.DatePrestation, &m.Lieu, &m.Telephone, &m.CNI,
		&m.Status, &m.Signature, &m.SignedBy, &m.SignedAt, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find discharge %s: %w", dischargeID, err)
	}

	discharge := mapping.ToDomainDischarge(m)
	return &discharge, nil
}

func (r *PgxDischargeRepository) ListDischarges(ctx context.Context, limit int, offset int) ([]domain.Discharge, error) {
	query := `SELECT ` + dischargeColumns + ` FROM discharges ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list discharges: %w", err)
	}
	defer rows.Close()

	var discharges []domain.Discharge
	for rows.Next() {
		var m models.Discharge
		err := rows.Scan(
			&m.DischargeID, &m.Prestataire, &m.Service, &m.Montant, &m.DatePrestation, &m.Lieu, &m.Telephone, &m.CNI,
			&m.Status, &m.Signature, &m.SignedBy, &m.SignedAt, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan discharge row: %w", err)
		}
		discharges = append(discharges, mapping.ToDomainDischarge(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discharge rows: %w", err)
	}
	return discharges, nil
}

func (r *PgxDischargeRepository) ListDischargeIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT discharge_id FROM discharges;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list discharge ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan discharge id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discharge ids: %w", err)
	}
	return ids, nil
}
