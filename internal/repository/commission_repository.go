package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/models"
	"go.uber.org/zap"
)

// nonTerminalWithdrawals is the reservation predicate: a commission
// referenced by a withdrawal in one of these statuses is not available.
const nonTerminalWithdrawals = `('PENDING', 'APPROVED', 'PROCESSING')`

type CommissionRepository interface {
	CreateCommission(ctx context.Context, commission *models.Commission) error
	GetCommissionByID(ctx context.Context, id string) (*models.Commission, error)
	GetCommissionsByUser(ctx context.Context, userID int64) ([]models.Commission, error)
	GetEligibleCommissions(ctx context.Context, userID int64) ([]models.CommissionRef, error)
	GetCommissionTotals(ctx context.Context, userID int64) (pending, earned models.Cents, err error)
	UpdateCommissionStatus(ctx context.Context, id string, status models.CommissionStatus) error
}

type commissionRepo struct {
	db *sql.DB
}

func NewCommissionRepository(db *sql.DB) CommissionRepository {
	return &commissionRepo{db: db}
}

func (r *commissionRepo) CreateCommission(ctx context.Context, commission *models.Commission) error {
	query := `INSERT INTO commissions (id, user_id, amount_cents, currency, type, status, description, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		commission.ID, commission.UserID, commission.Amount, commission.Currency,
		commission.Type, commission.Status, commission.Description, commission.CreatedAt)
	return err
}

func (r *commissionRepo) GetCommissionByID(ctx context.Context, id string) (*models.Commission, error) {
	query := `SELECT id, user_id, amount_cents, currency, type, status, description, created_at
			  FROM commissions WHERE id=$1`
	row := r.db.QueryRowContext(ctx, query, id)

	var c models.Commission
	err := row.Scan(&c.ID, &c.UserID, &c.Amount, &c.Currency, &c.Type, &c.Status, &c.Description, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrCommissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commissionRepo) GetCommissionsByUser(ctx context.Context, userID int64) ([]models.Commission, error) {
	query := `SELECT id, user_id, amount_cents, currency, type, status, description, created_at
			  FROM commissions WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query commissions", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var commissions []models.Commission
	for rows.Next() {
		var c models.Commission
		if err := rows.Scan(&c.ID, &c.UserID, &c.Amount, &c.Currency, &c.Type, &c.Status, &c.Description, &c.CreatedAt); err != nil {
			logger.Log.Error("failed to scan commission", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, c)
	}
	return commissions, rows.Err()
}

// GetEligibleCommissions returns the confirmed commissions of the user
// that no non-terminal withdrawal has reserved.
func (r *commissionRepo) GetEligibleCommissions(ctx context.Context, userID int64) ([]models.CommissionRef, error) {
	query := `
		SELECT c.id, c.amount_cents, c.description, c.created_at
		FROM commissions c
		WHERE c.user_id = $1 AND c.status = 'CONFIRMED'
		  AND NOT EXISTS (
			SELECT 1 FROM withdrawal_commissions wc
			JOIN withdrawals w ON w.id = wc.withdrawal_id
			WHERE wc.commission_id = c.id AND w.status IN ` + nonTerminalWithdrawals + `
		  )
		ORDER BY c.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query eligible commissions", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var refs []models.CommissionRef
	for rows.Next() {
		var ref models.CommissionRef
		if err := rows.Scan(&ref.ID, &ref.Amount, &ref.Description, &ref.CreatedAt); err != nil {
			logger.Log.Error("failed to scan commission ref", zap.Error(err))
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *commissionRepo) GetCommissionTotals(ctx context.Context, userID int64) (models.Cents, models.Cents, error) {
	query := `
		SELECT COALESCE(SUM(amount_cents) FILTER (WHERE status = 'PENDING'), 0),
			   COALESCE(SUM(amount_cents) FILTER (WHERE status IN ('CONFIRMED', 'PAID')), 0)
		FROM commissions WHERE user_id = $1
	`

	var pending, earned models.Cents
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&pending, &earned)
	if err != nil {
		logger.Log.Error("failed to get commission totals", zap.Error(err))
		return 0, 0, err
	}
	return pending, earned, nil
}

func (r *commissionRepo) UpdateCommissionStatus(ctx context.Context, id string, status models.CommissionStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE commissions SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrCommissionNotFound
	}
	return nil
}
