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

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error
	GetWithdrawalByID(ctx context.Context, id string) (*models.Withdrawal, error)
	GetWithdrawalsByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status models.WithdrawalStatus) ([]models.Withdrawal, error)
	UpdateWithdrawalStatus(ctx context.Context, withdrawal *models.Withdrawal, from models.WithdrawalStatus) error
	GetTotalWithdrawn(ctx context.Context, userID int64) (models.Cents, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, user_id, amount_cents, payment_method, status, payment_details,
	notes, rejection_reason, admin_note, decided_by, decided_at, gateway_ref, created_at, updated_at`

// CreateWithdrawal inserts the withdrawal and reserves its commissions
// in one transaction. The reservation insert only succeeds while the
// commission is confirmed, owned by the requesting user and not held by
// another non-terminal withdrawal, so a concurrent submit for the same
// commission fails here instead of double-reserving.
func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO withdrawals (id, user_id, amount_cents, payment_method, status, payment_details, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`, withdrawal.ID, withdrawal.UserID, withdrawal.Amount, withdrawal.PaymentMethod,
		withdrawal.Status, nullableJSON(withdrawal.PaymentDetails), withdrawal.Notes, withdrawal.CreatedAt)
	if err != nil {
		return err
	}

	for _, commissionID := range withdrawal.CommissionIDs {
		var res sql.Result
		res, err = tx.ExecContext(ctx, `
			INSERT INTO withdrawal_commissions (withdrawal_id, commission_id)
			SELECT $1, c.id FROM commissions c
			WHERE c.id = $2 AND c.user_id = $3 AND c.status = 'CONFIRMED'
			  AND NOT EXISTS (
				SELECT 1 FROM withdrawal_commissions wc
				JOIN withdrawals w ON w.id = wc.withdrawal_id
				WHERE wc.commission_id = c.id
				  AND w.status IN `+nonTerminalWithdrawals+`
				  AND w.id <> $1
			  )
		`, withdrawal.ID, commissionID, withdrawal.UserID)
		if err != nil {
			return err
		}

		var affected int64
		affected, err = res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			err = apperrors.ErrCommissionReserved
			return err
		}
	}

	err = tx.Commit()
	return err
}

func (r *withdrawalRepo) GetWithdrawalByID(ctx context.Context, id string) (*models.Withdrawal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id=$1`, id)

	withdrawal, err := scanWithdrawal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadCommissionIDs(ctx, withdrawal); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (r *withdrawalRepo) GetWithdrawalsByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id=$1 ORDER BY created_at DESC`
	return r.queryWithdrawals(ctx, query, userID)
}

// ListWithdrawals returns withdrawals across all users, optionally
// filtered by status. An empty status means no filter.
func (r *withdrawalRepo) ListWithdrawals(ctx context.Context, status models.WithdrawalStatus) ([]models.Withdrawal, error) {
	if status == "" {
		query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC`
		return r.queryWithdrawals(ctx, query)
	}
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE status=$1 ORDER BY created_at DESC`
	return r.queryWithdrawals(ctx, query, status)
}

// UpdateWithdrawalStatus persists the withdrawal's mutable fields with
// a compare-and-set on the previous status. Zero rows affected means
// the withdrawal moved concurrently (or never existed).
func (r *withdrawalRepo) UpdateWithdrawalStatus(ctx context.Context, withdrawal *models.Withdrawal, from models.WithdrawalStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawals
		SET status=$1, rejection_reason=$2, admin_note=$3, decided_by=$4, decided_at=$5, gateway_ref=$6, updated_at=now()
		WHERE id=$7 AND status=$8
	`, withdrawal.Status, withdrawal.RejectionReason, withdrawal.AdminNote,
		withdrawal.DecidedBy, withdrawal.DecidedAt, withdrawal.GatewayRef, withdrawal.ID, from)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrInvalidTransition
	}
	return nil
}

func (r *withdrawalRepo) GetTotalWithdrawn(ctx context.Context, userID int64) (models.Cents, error) {
	var total models.Cents
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM withdrawals WHERE user_id=$1 AND status='COMPLETED'`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		logger.Log.Error("failed to get total withdrawn", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *withdrawalRepo) queryWithdrawals(ctx context.Context, query string, args ...any) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range withdrawals {
		if err := r.loadCommissionIDs(ctx, &withdrawals[i]); err != nil {
			return nil, err
		}
	}
	return withdrawals, nil
}

func (r *withdrawalRepo) loadCommissionIDs(ctx context.Context, withdrawal *models.Withdrawal) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT commission_id FROM withdrawal_commissions WHERE withdrawal_id=$1 ORDER BY commission_id`,
		withdrawal.ID)
	if err != nil {
		return err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	withdrawal.CommissionIDs = ids
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWithdrawal(row rowScanner) (*models.Withdrawal, error) {
	var (
		w         models.Withdrawal
		details   []byte
		decidedBy sql.NullInt64
		decidedAt sql.NullTime
	)

	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.PaymentMethod, &w.Status, &details,
		&w.Notes, &w.RejectionReason, &w.AdminNote, &decidedBy, &decidedAt,
		&w.GatewayRef, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}

	w.PaymentDetails = details
	if decidedBy.Valid {
		w.DecidedBy = &decidedBy.Int64
	}
	if decidedAt.Valid {
		t := decidedAt.Time
		w.DecidedAt = &t
	}
	return &w, nil
}

func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
