package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"inkwell/contexts/identity-access/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	"inkwell/contexts/identity-access/account-service/ports"
	"inkwell/internal/shared/identity"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&accountModel{})
}

func (r *Repository) CreateAccount(ctx context.Context, account entities.Account) error {
	row := toAccountModel(account)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAccountExists
		}
		return err
	}
	return nil
}

func (r *Repository) GetAccount(ctx context.Context, accountID string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND deleted = FALSE", accountID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

// GetAccountByEmail does not filter soft-deleted rows; login lookups keep
// the original semantics.
func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) LookupAccount(ctx context.Context, accountID string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

// AccountTaken counts soft-deleted rows on purpose: the store does not
// exempt them from the uniqueness check.
func (r *Repository) AccountTaken(ctx context.Context, email string, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("LOWER(email) = LOWER(?) OR LOWER(username) = LOWER(?)", email, username).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) UpdateAccount(ctx context.Context, account entities.Account) error {
	row := toAccountModel(account)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *Repository) UpdateProfile(
	ctx context.Context,
	accountID string,
	patch ports.ProfilePatch,
	now time.Time,
) (entities.Account, error) {
	updates := map[string]any{"updated_at": now}
	if patch.Username != "" {
		updates["username"] = patch.Username
	}
	if patch.Email != "" {
		updates["email"] = patch.Email
	}

	result := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("account_id = ? AND deleted = FALSE", accountID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return entities.Account{}, domainerrors.ErrAccountExists
		}
		return entities.Account{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return r.GetAccount(ctx, accountID)
}

func (r *Repository) SoftDeleteAccount(ctx context.Context, accountID string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("account_id = ? AND deleted = FALSE", accountID).
		Updates(map[string]any{"deleted": true, "updated_at": now})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) ListAccounts(ctx context.Context) ([]entities.Account, error) {
	var rows []accountModel
	if err := r.db.WithContext(ctx).
		Where("deleted = FALSE").
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Account, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// Username implements the account directory consumed by the publishing
// context.
func (r *Repository) Username(ctx context.Context, accountID string) (string, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Select("username").
		Where("account_id = ?", accountID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrAccountNotFound
		}
		return "", err
	}
	return row.Username, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type accountModel struct {
	AccountID    string    `gorm:"column:account_id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	Deleted      bool      `gorm:"column:deleted"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (accountModel) TableName() string { return "accounts" }

func (m accountModel) toEntity() entities.Account {
	return entities.Account{
		AccountID:    m.AccountID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         identity.Role(m.Role),
		Deleted:      m.Deleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toAccountModel(account entities.Account) accountModel {
	return accountModel{
		AccountID:    account.AccountID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
		Deleted:      account.Deleted,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
