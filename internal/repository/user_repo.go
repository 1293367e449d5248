package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jiyoon/drambook/internal/domain"
)

// UserRepository handles user persistence.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates the user on first login or refreshes last_login and
// the denormalized statistics on subsequent logins.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_login", "total_records", "avg_rating", "updated_at",
		}),
	}).Create(user).Error
}

// UpdateStats refreshes the denormalized record count and average
// rating, stamping last_login as the original did on every stats
// write.
func (r *UserRepository) UpdateStats(ctx context.Context, userID string, totalRecords int, avgRating float64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_records": totalRecords,
			"avg_rating":    avgRating,
			"last_login":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddPreferredKeyword appends a keyword to the user's preference list.
// Returns false without error when already present.
func (r *UserRepository) AddPreferredKeyword(ctx context.Context, userID, keyword string) (bool, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return false, err
	}

	joined, changed := domain.AppendKeyword(user.Keyword, keyword)
	if !changed {
		return false, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&user).
		Update("keyword", joined).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetPreferredKeywords returns the user's saved keywords. An unknown
// user yields an empty list, not an error.
func (r *UserRepository) GetPreferredKeywords(ctx context.Context, userID string) ([]string, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user.PreferredKeywords(), nil
}
