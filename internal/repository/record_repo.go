package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jiyoon/drambook/internal/domain"
)

// RecordRepository handles tasting-record persistence.
type RecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a RecordRepository.
func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Create inserts a new tasting record.
func (r *RecordRepository) Create(ctx context.Context, record *domain.TastingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByID retrieves a record owned by userID. Returns
// gorm.ErrRecordNotFound when the record is missing or owned by
// someone else.
func (r *RecordRepository) GetByID(ctx context.Context, id, userID string) (*domain.TastingRecord, error) {
	var record domain.TastingRecord
	if err := r.db.WithContext(ctx).
		First(&record, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Update overwrites the editable fields of a record owned by userID.
func (r *RecordRepository) Update(ctx context.Context, record *domain.TastingRecord) error {
	result := r.db.WithContext(ctx).
		Model(&domain.TastingRecord{}).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Updates(map[string]interface{}{
			"whiskey_name": record.WhiskeyName,
			"taste_notes":  record.TasteNotes,
			"rating":       record.Rating,
			"memo":         record.Memo,
			"tasted_at":    record.TastedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks a record deleted: sets the Deleted column and
// prefixes the memo with the legacy deletion marker so older readers
// keep skipping it.
func (r *RecordRepository) SoftDelete(ctx context.Context, id, userID string) error {
	var record domain.TastingRecord
	if err := r.db.WithContext(ctx).
		First(&record, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return err
	}

	record.Deleted = true
	record.Memo = domain.MarkDeletedMemo(record.Memo, time.Now())
	return r.db.WithContext(ctx).Save(&record).Error
}

// GetUserRecords returns one user's visible records, newest first.
// Both the Deleted column and the legacy memo marker are filtered.
func (r *RecordRepository) GetUserRecords(ctx context.Context, userID string) ([]domain.TastingRecord, error) {
	var records []domain.TastingRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false).
		Where("memo NOT LIKE ?", domain.DeletedMemoPrefix+"%").
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetAllRecords returns every record, deleted ones included; analysis
// re-checks the deletion marker itself.
func (r *RecordRepository) GetAllRecords(ctx context.Context) ([]domain.TastingRecord, error) {
	var records []domain.TastingRecord
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// AddKeyword appends a preferred keyword to a record's keyword list.
// Returns false without error when the keyword was already present.
func (r *RecordRepository) AddKeyword(ctx context.Context, id, userID, keyword string) (bool, error) {
	var record domain.TastingRecord
	if err := r.db.WithContext(ctx).
		First(&record, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return false, err
	}

	joined, changed := domain.AppendKeyword(record.Keyword, keyword)
	if !changed {
		return false, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&record).
		Update("keyword", joined).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UserStats computes the visible record count and average rating for a
// user, for the denormalized columns on the users table.
func (r *RecordRepository) UserStats(ctx context.Context, userID string) (int, float64, error) {
	records, err := r.GetUserRecords(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	if len(records) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for i := range records {
		sum += records[i].Rating
	}
	avg := float64(sum) / float64(len(records))
	return len(records), avg, nil
}
