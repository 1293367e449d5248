package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jiyoon/drambook/internal/domain"
)

// ProductRepository handles the venue menu lists used for whiskey-name
// autocompletion.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a ProductRepository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListNamesByVenue returns product names for one venue in insertion
// order.
func (r *ProductRepository) ListNamesByVenue(ctx context.Context, venue string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("venue = ?", venue).
		Order("id ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// ReplaceVenue swaps out a venue's menu in one transaction; used by
// the seed command when a menu sheet is re-imported.
func (r *ProductRepository) ReplaceVenue(ctx context.Context, venue string, names []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue = ?", venue).Delete(&domain.Product{}).Error; err != nil {
			return err
		}
		if len(names) == 0 {
			return nil
		}
		products := make([]domain.Product, 0, len(names))
		for _, name := range names {
			products = append(products, domain.Product{Venue: venue, Name: name})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
	})
}
