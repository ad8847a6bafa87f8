package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"reminder-engine/internal/model"
	"reminder-engine/internal/service"
)

// ItemRepository handles persistence for schedulable items.
type ItemRepository struct {
	db *gorm.DB
}

var _ service.ItemStore = (*ItemRepository)(nil)

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByOwner loads an item scoped to its owner, for host-facing reads.
func (r *ItemRepository) FindByOwner(ctx context.Context, userID uint, id string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindDue returns not-yet-done items whose trigger instant falls inside
// [now-window, now]. Both boundaries are inclusive so an item due exactly
// at tick time is never skipped. The read is pure: an item stays a
// candidate until its done flag is committed.
func (r *ItemRepository) FindDue(ctx context.Context, now time.Time, window time.Duration) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("done = ? AND due_at >= ? AND due_at <= ?", false, now.Add(-window), now).
		Order("due_at").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find due items: %w", err)
	}
	return items, nil
}

// Search filters the owner's items by completion state and an optional
// due-time range.
func (r *ItemRepository) Search(ctx context.Context, userID uint, done *bool, from, to *time.Time) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if done != nil {
		q = q.Where("done = ?", *done)
	}
	if from != nil && to != nil {
		q = q.Where("due_at >= ? AND due_at <= ?", *from, *to)
	}
	var items []model.Item
	if err := q.Order("due_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Save(ctx context.Context, item *model.Item) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("save item: %w", err)
	}
	return nil
}

// MarkDone flips the terminal flag with a conditional write: the update
// applies only while the flag is still false. The boolean result reports
// whether this call won the flip; false means another worker or an
// overlapping tick already terminated the item.
func (r *ItemRepository) MarkDone(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ? AND done = ?", id, false).
		Update("done", true)
	if res.Error != nil {
		return false, fmt.Errorf("mark item done: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a task for the given user, regardless of it being recurring or not.
func (r *ItemRepository) Delete(ctx context.Context, userID uint, id string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Item{}).Error; err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
