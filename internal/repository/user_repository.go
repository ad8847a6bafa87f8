package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"reminder-engine/internal/model"
	"reminder-engine/internal/service"
)

// UserRepository handles reads of item owners and their contact points.
type UserRepository struct {
	db *gorm.DB
}

var _ service.ContactDirectory = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Contact resolves the delivery addresses for an item owner.
func (r *UserRepository) Contact(ctx context.Context, userID uint) (model.Contact, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return model.Contact{}, fmt.Errorf("find owner %d: %w", userID, err)
	}
	return user.Contact(), nil
}

// Upsert creates or refreshes an owner record. The surrounding
// application owns user lifecycle; the engine only needs contact data.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) error {
	db := r.db.WithContext(ctx)
	if user.ID == 0 {
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	}
	if err := db.Save(user).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
