package repository

import (
	"context"
	"errors"

	"jewelry-storefront/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	// IsAdmin reports whether a role record flags the user as admin.
	// A missing record is not an error, it simply means "not admin".
	IsAdmin(ctx context.Context, userID string) (bool, error)
	SetRole(ctx context.Context, userID, role string) error
	FindAll(ctx context.Context) ([]*model.UserRole, error)
}

type roleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepoImpl{
		db: db,
	}
}

func (r *roleRepoImpl) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var role model.UserRole
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&role).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return role.Role == model.RoleAdmin, nil
}

func (r *roleRepoImpl) SetRole(ctx context.Context, userID, role string) error {
	return r.db.WithContext(ctx).
		Save(&model.UserRole{UserID: userID, Role: role}).
		Error
}

func (r *roleRepoImpl) FindAll(ctx context.Context) ([]*model.UserRole, error) {
	var roles []*model.UserRole
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&roles).
		Error

	if err != nil {
		return nil, err
	}

	return roles, nil
}
