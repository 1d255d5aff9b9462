package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/identity"
)

// GormUserRoleRepository implements UserRoleRepository using GORM
type GormUserRoleRepository struct {
	db *gorm.DB
}

// NewGormUserRoleRepository creates a new GormUserRoleRepository
func NewGormUserRoleRepository(db *gorm.DB) *GormUserRoleRepository {
	return &GormUserRoleRepository{db: db}
}

// RolesForUser returns the role assignments of a user. A user without rows
// gets an empty set, not an error.
func (r *GormUserRoleRepository) RolesForUser(ctx context.Context, userID string) (identity.RoleSet, error) {
	var rows []identity.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	roles := make(identity.RoleSet, len(rows))
	for i, row := range rows {
		roles[i] = identity.Role(row.Role)
	}
	return roles, nil
}

// Ensure GormUserRoleRepository implements UserRoleRepository
var _ identity.UserRoleRepository = (*GormUserRoleRepository)(nil)
