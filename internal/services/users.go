package services

import (
	"github.com/gestor-dev/gestor/internal/models"
	"github.com/gestor-dev/gestor/internal/types"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// List follows the same dual contract as project listings: every user when
// page is nil, one page otherwise, with the full count either way.
func (s *UserService) List(page *Page) ([]types.UserResponse, int64, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []types.UserResponse
	err := applyPage(s.db.Model(&models.User{}), page).
		Select("id, name, email, role").
		Scan(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
