package services

import (
	"errors"

	"github.com/gestor-dev/gestor/internal/models"
	"github.com/gestor-dev/gestor/internal/types"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// Create inserts the project and links its creator in one transaction, so
// a crash between the two writes cannot leave an ownerless project.
func (s *ProjectService) Create(project *models.Project, creatorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		membership := models.ProjectMembership{
			ProjectID: project.ID,
			UserID:    creatorID,
		}

		return tx.Create(&membership).Error
	})
}

// List returns one page of projects, or every project when page is nil.
// The count is always across all rows.
func (s *ProjectService) List(page *Page) ([]models.Project, int64, error) {
	var total int64
	if err := s.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := applyPage(s.db, page).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update is a full-record overwrite. A missing id is a silent no-op: the
// contract does not distinguish "updated" from "nothing matched".
func (s *ProjectService) Update(id uint, project models.Project) error {
	return s.db.Model(&models.Project{}).
		Where("id = ?", id).
		Select("name", "description", "initial_date", "final_date", "status").
		Updates(project).Error
}

// Delete removes the project row. Memberships are left behind on purpose;
// dangling rows are accepted.
func (s *ProjectService) Delete(id uint) error {
	return s.db.Delete(&models.Project{}, id).Error
}

// LinkUser adds a membership. A pair that already exists trips the
// composite primary key and is reported as linked=false, not as an error.
func (s *ProjectService) LinkUser(projectID, userID uint) (bool, string, error) {
	membership := models.ProjectMembership{
		ProjectID: projectID,
		UserID:    userID,
	}

	if err := s.db.Create(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, "User already linked to project", nil
		}
		return false, "", err
	}

	return true, "User linked to project successfully", nil
}

func (s *ProjectService) UnlinkUser(projectID, userID uint) error {
	return s.db.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMembership{}).Error
}

// UsersForProject lists the members of a project, password excluded.
func (s *ProjectService) UsersForProject(projectID uint, page *Page) ([]types.UserResponse, int64, error) {
	base := s.db.Model(&models.User{}).
		Joins("INNER JOIN projects_users pu ON pu.user_id = users.id").
		Where("pu.project_id = ?", projectID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []types.UserResponse
	err := applyPage(base.Session(&gorm.Session{}), page).
		Select("users.id, users.name, users.email, users.role").
		Scan(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ProjectsForUser lists the projects a user is a member of.
func (s *ProjectService) ProjectsForUser(userID uint, page *Page) ([]models.Project, int64, error) {
	base := s.db.Model(&models.Project{}).
		Joins("INNER JOIN projects_users pu ON pu.project_id = projects.id").
		Where("pu.user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := applyPage(base.Session(&gorm.Session{}), page).
		Select("projects.*").
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// StatusSummary feeds the dashboard: project counts grouped by status.
func (s *ProjectService) StatusSummary() (map[string]int64, int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	err := s.db.Model(&models.Project{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	counts := make(map[string]int64, len(rows))
	var total int64

	for _, row := range rows {
		counts[row.Status] = row.Total
		total += row.Total
	}

	return counts, total, nil
}
