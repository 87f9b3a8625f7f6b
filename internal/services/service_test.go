package services

import (
	"fmt"
	"testing"

	"github.com/gestor-dev/gestor/db"
	"github.com/gestor-dev/gestor/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory store with the production schema.
// Connections are capped at one so every query sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return gdb
}

// createTestUser inserts a user directly, bypassing bcrypt for speed.
func createTestUser(t *testing.T, gdb *gorm.DB, name string) models.User {
	t.Helper()

	user := models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Role:         "Gerente",
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user %q: %v", name, err)
	}
	return user
}

// createTestProject inserts a project directly with a generated name.
func createTestProject(t *testing.T, gdb *gorm.DB, n int) models.Project {
	t.Helper()

	initial, err := models.ParseDate("2024-01-01")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}

	project := models.Project{
		Name:        fmt.Sprintf("Projeto %d", n),
		Description: "seeded",
		InitialDate: initial,
		Status:      models.StatusPending,
	}
	if err := gdb.Create(&project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

func membershipCount(t *testing.T, gdb *gorm.DB, projectID, userID uint) int64 {
	t.Helper()

	var count int64
	err := gdb.Model(&models.ProjectMembership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("failed to count memberships: %v", err)
	}
	return count
}
