package models

// ProjectMembership is the many-to-many link between projects and users.
// The composite primary key makes duplicate links fail at the store, which
// the project service reports as the idempotent "already linked" signal.
// No foreign keys: a deleted project or user may leave dangling rows.
type ProjectMembership struct {
	ProjectID uint `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
}

func (ProjectMembership) TableName() string {
	return "projects_users"
}
