package models

// Project statuses accepted by the API and the CSV importer.
const (
	StatusInProgress = "Em andamento"
	StatusDone       = "Concluído"
	StatusPending    = "Pendente"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusInProgress, StatusDone, StatusPending:
		return true
	}
	return false
}

type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	InitialDate Date   `gorm:"not null" json:"initial_date"`
	FinalDate   *Date  `json:"final_date"`
	Status      string `gorm:"not null" json:"status"`
}
