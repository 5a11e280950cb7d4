package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/minhtran/todi/internal/models"
)

// TaskRecord is the persisted form of a task. Position keeps the in-memory
// insertion order stable across runs.
type TaskRecord struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Position  int    `gorm:"index"`
	Text      string `gorm:"not null"`
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Completed bool `gorm:"default:false"`
	Overdue   bool `gorm:"default:false"`
}

// TableName keeps the table name short
func (TaskRecord) TableName() string {
	return "tasks"
}

// LoadTasks reads the whole collection in stored order
func LoadTasks() ([]models.Task, error) {
	var records []TaskRecord
	if err := DB.Order("position asc").Find(&records).Error; err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, models.Task{
			ID:        r.ID,
			Text:      r.Text,
			Category:  models.Category(r.Category),
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Completed: r.Completed,
			Overdue:   r.Overdue,
		})
	}
	return tasks, nil
}

// ReplaceTasks overwrites the stored collection with the given snapshot.
// The engine mutates tasks in memory; a whole-collection write after each
// command keeps the two in step without tracking per-field diffs.
func ReplaceTasks(tasks []models.Task) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&TaskRecord{}).Error; err != nil {
			return err
		}
		for i, t := range tasks {
			record := TaskRecord{
				ID:        t.ID,
				Position:  i,
				Text:      t.Text,
				Category:  string(t.Category),
				StartDate: t.StartDate,
				EndDate:   t.EndDate,
				Completed: t.Completed,
				Overdue:   t.Overdue,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
