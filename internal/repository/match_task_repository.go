package repository

import (
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"gorm.io/gorm"
)

type MatchTaskRepository struct {
	db *gorm.DB
}

func NewMatchTaskRepository(db *gorm.DB) *MatchTaskRepository {
	return &MatchTaskRepository{db}
}

func (r *MatchTaskRepository) CreateTask(task *model.MatchTask) error {
	return r.db.Create(task).Error
}

func (r *MatchTaskRepository) UpdateTask(task *model.MatchTask) error {
	return r.db.Save(task).Error
}

func (r *MatchTaskRepository) FindTaskByID(id string) (*model.MatchTask, error) {
	var task model.MatchTask
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}
