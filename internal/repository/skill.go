package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Skill struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db: db}
}

func (r *SkillRepo) Create(skill *Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	return r.db.Create(skill).Error
}

func (r *SkillRepo) FindByOwner(ownerID, id string) (*Skill, error) {
	var skill Skill
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) ListByOwner(ownerID string, limit, offset int, sortAsc bool) ([]Skill, int64, error) {
	var total int64
	if err := r.db.Model(&Skill{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sortAsc {
		order = "created_at ASC"
	}
	var skills []Skill
	err := r.db.Where("user_id = ?", ownerID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

func (r *SkillRepo) Update(ownerID, id string, fields map[string]interface{}) (*Skill, error) {
	var skill Skill
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&skill).Error; err != nil {
		return nil, err
	}
	// The timestamp refreshes on every successful update, even when
	// the partial payload carries no fields.
	updates := map[string]interface{}{"updated_at": time.Now()}
	for k, v := range fields {
		updates[k] = v
	}
	if err := r.db.Model(&skill).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) Delete(ownerID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&Skill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
