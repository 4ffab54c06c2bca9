package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/infogen87/myportfolio/internal/repository"
)

type SkillCreate struct {
	Name string `json:"name" binding:"required,max=100"`
}

type SkillUpdate struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
}

type SkillService struct {
	skills *repository.SkillRepo
}

func NewSkillService(skills *repository.SkillRepo) *SkillService {
	return &SkillService{skills: skills}
}

func (s *SkillService) Create(ownerID string, payload SkillCreate) (*repository.Skill, error) {
	skill := &repository.Skill{UserID: ownerID, Name: payload.Name}
	if err := s.skills.Create(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) Get(ownerID, id string) (*repository.Skill, error) {
	skill, err := s.skills.FindByOwner(ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) List(ownerID string, limit, offset int, sort string) (*Page[repository.Skill], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	skills, total, err := s.skills.ListByOwner(ownerID, limit, offset, sort == SortLatest)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []repository.Skill{}
	}
	return &Page[repository.Skill]{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		Results: skills,
	}, nil
}

func (s *SkillService) Update(ownerID, id string, payload SkillUpdate) (*repository.Skill, error) {
	fields := map[string]interface{}{}
	if payload.Name != nil {
		fields["name"] = *payload.Name
	}
	skill, err := s.skills.Update(ownerID, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) Delete(ownerID, id string) error {
	if err := s.skills.Delete(ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
