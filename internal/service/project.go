package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/infogen87/myportfolio/internal/repository"
)

// SortLatest is the one recognized sort value: ascending creation time.
// Every other value sorts descending.
const SortLatest = "latest"

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Page is the list envelope: pre-pagination total scoped to the owner,
// the echoed limit/offset, and one page of results.
type Page[T any] struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Results []T   `json:"results"`
}

type ProjectCreate struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	GithubLink  *string  `json:"github_link" binding:"omitempty,max=500"`
	LiveLink    *string  `json:"live_link" binding:"omitempty,max=500"`
	Tools       []string `json:"tools" binding:"omitempty,dive,required,max=100"`
}

// ProjectUpdate carries a partial payload: nil means "leave untouched",
// including the tool list.
type ProjectUpdate struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	GithubLink  *string   `json:"github_link" binding:"omitempty,max=500"`
	LiveLink    *string   `json:"live_link" binding:"omitempty,max=500"`
	Tools       *[]string `json:"tools" binding:"omitempty,dive,required,max=100"`
}

type ProjectService struct {
	projects *repository.ProjectRepo
}

func NewProjectService(projects *repository.ProjectRepo) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(ownerID string, payload ProjectCreate) (*repository.Project, error) {
	project := &repository.Project{
		UserID:      ownerID,
		Name:        payload.Name,
		Description: payload.Description,
		GithubLink:  payload.GithubLink,
		LiveLink:    payload.LiveLink,
	}
	if err := s.projects.Create(project, payload.Tools); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Get(ownerID, id string) (*repository.Project, error) {
	project, err := s.projects.FindByOwner(ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) List(ownerID string, limit, offset int, sort string) (*Page[repository.Project], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	projects, total, err := s.projects.ListByOwner(ownerID, limit, offset, sort == SortLatest)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []repository.Project{}
	}
	return &Page[repository.Project]{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		Results: projects,
	}, nil
}

func (s *ProjectService) Update(ownerID, id string, payload ProjectUpdate) (*repository.Project, error) {
	fields := map[string]interface{}{}
	if payload.Name != nil {
		fields["name"] = *payload.Name
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}
	if payload.GithubLink != nil {
		fields["github_link"] = *payload.GithubLink
	}
	if payload.LiveLink != nil {
		fields["live_link"] = *payload.LiveLink
	}
	project, err := s.projects.Update(ownerID, id, fields, payload.Tools)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ownerID, id string) error {
	if err := s.projects.Delete(ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
