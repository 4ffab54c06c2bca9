package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	GithubLink  *string   `gorm:"size:500" json:"github_link"`
	LiveLink    *string   `gorm:"size:500" json:"live_link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Loaded with an explicit second query, never through gorm relations.
	Tools []Tool `gorm:"-" json:"tools"`
}

type Tool struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID string    `gorm:"type:uuid;not null;index" json:"project_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func newTools(projectID string, names []string) []Tool {
	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, Tool{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Name:      name,
		})
	}
	return tools
}

// Create inserts the project and one tool row per name in a single
// transaction, so a failed tool insert never leaves an orphaned project.
func (r *ProjectRepo) Create(project *Project, toolNames []string) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		tools := newTools(project.ID, toolNames)
		if len(tools) > 0 {
			if err := tx.Create(&tools).Error; err != nil {
				return err
			}
		}
		project.Tools = tools
		return nil
	})
}

// FindByOwner returns the project only when it belongs to ownerID; a
// foreign id surfaces the same ErrRecordNotFound as a missing one.
func (r *ProjectRepo) FindByOwner(ownerID, id string) (*Project, error) {
	var project Project
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&project).Error; err != nil {
		return nil, err
	}
	if err := r.loadTools(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByOwner returns one page plus the pre-pagination total for the
// owner. sortAsc orders by ascending created_at, otherwise descending.
func (r *ProjectRepo) ListByOwner(ownerID string, limit, offset int, sortAsc bool) ([]Project, int64, error) {
	var total int64
	if err := r.db.Model(&Project{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sortAsc {
		order = "created_at ASC"
	}
	var projects []Project
	err := r.db.Where("user_id = ?", ownerID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	if len(projects) > 0 {
		ids := make([]string, len(projects))
		byID := make(map[string]*Project, len(projects))
		for i := range projects {
			ids[i] = projects[i].ID
			projects[i].Tools = []Tool{}
			byID[projects[i].ID] = &projects[i]
		}
		var tools []Tool
		if err := r.db.Where("project_id IN ?", ids).Find(&tools).Error; err != nil {
			return nil, 0, err
		}
		for _, tool := range tools {
			p := byID[tool.ProjectID]
			p.Tools = append(p.Tools, tool)
		}
	}
	return projects, total, nil
}

// Update applies the given columns and, when toolNames is non-nil,
// replaces the full tool set (delete all, reinsert). A nil toolNames
// leaves existing tools untouched.
func (r *ProjectRepo) Update(ownerID, id string, fields map[string]interface{}, toolNames *[]string) (*Project, error) {
	var project Project
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&project).Error; err != nil {
			return err
		}
		// The timestamp refreshes on every successful update, even when
		// the partial payload carries no fields.
		updates := map[string]interface{}{"updated_at": time.Now()}
		for k, v := range fields {
			updates[k] = v
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}
		if toolNames != nil {
			if err := tx.Where("project_id = ?", id).Delete(&Tool{}).Error; err != nil {
				return err
			}
			tools := newTools(id, *toolNames)
			if len(tools) > 0 {
				if err := tx.Create(&tools).Error; err != nil {
					return err
				}
			}
		}
		// Re-read so the returned row reflects exactly what was stored.
		return tx.Where("id = ?", id).First(&project).Error
	})
	if err != nil {
		return nil, err
	}
	if err := r.loadTools(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the project and its tools together. The cascade is
// explicit so it behaves identically on every database backend.
func (r *ProjectRepo) Delete(ownerID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project Project
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&project).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&Tool{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

func (r *ProjectRepo) loadTools(project *Project) error {
	var tools []Tool
	if err := r.db.Where("project_id = ?", project.ID).Find(&tools).Error; err != nil {
		return err
	}
	if tools == nil {
		tools = []Tool{}
	}
	project.Tools = tools
	return nil
}
