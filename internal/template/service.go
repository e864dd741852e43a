package template

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/flowhub/flowhub/internal/process/model"
)

// Service serves the built-in template catalog and instantiates processes
// from it. Templates are static; only instantiation touches the database.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every catalog template.
func (s *Service) List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// ListByCategory returns the templates of one category. The category "all"
// (or an empty string) returns the whole catalog.
func (s *Service) ListByCategory(category string) []Template {
	if category == "" || category == "all" {
		return s.List()
	}
	var out []Template
	for _, t := range catalog {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// GetByID returns the catalog template with the given ID, or ErrNotFound.
func (s *Service) GetByID(templateID int) (*Template, error) {
	for _, t := range catalog {
		if t.ID == templateID {
			tc := t
			return &tc, nil
		}
	}
	return nil, fmt.Errorf("template %d: %w", templateID, model.ErrNotFound)
}

// Instantiate creates a new process from a catalog template. Stages are deep
// copied so later edits to the process never reach back into the catalog,
// and the template's identity is recorded on the process as provenance.
// An empty name falls back to the template name.
func (s *Service) Instantiate(ctx context.Context, templateID int, name, owner string) (*model.Process, error) {
	tpl, err := s.GetByID(templateID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = tpl.Name
	}

	stages := make(model.StageList, len(tpl.Stages))
	copy(stages, tpl.Stages)
	for i := range stages {
		if tpl.Stages[i].WIPLimit != nil {
			limit := *tpl.Stages[i].WIPLimit
			stages[i].WIPLimit = &limit
		}
	}

	process := &model.Process{
		Name:         name,
		Owner:        owner,
		Tags:         model.TagList{tpl.Category},
		Stages:       stages,
		TemplateID:   &tpl.ID,
		TemplateName: tpl.Name,
	}
	if err := s.db.WithContext(ctx).Create(process).Error; err != nil {
		return nil, fmt.Errorf("failed to create process from template %d: %w", templateID, err)
	}

	slog.InfoContext(ctx, "process instantiated from template",
		"template_id", tpl.ID,
		"process_id", process.ID,
		"process_name", process.Name,
	)
	return process, nil
}
