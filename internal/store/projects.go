package store

import (
	"github.com/qwikish/taskboard/internal/models"
)

// ProjectPatch is a shallow-merge update for a project.
type ProjectPatch struct {
	Name        *string
	Description *string
	Color       *string
}

// AddProject assigns a fresh id, stamps createdAt and appends the project.
func (s *Store) AddProject(p models.Project) models.Project {
	p.ID = s.newID()
	p.CreatedAt = s.now()
	s.state.Projects = append(s.state.Projects, p)
	s.save()
	return p
}

// UpdateProject shallow-merges the patch over the project with the given
// id. An unknown id is a silent no-op.
func (s *Store) UpdateProject(id string, patch ProjectPatch) {
	for i := range s.state.Projects {
		if s.state.Projects[i].ID != id {
			continue
		}
		p := &s.state.Projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Color != nil {
			p.Color = *patch.Color
		}
		s.save()
		return
	}
}

// DeleteProject removes the project with the given id. Tasks referencing
// it keep their projectId; a dangling reference means unassigned.
func (s *Store) DeleteProject(id string) {
	for i := range s.state.Projects {
		if s.state.Projects[i].ID == id {
			s.state.Projects = append(s.state.Projects[:i], s.state.Projects[i+1:]...)
			s.save()
			return
		}
	}
}
