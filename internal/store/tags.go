package store

import (
	"github.com/qwikish/taskboard/internal/models"
)

// TagPatch is a shallow-merge update for a tag. Because tasks reference
// tags by id, edits propagate to every task carrying the tag.
type TagPatch struct {
	Name  *string
	Color *string
}

// AddTag assigns a fresh id and appends the tag.
func (s *Store) AddTag(t models.Tag) models.Tag {
	t.ID = s.newID()
	s.state.Tags = append(s.state.Tags, t)
	s.save()
	return t
}

// UpdateTag shallow-merges the patch over the tag with the given id.
// An unknown id is a silent no-op.
func (s *Store) UpdateTag(id string, patch TagPatch) {
	for i := range s.state.Tags {
		if s.state.Tags[i].ID != id {
			continue
		}
		t := &s.state.Tags[i]
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Color != nil {
			t.Color = *patch.Color
		}
		s.save()
		return
	}
}

// DeleteTag removes the tag with the given id. Task tag references are
// left in place and resolve to nothing at read time.
func (s *Store) DeleteTag(id string) {
	for i := range s.state.Tags {
		if s.state.Tags[i].ID == id {
			s.state.Tags = append(s.state.Tags[:i], s.state.Tags[i+1:]...)
			s.save()
			return
		}
	}
}
