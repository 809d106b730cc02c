package pages

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/qwikish/taskboard/internal/models"
	"github.com/qwikish/taskboard/internal/store"
)

func TestBoardViewTruncatesTitlesOnRuneBoundaries(t *testing.T) {
	s := store.New(nullAdapter{})
	s.AddTask(models.Task{
		Title:    strings.Repeat("日本語のタスク", 10),
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
	})

	p := NewBoardPage(s)
	p.Init()

	view := p.View()
	if !utf8.ValidString(view) {
		t.Fatal("board view contains a split multi-byte rune")
	}
	if !strings.Contains(view, "…") {
		t.Error("long title was not truncated with an ellipsis")
	}
}
