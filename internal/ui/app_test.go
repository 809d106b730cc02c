package ui

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/qwikish/taskboard/internal/models"
	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/pages"
)

// fakeStorage satisfies Storage and can be told to fail saves.
type fakeStorage struct {
	failSaves bool
	settings  map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{settings: make(map[string]string)}
}

func (f *fakeStorage) Load() (*store.State, error) { return nil, nil }

func (f *fakeStorage) Save(*store.State) error {
	if f.failSaves {
		return errors.New("disk full")
	}
	return nil
}

func (f *fakeStorage) GetSetting(key string) (string, error) { return f.settings[key], nil }

func (f *fakeStorage) SetSetting(key, value string) error {
	f.settings[key] = value
	return nil
}

func (f *fakeStorage) Reset() error { return nil }

func TestDataResetRebuildsStoreWithAppLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	storage := newFakeStorage()

	app := NewApp(store.New(storage, store.WithLogger(log)), storage, log)
	app.Update(pages.DataReset{})

	storage.failSaves = true
	app.store.AddTask(models.Task{Title: "after reset", Status: models.StatusTodo})

	if !strings.Contains(buf.String(), "disk full") {
		t.Error("save failure after reset did not reach the app logger")
	}
}

func TestLastPageRestoredOnStartup(t *testing.T) {
	storage := newFakeStorage()
	storage.settings["last_page"] = "2"

	app := NewApp(store.New(storage), storage, nil)
	if app.current != PageCalendar {
		t.Errorf("current page = %d, want %d", app.current, PageCalendar)
	}
}
