package db

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/terraincognita07/rangepicker/internal/models"
)

func TestPickerRepositoryRoundTrip(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "rangepicker-repo.db"))
	repositories := NewRepositories(database)

	picker := models.Picker{
		PublicID: "pk_test",
		Options: models.PickerOptions{
			InitialStartDate:   "2024-06-01",
			SelectedDates:      []string{"2024-06-02"},
			Compare:            models.CompareYes,
			EnableCompareDates: true,
		},
		CommittedStart:   "2024-06-01",
		CommittedCompare: []string{"2024-06-02"},
		CreatedAt:        time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC),
	}
	if err := repositories.Pickers.Create(&picker); err != nil {
		t.Fatalf("create picker: %v", err)
	}

	loaded, found, err := repositories.Pickers.FindByPublicID("pk_test")
	if err != nil || !found {
		t.Fatalf("find picker: found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(loaded.Options, picker.Options) {
		t.Fatalf("options did not survive storage: %+v", loaded.Options)
	}

	loaded.CompareMode = true
	loaded.CommittedEnd = "2024-06-04"
	loaded.CommittedCompare = []string{"2024-06-02", "2024-06-03"}
	loaded.Options.AutoOpen = true
	if err := repositories.Pickers.SaveCommitted(&loaded); err != nil {
		t.Fatalf("save committed: %v", err)
	}

	reloaded, _, err := repositories.Pickers.FindByPublicID("pk_test")
	if err != nil {
		t.Fatalf("reload picker: %v", err)
	}
	if !reloaded.CompareMode || reloaded.CommittedEnd != "2024-06-04" || len(reloaded.CommittedCompare) != 2 {
		t.Fatalf("committed columns not saved: %+v", reloaded)
	}
	if reloaded.Options.AutoOpen {
		t.Fatal("expected options to be left untouched by SaveCommitted")
	}

	if _, found, err := repositories.Pickers.FindByPublicID("pk_missing"); err != nil || found {
		t.Fatalf("expected missing picker, found=%v err=%v", found, err)
	}

	listed, err := repositories.Pickers.List()
	if err != nil || len(listed) != 1 {
		t.Fatalf("list pickers: %d err=%v", len(listed), err)
	}
}

func TestPickerChangeRepositoryRangeAndDelete(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "rangepicker-changes.db"))
	repositories := NewRepositories(database)

	picker := models.Picker{PublicID: "pk_changes", CreatedAt: time.Now().UTC()}
	if err := repositories.Pickers.Create(&picker); err != nil {
		t.Fatalf("create picker: %v", err)
	}

	for _, day := range []int{14, 15, 16} {
		change := models.PickerChange{
			PickerID:     picker.ID,
			Kind:         models.ChangeKindConfirm,
			StartDate:    "2024-06-01",
			EndDate:      "2024-06-02",
			CompareDates: []string{},
			CreatedAt:    time.Date(2024, time.June, day, 12, 0, 0, 0, time.UTC),
		}
		if err := repositories.PickerChanges.Create(&change); err != nil {
			t.Fatalf("create change: %v", err)
		}
	}

	from := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC)
	changes, err := repositories.PickerChanges.ListByPickerRange(picker.ID, &from, &to)
	if err != nil {
		t.Fatalf("list changes: %v", err)
	}
	if len(changes) != 1 || changes[0].CreatedAt.Day() != 15 {
		t.Fatalf("expected only the June 15 change, got %+v", changes)
	}

	all, err := repositories.PickerChanges.ListByPickerRange(picker.ID, nil, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected all three changes, got %d err=%v", len(all), err)
	}

	if err := repositories.Pickers.Delete(picker.ID); err != nil {
		t.Fatalf("delete picker: %v", err)
	}
	count, err := repositories.PickerChanges.CountByPicker(picker.ID)
	if err != nil {
		t.Fatalf("count changes: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected change log to be removed, got %d", count)
	}
}
