package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/amonks/todo/task"
)

func testStore(t *testing.T, opts Options) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), opts)
}

// fixedClock makes every save produce a distinct backup timestamp.
func fixedClock(s *Store, start time.Time) {
	current := start
	s.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestStore_Load_MissingFile(t *testing.T) {
	s := testStore(t, Options{})

	list, err := s.Load()
	if err != nil {
		t.Fatalf("load of missing file failed: %v", err)
	}
	if len(list.Tasks) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(list.Tasks))
	}
	if list.NextID != 1 {
		t.Errorf("expected NextID 1, got %d", list.NextID)
	}
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	s := testStore(t, Options{})

	due := time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC)
	list := task.NewList()
	list.Add("Pay electricity bill", task.AddOptions{
		Priority: task.PriorityHigh,
		Tags:     []string{"finance", "urgent"},
		Project:  "home",
		DueDate:  &due,
	})
	created := list.Add("Buy milk", task.AddOptions{})
	list.MarkCompleted(created.ID)

	if err := s.Save(list); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.NextID != list.NextID {
		t.Errorf("expected NextID %d, got %d", list.NextID, loaded.NextID)
	}
	if len(loaded.Tasks) != len(list.Tasks) {
		t.Fatalf("expected %d tasks, got %d", len(list.Tasks), len(loaded.Tasks))
	}

	for i, want := range list.Tasks {
		got := loaded.Tasks[i]
		if got.ID != want.ID || got.Title != want.Title || got.Status != want.Status ||
			got.Priority != want.Priority || got.Project != want.Project {
			t.Errorf("task %d mismatch: got %+v, want %+v", i, got, want)
		}
		if !reflect.DeepEqual(got.Tags, want.Tags) {
			t.Errorf("task %d tags = %v, want %v", i, got.Tags, want.Tags)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("task %d created_at = %v, want %v", i, got.CreatedAt, want.CreatedAt)
		}
		if (got.DueDate == nil) != (want.DueDate == nil) {
			t.Errorf("task %d due_date presence mismatch", i)
		} else if got.DueDate != nil && !got.DueDate.Equal(*want.DueDate) {
			t.Errorf("task %d due_date = %v, want %v", i, got.DueDate, want.DueDate)
		}
	}
}

func TestStore_Load_CorruptFile(t *testing.T) {
	s := testStore(t, Options{})
	if err := os.WriteFile(s.path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load()
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if storageErr.Op != "load" {
		t.Errorf("expected op 'load', got %q", storageErr.Op)
	}
	if storageErr.Unwrap() == nil {
		t.Error("expected StorageError to carry a cause")
	}
}

func TestStore_Load_SchemaViolation(t *testing.T) {
	s := testStore(t, Options{})

	// Valid JSON, wrong shape: tasks must be an array.
	doc := `{"version": "1.0.0", "next_id": 1, "tasks": {"oops": true}}`
	if err := os.WriteFile(s.path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load()
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestStore_Load_AcceptsNullOptionalFields(t *testing.T) {
	s := testStore(t, Options{})

	// Files written by older tools spell missing optionals as null.
	doc := `{
  "version": "1.0.0",
  "last_modified": "2026-01-01T00:00:00Z",
  "next_id": 2,
  "tasks": [
    {
      "id": 1,
      "title": "legacy",
      "status": "pending",
      "priority": "medium",
      "tags": null,
      "project": null,
      "created_at": "2026-01-01T00:00:00Z",
      "due_date": null
    }
  ]
}`
	if err := os.WriteFile(s.path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(list.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(list.Tasks))
	}
	got := list.Tasks[0]
	if got.Project != "" || got.DueDate != nil {
		t.Errorf("expected empty optionals, got project=%q due=%v", got.Project, got.DueDate)
	}
}

func TestStore_BackupRotation(t *testing.T) {
	s := testStore(t, Options{})
	fixedClock(s, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))

	list := task.NewList()
	list.Add("rotate me", task.AddOptions{})

	// 15 saves: the first has no current file to back up, so 14
	// backups are created and pruned down to the 10 most recent.
	for i := 0; i < 15; i++ {
		if err := s.Save(list); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	stamps, err := s.ListBackups()
	if err != nil {
		t.Fatalf("list backups failed: %v", err)
	}
	if len(stamps) != 10 {
		t.Fatalf("expected exactly 10 backups, got %d: %v", len(stamps), stamps)
	}

	// The survivors are the 10 most recent, in chronological order.
	// Saves run at 12:00:01..12:00:15; backups are taken on saves
	// 2..15, so the oldest surviving backup is from save 6.
	if want := "2026-03-01_12-00-06"; stamps[0] != want {
		t.Errorf("expected oldest backup %q, got %q", want, stamps[0])
	}
	if want := "2026-03-01_12-00-15"; stamps[len(stamps)-1] != want {
		t.Errorf("expected newest backup %q, got %q", want, stamps[len(stamps)-1])
	}
	for i := 1; i < len(stamps); i++ {
		if stamps[i-1] >= stamps[i] {
			t.Errorf("backups out of order: %q before %q", stamps[i-1], stamps[i])
		}
	}
}

func TestStore_BackupsDisabled(t *testing.T) {
	s := testStore(t, Options{DisableBackups: true})
	fixedClock(s, time.Now())

	list := task.NewList()
	list.Add("no backups", task.AddOptions{})
	for i := 0; i < 3; i++ {
		if err := s.Save(list); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	stamps, err := s.ListBackups()
	if err != nil {
		t.Fatalf("list backups failed: %v", err)
	}
	if len(stamps) != 0 {
		t.Errorf("expected no backups, got %v", stamps)
	}
}

func TestStore_ListBackups_ReadFailure(t *testing.T) {
	s := testStore(t, Options{})

	// A file squatting on the backup directory path makes listing fail.
	if err := os.WriteFile(s.backupDir, []byte("in the way"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.ListBackups()
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if storageErr.Op != "list-backups" {
		t.Errorf("expected op 'list-backups', got %q", storageErr.Op)
	}
}

func TestStore_RestoreBackup(t *testing.T) {
	s := testStore(t, Options{})
	fixedClock(s, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))

	list := task.NewList()
	list.Add("version one", task.AddOptions{})
	if err := s.Save(list); err != nil {
		t.Fatal(err)
	}

	// The second save backs up version one.
	list.Add("version two", task.AddOptions{})
	if err := s.Save(list); err != nil {
		t.Fatal(err)
	}

	stamps, err := s.ListBackups()
	if err != nil || len(stamps) != 1 {
		t.Fatalf("expected one backup, got %v (err %v)", stamps, err)
	}

	if err := s.RestoreBackup(stamps[0]); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	restored, err := s.Load()
	if err != nil {
		t.Fatalf("load after restore failed: %v", err)
	}
	if len(restored.Tasks) != 1 || restored.Tasks[0].Title != "version one" {
		t.Errorf("expected restored version one, got %+v", restored.Tasks)
	}
}

func TestStore_RestoreBackup_NotFound(t *testing.T) {
	s := testStore(t, Options{})

	err := s.RestoreBackup("2026-01-01_00-00-00")
	if !errors.Is(err, ErrBackupNotFound) {
		t.Errorf("expected ErrBackupNotFound, got %v", err)
	}
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("expected StorageError, got %v", err)
	}
}

func TestStore_Load_IgnoresCrashArtifacts(t *testing.T) {
	s := testStore(t, Options{})

	list := task.NewList()
	list.Add("survivor", task.AddOptions{})
	if err := s.Save(list); err != nil {
		t.Fatal(err)
	}

	// A crash before the final rename leaves a temp file behind; the
	// live file must load unchanged.
	artifact := s.path + ".123456.tmp"
	if err := os.WriteFile(artifact, []byte("partial garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].Title != "survivor" {
		t.Errorf("expected original content, got %+v", loaded.Tasks)
	}
}

func TestStore_Save_FailureLeavesFileUntouched(t *testing.T) {
	s := testStore(t, Options{})
	fixedClock(s, time.Now())

	list := task.NewList()
	list.Add("keep me", task.AddOptions{})
	if err := s.Save(list); err != nil {
		t.Fatal(err)
	}

	// Occupy the backup directory path with a file so the
	// backup-before-write step fails before any write to the target.
	if err := os.WriteFile(s.backupDir, []byte("in the way"), 0o644); err != nil {
		t.Fatal(err)
	}

	list.Add("must not land", task.AddOptions{})
	err := s.Save(list)
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].Title != "keep me" {
		t.Errorf("failed save changed the live file: %+v", loaded.Tasks)
	}
}

func TestStore_SaveWritesVersionTag(t *testing.T) {
	s := testStore(t, Options{})

	if err := s.Save(task.NewList()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if err := validateDocument(data); err != nil {
		t.Errorf("saved document fails its own schema: %v", err)
	}
	for _, want := range []string{`"version": "1.0.0"`, `"last_modified"`, `"next_id": 1`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("saved document missing %s", want)
		}
	}
}
