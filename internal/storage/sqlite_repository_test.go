package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/drilld/internal/model"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "drilld-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func testSkill(id, name string) model.Skill {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return model.Skill{
		ID:        id,
		GameID:    model.DefaultGameID,
		Name:      name,
		TTS:       name,
		Interval:  30,
		HeroIDs:   []string{},
		RoleIDs:   []string{},
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSaveAllRoundTripPreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	in := []model.Skill{testSkill("b", "Second"), testSkill("a", "First"), testSkill("c", "Third")}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("save all: %v", err)
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", in, got)
	}
}

func TestSavePrependsNewAndReplacesExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	if err := repo.SaveAll(ctx, []model.Skill{testSkill("a", "First")}); err != nil {
		t.Fatalf("save all: %v", err)
	}
	if err := repo.Save(ctx, testSkill("b", "Newcomer")); err != nil {
		t.Fatalf("save new: %v", err)
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("expected new record first, got %+v", got)
	}

	updated := testSkill("a", "Renamed")
	updated.Tags = []string{"Aim"}
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("save existing: %v", err)
	}
	got, err = repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if got[1].Name != "Renamed" || !reflect.DeepEqual(got[1].Tags, []string{"Aim"}) {
		t.Fatalf("expected updated record, got %+v", got[1])
	}
}

func TestDeleteArchivesAtStorageLayer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	if err := repo.SaveAll(ctx, []model.Skill{testSkill("a", "First")}); err != nil {
		t.Fatalf("save all: %v", err)
	}
	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(got) != 1 || !got[0].IsArchived {
		t.Fatalf("expected archived record retained, got %+v", got)
	}

	if err := repo.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLegacySingleIDPromotedToList(t *testing.T) {
	if got, err := decodeStringList(`"ana"`); err != nil || !reflect.DeepEqual(got, []string{"ana"}) {
		t.Fatalf("expected [ana], got %v (%v)", got, err)
	}
	if got, err := decodeStringList("ana"); err != nil || !reflect.DeepEqual(got, []string{"ana"}) {
		t.Fatalf("expected [ana], got %v (%v)", got, err)
	}
	if got, err := decodeStringList(`["ana","mercy"]`); err != nil || len(got) != 2 {
		t.Fatalf("expected two ids, got %v (%v)", got, err)
	}
	if got, err := decodeStringList(""); err != nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v (%v)", got, err)
	}
	if _, err := decodeStringList(`[broken`); err == nil {
		t.Fatal("expected error for corrupt list")
	}
}

func TestSchemaVersionAheadIsRejected(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	if _, err := repo.db.Exec(`UPDATE schema_info SET version = ?`, SchemaVersion+1); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if _, err := repo.GetAll(ctx); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestSettingsRoundTripAndDefaultsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	if _, err := repo.GetVolume(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unset volume, got %v", err)
	}
	if err := repo.SetVolume(ctx, 0.4); err != nil {
		t.Fatalf("set volume: %v", err)
	}
	if err := repo.SetDelay(ctx, 15); err != nil {
		t.Fatalf("set delay: %v", err)
	}
	vol, err := repo.GetVolume(ctx)
	if err != nil || vol != 0.4 {
		t.Fatalf("expected volume 0.4, got %v (%v)", vol, err)
	}
	delay, err := repo.GetDelay(ctx)
	if err != nil || delay != 15 {
		t.Fatalf("expected delay 15, got %v (%v)", delay, err)
	}
}

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	if err := repo.Save(t.Context(), testSkill("rt-1", "Roundtrip")); err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}
	got, err := repo.GetAll(t.Context())
	if err != nil || len(got) != 1 {
		t.Fatalf("get after roundtrip failed: %v (%v)", got, err)
	}
}

func TestMigrateUpStampsSchemaVersion(t *testing.T) {
	repo := newTestRepo(t)

	var version int
	if err := repo.db.QueryRow(`SELECT version FROM schema_info`).Scan(&version); err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if version != SchemaVersion {
		t.Fatalf("expected schema version %d, got %d", SchemaVersion, version)
	}

	if err := MigrateUp(repo.db); err != nil {
		t.Fatalf("repeat migrate up failed: %v", err)
	}
	var count int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM schema_info`).Scan(&count); err != nil {
		t.Fatalf("count schema rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single version row, got %d", count)
	}
}
