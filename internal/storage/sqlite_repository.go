package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/drilld/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

const (
	settingsKeyVolume = "volume"
	settingsKeyDelay  = "delay"
)

var ErrSchemaMismatch = errors.New("storage: schema version ahead of binary")

// SQLiteRepository implements both SkillStore and SettingsStore on a
// single sqlite database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]model.Skill, error) {
	if err := r.checkSchemaVersion(ctx); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_id, name, description, tts, interval_sec, hero_ids, role_ids, tags, is_preset, is_archived, created_at, updated_at
		FROM skills ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Skill, 0)
	for rows.Next() {
		skill, scanErr := scanSkill(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, skill)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Save(ctx context.Context, in model.Skill) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO skills (id, game_id, name, description, tts, interval_sec, hero_ids, role_ids, tags, is_preset, is_archived, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MIN(position), 1) - 1 FROM skills), ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			game_id = excluded.game_id,
			name = excluded.name,
			description = excluded.description,
			tts = excluded.tts,
			interval_sec = excluded.interval_sec,
			hero_ids = excluded.hero_ids,
			role_ids = excluded.role_ids,
			tags = excluded.tags,
			is_preset = excluded.is_preset,
			is_archived = excluded.is_archived,
			updated_at = excluded.updated_at`,
		in.ID, in.GameID, in.Name, in.Description, in.TTS, in.Interval,
		encodeStringList(in.HeroIDs), encodeStringList(in.RoleIDs), encodeStringList(in.Tags),
		boolInt(in.IsPreset), boolInt(in.IsArchived),
		mustTime(in.CreatedAt), mustTime(in.UpdatedAt),
	)
	return err
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, skills []model.Skill) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM skills`); err != nil {
		return err
	}
	for i, in := range skills {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO skills (id, game_id, name, description, tts, interval_sec, hero_ids, role_ids, tags, is_preset, is_archived, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			in.ID, in.GameID, in.Name, in.Description, in.TTS, in.Interval,
			encodeStringList(in.HeroIDs), encodeStringList(in.RoleIDs), encodeStringList(in.Tags),
			boolInt(in.IsPreset), boolInt(in.IsArchived), i,
			mustTime(in.CreatedAt), mustTime(in.UpdatedAt),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE skills SET is_archived = 1, updated_at = ? WHERE id = ?`,
		mustTime(time.Now().UTC()), id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) GetVolume(ctx context.Context) (float64, error) {
	raw, err := r.getSetting(ctx, settingsKeyVolume)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}

func (r *SQLiteRepository) SetVolume(ctx context.Context, volume float64) error {
	return r.setSetting(ctx, settingsKeyVolume, strconv.FormatFloat(volume, 'f', -1, 64))
}

func (r *SQLiteRepository) GetDelay(ctx context.Context) (int, error) {
	raw, err := r.getSetting(ctx, settingsKeyDelay)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}

func (r *SQLiteRepository) SetDelay(ctx context.Context, delay int) error {
	return r.setSetting(ctx, settingsKeyDelay, strconv.Itoa(delay))
}

func (r *SQLiteRepository) getSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return value, err
}

func (r *SQLiteRepository) setSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (r *SQLiteRepository) checkSchemaVersion(ctx context.Context) error {
	var version int
	err := r.db.QueryRowContext(ctx, `SELECT version FROM schema_info LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if version > SchemaVersion {
		return fmt.Errorf("%w: stored=%d supported=%d", ErrSchemaMismatch, version, SchemaVersion)
	}
	return nil
}

func encodeStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// decodeStringList reads a JSON array column. A legacy bare value
// (single id stored before lists existed) is promoted to a
// one-element list.
func decodeStringList(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
		return list, nil
	}
	var single string
	if err := json.Unmarshal([]byte(trimmed), &single); err == nil {
		if single == "" {
			return []string{}, nil
		}
		return []string{single}, nil
	}
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return nil, fmt.Errorf("storage: corrupt id list %q", raw)
	}
	return []string{trimmed}, nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSkill(s scanner) (model.Skill, error) {
	var out model.Skill
	var heroIDs, roleIDs, tags string
	var preset, archived int
	var created, updated string
	if err := s.Scan(&out.ID, &out.GameID, &out.Name, &out.Description, &out.TTS, &out.Interval,
		&heroIDs, &roleIDs, &tags, &preset, &archived, &created, &updated); err != nil {
		return model.Skill{}, err
	}
	var err error
	if out.HeroIDs, err = decodeStringList(heroIDs); err != nil {
		return model.Skill{}, err
	}
	if out.RoleIDs, err = decodeStringList(roleIDs); err != nil {
		return model.Skill{}, err
	}
	if out.Tags, err = decodeStringList(tags); err != nil {
		return model.Skill{}, err
	}
	if out.CreatedAt, err = parseRequiredTime(created); err != nil {
		return model.Skill{}, err
	}
	if out.UpdatedAt, err = parseRequiredTime(updated); err != nil {
		return model.Skill{}, err
	}
	out.IsPreset = preset == 1
	out.IsArchived = archived == 1
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
