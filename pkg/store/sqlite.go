package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// sqliteStore keeps documents as JSON rows in a single table so the service
// can run without a Mongo deployment. Filters and sorting are evaluated in
// memory after loading the collection; collections here stay small.
type sqliteStore struct {
	db *gorm.DB
}

type document struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"index"`
	Body       string
}

func NewSQLite(path string) (Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Insert(ctx context.Context, collection string, doc map[string]any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&document{Collection: collection, Body: string(body)}).Error
}

func (s *sqliteStore) Find(ctx context.Context, collection string, filter map[string]any, srt *Sort, limit int64) ([]map[string]any, error) {
	rows, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	for _, r := range rows {
		if matches(r.doc, filter) {
			out = append(out, r.doc)
		}
	}
	if srt != nil {
		sort.SliceStable(out, func(i, j int) bool {
			less := lessValue(out[i][srt.Field], out[j][srt.Field])
			if srt.Desc {
				return !less && !equalValue(out[i][srt.Field], out[j][srt.Field])
			}
			return less
		})
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *sqliteStore) Upsert(ctx context.Context, collection string, key map[string]any, doc map[string]any) error {
	rows, err := s.load(ctx, collection)
	if err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if matches(r.doc, key) {
			return s.db.WithContext(ctx).
				Model(&document{}).
				Where("id = ?", r.id).
				Update("body", string(body)).Error
		}
	}
	return s.db.WithContext(ctx).Create(&document{Collection: collection, Body: string(body)}).Error
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *sqliteStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type loadedRow struct {
	id  uint
	doc map[string]any
}

func (s *sqliteStore) load(ctx context.Context, collection string) ([]loadedRow, error) {
	var rows []document
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]loadedRow, 0, len(rows))
	for _, r := range rows {
		var doc map[string]any
		if err := json.Unmarshal([]byte(r.Body), &doc); err != nil {
			return nil, err
		}
		out = append(out, loadedRow{id: r.ID, doc: doc})
	}
	return out, nil
}

func matches(doc, filter map[string]any) bool {
	for k, v := range filter {
		if !equalValue(doc[k], v) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if as, ok := a.(string); ok {
		bs, ok2 := b.(string)
		return ok2 && as == bs
	}
	return AsFloat(a) == AsFloat(b)
}

// lessValue orders strings lexically, which keeps ISO-8601 timestamps in
// chronological order, and anything numeric numerically.
func lessValue(a, b any) bool {
	if as, ok := a.(string); ok {
		bs, _ := b.(string)
		return as < bs
	}
	return AsFloat(a) < AsFloat(b)
}
