package repositoryImp

import (
	"context"

	"cropadvisor/entities"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/store"
)

const (
	adviceCollection = "crop_advice"
	pestCollection   = "pest_detection"
)

type AdviceRepo struct {
	store store.Store
}

func New(s store.Store) *AdviceRepo { return &AdviceRepo{store: s} }

func (r *AdviceRepo) SaveAdvice(ctx context.Context, rec *entities.CropAdviceRecord) error {
	doc := map[string]any{
		"id":        rec.ID,
		"query":     rec.Query,
		"advice":    rec.Advice,
		"timestamp": store.EncodeTime(rec.Timestamp),
	}
	if err := r.store.Insert(ctx, adviceCollection, doc); err != nil {
		return apperr.Storage("save advice", err)
	}
	return nil
}

func (r *AdviceRepo) SavePestDetection(ctx context.Context, rec *entities.PestDetectionRecord) error {
	doc := map[string]any{
		"id":               rec.ID,
		"detection_result": rec.DetectionResult,
		"recommendations":  rec.Recommendations,
		"timestamp":        store.EncodeTime(rec.Timestamp),
	}
	if err := r.store.Insert(ctx, pestCollection, doc); err != nil {
		return apperr.Storage("save pest detection", err)
	}
	return nil
}

func (r *AdviceRepo) RecentAdvice(ctx context.Context, limit int64) ([]entities.CropAdviceRecord, error) {
	docs, err := r.store.Find(ctx, adviceCollection, nil, &store.Sort{Field: "timestamp", Desc: true}, limit)
	if err != nil {
		return nil, apperr.Storage("load advice history", err)
	}
	out := make([]entities.CropAdviceRecord, 0, len(docs))
	for _, d := range docs {
		ts, err := store.DecodeTime(d["timestamp"])
		if err != nil {
			return nil, apperr.Storage("decode advice record", err)
		}
		out = append(out, entities.CropAdviceRecord{
			ID:        store.AsString(d["id"]),
			Query:     store.AsString(d["query"]),
			Advice:    store.AsString(d["advice"]),
			Timestamp: ts,
		})
	}
	return out, nil
}
