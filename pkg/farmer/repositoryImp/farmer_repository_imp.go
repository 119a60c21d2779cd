package repositoryImp

import (
	"context"

	"cropadvisor/entities"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/store"
)

const collection = "farmer_profiles"

type FarmerRepo struct {
	store store.Store
}

func New(s store.Store) *FarmerRepo { return &FarmerRepo{store: s} }

func (r *FarmerRepo) Create(ctx context.Context, p *entities.FarmerProfile) error {
	doc := map[string]any{
		"id":            p.ID,
		"name":          p.Name,
		"location":      p.Location,
		"farm_size":     p.FarmSize,
		"primary_crops": p.PrimaryCrops,
		"phone":         p.Phone,
		"created_at":    store.EncodeTime(p.CreatedAt),
	}
	if err := r.store.Insert(ctx, collection, doc); err != nil {
		return apperr.Storage("save farmer profile", err)
	}
	return nil
}

func (r *FarmerRepo) List(ctx context.Context, limit int64) ([]entities.FarmerProfile, error) {
	docs, err := r.store.Find(ctx, collection, nil, nil, limit)
	if err != nil {
		return nil, apperr.Storage("load farmer profiles", err)
	}
	out := make([]entities.FarmerProfile, 0, len(docs))
	for _, d := range docs {
		p, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *FarmerRepo) FindByID(ctx context.Context, id string) (*entities.FarmerProfile, error) {
	docs, err := r.store.Find(ctx, collection, map[string]any{"id": id}, nil, 1)
	if err != nil {
		return nil, apperr.Storage("look up farmer", err)
	}
	if len(docs) == 0 {
		return nil, apperr.NotFound("Farmer not found")
	}
	return fromDoc(docs[0])
}

func fromDoc(d map[string]any) (*entities.FarmerProfile, error) {
	created, err := store.DecodeTime(d["created_at"])
	if err != nil {
		return nil, apperr.Storage("decode farmer profile", err)
	}
	return &entities.FarmerProfile{
		ID:           store.AsString(d["id"]),
		Name:         store.AsString(d["name"]),
		Location:     store.AsString(d["location"]),
		FarmSize:     store.AsString(d["farm_size"]),
		PrimaryCrops: store.AsStrings(d["primary_crops"]),
		Phone:        store.AsString(d["phone"]),
		CreatedAt:    created,
	}, nil
}
