package kvrepo

import (
	"context"

	"petpal-lite/internal/domain/routines"
	"petpal-lite/internal/ports/kv"
)

type RoutinesRepo struct {
	store kv.Store
}

func NewRoutinesRepo(store kv.Store) *RoutinesRepo {
	return &RoutinesRepo{store: store}
}

type routineRecord struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Details  string `json:"details"`
	Icon     string `json:"icon"`
}

func (r *RoutinesRepo) load(ctx context.Context) (map[string][]routineRecord, error) {
	all := make(map[string][]routineRecord)
	if err := kv.ReadJSON(ctx, r.store, kv.KeyRoutines, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *RoutinesRepo) ListFor(ctx context.Context, petID string) ([]routines.Item, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	records := all[petID]
	out := make([]routines.Item, 0, len(records))
	for _, rec := range records {
		out = append(out, routines.Item{
			ID:       rec.ID,
			Time:     rec.Time,
			Activity: rec.Activity,
			Details:  rec.Details,
			Icon:     routines.Icon(rec.Icon),
		})
	}
	return out, nil
}

func (r *RoutinesRepo) SaveFor(ctx context.Context, petID string, items []routines.Item) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	records := make([]routineRecord, 0, len(items))
	for _, it := range items {
		records = append(records, routineRecord{
			ID:       it.ID,
			Time:     it.Time,
			Activity: it.Activity,
			Details:  it.Details,
			Icon:     string(it.Icon),
		})
	}
	all[petID] = records
	return kv.WriteJSON(ctx, r.store, kv.KeyRoutines, all)
}

func (r *RoutinesRepo) PurgeFor(ctx context.Context, petID string) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[petID]; !ok {
		return nil
	}
	delete(all, petID)
	return kv.WriteJSON(ctx, r.store, kv.KeyRoutines, all)
}
