package kvrepo

import (
	"context"
	"time"

	"petpal-lite/internal/domain/health"
	"petpal-lite/internal/ports/kv"
)

type HealthRepo struct {
	store kv.Store
}

func NewHealthRepo(store kv.Store) *HealthRepo {
	return &HealthRepo{store: store}
}

type scanRecord struct {
	Score           int       `json:"score"`
	Status          string    `json:"status"`
	Analysis        string    `json:"analysis"`
	Recommendations []string  `json:"recommendations"`
	ScannedAt       time.Time `json:"scannedAt"`
}

type healthRecord struct {
	Result         *scanRecord `json:"result"`
	PreviousResult *scanRecord `json:"previousResult"`
}

func (r *HealthRepo) load(ctx context.Context) (map[string]healthRecord, error) {
	all := make(map[string]healthRecord)
	if err := kv.ReadJSON(ctx, r.store, kv.KeyHealthData, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *HealthRepo) Get(ctx context.Context, petID string) (health.Record, error) {
	all, err := r.load(ctx)
	if err != nil {
		return health.Record{}, err
	}

	rec, ok := all[petID]
	if !ok {
		return health.Record{}, nil
	}
	return health.Record{
		Result:         toScanResult(rec.Result),
		PreviousResult: toScanResult(rec.PreviousResult),
	}, nil
}

func (r *HealthRepo) Save(ctx context.Context, petID string, rec health.Record) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	all[petID] = healthRecord{
		Result:         toScanRecord(rec.Result),
		PreviousResult: toScanRecord(rec.PreviousResult),
	}
	return kv.WriteJSON(ctx, r.store, kv.KeyHealthData, all)
}

func (r *HealthRepo) PurgeFor(ctx context.Context, petID string) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[petID]; !ok {
		return nil
	}
	delete(all, petID)
	return kv.WriteJSON(ctx, r.store, kv.KeyHealthData, all)
}

func toScanResult(rec *scanRecord) *health.ScanResult {
	if rec == nil {
		return nil
	}
	return &health.ScanResult{
		Score:           rec.Score,
		Status:          health.Status(rec.Status),
		Analysis:        rec.Analysis,
		Recommendations: rec.Recommendations,
		ScannedAt:       rec.ScannedAt,
	}
}

func toScanRecord(res *health.ScanResult) *scanRecord {
	if res == nil {
		return nil
	}
	return &scanRecord{
		Score:           res.Score,
		Status:          string(res.Status),
		Analysis:        res.Analysis,
		Recommendations: res.Recommendations,
		ScannedAt:       res.ScannedAt,
	}
}
