package kvrepo

import (
	"context"

	"petpal-lite/internal/domain/reminders"
	"petpal-lite/internal/ports/kv"
)

type RemindersRepo struct {
	store kv.Store
}

func NewRemindersRepo(store kv.Store) *RemindersRepo {
	return &RemindersRepo{store: store}
}

type reminderRecord struct {
	ID        string `json:"id"`
	PetID     string `json:"petId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Frequency string `json:"frequency"`
}

func (r *RemindersRepo) List(ctx context.Context) ([]reminders.Reminder, error) {
	var records []reminderRecord
	if err := kv.ReadJSON(ctx, r.store, kv.KeyReminders, &records); err != nil {
		return nil, err
	}

	out := make([]reminders.Reminder, 0, len(records))
	for _, rec := range records {
		out = append(out, reminders.Reminder{
			ID:        rec.ID,
			PetID:     rec.PetID,
			Title:     rec.Title,
			Date:      rec.Date,
			Time:      rec.Time,
			Frequency: reminders.Frequency(rec.Frequency),
		})
	}
	return out, nil
}

func (r *RemindersRepo) SaveAll(ctx context.Context, list []reminders.Reminder) error {
	records := make([]reminderRecord, 0, len(list))
	for _, rem := range list {
		records = append(records, reminderRecord{
			ID:        rem.ID,
			PetID:     rem.PetID,
			Title:     rem.Title,
			Date:      rem.Date,
			Time:      rem.Time,
			Frequency: string(rem.Frequency),
		})
	}
	return kv.WriteJSON(ctx, r.store, kv.KeyReminders, records)
}
