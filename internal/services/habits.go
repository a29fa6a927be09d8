package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/primezone/internal/common"
	"github.com/dmitrijs2005/primezone/internal/logging"
	"github.com/dmitrijs2005/primezone/internal/models"
	"github.com/dmitrijs2005/primezone/internal/repositories/metadata"
	"github.com/dmitrijs2005/primezone/internal/roster"
)

// HabitService loads and saves the whole habit store as one JSON blob.
type HabitService interface {
	Load(ctx context.Context) models.HabitStore
	Save(ctx context.Context, store models.HabitStore) error
}

type habitService struct {
	repo metadata.Repository
	log  logging.Logger
}

// NewHabitService constructs a HabitService over repo.
func NewHabitService(repo metadata.Repository, log logging.Logger) HabitService {
	if log == nil {
		log = logging.Nop{}
	}
	return &habitService{repo: repo, log: log}
}

// Load returns the stored habit store, repaired. It never fails: a missing,
// unreadable or malformed blob yields an empty store.
//
// Repair rules: entries under ids outside the roster are dropped, habits with
// an empty id or blank name are dropped, and duplicate completion dates are
// collapsed keeping first occurrence.
func (s *habitService) Load(ctx context.Context) models.HabitStore {
	raw, err := s.repo.Get(ctx, common.KeyHabitsStore)
	if err != nil {
		s.log.Warn(ctx, "habit store unreadable", "error", err)
		return models.HabitStore{}
	}
	if len(raw) == 0 {
		return models.HabitStore{}
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn(ctx, "habit store malformed, starting empty", "error", err)
		return models.HabitStore{}
	}

	store := make(models.HabitStore, len(entries))
	for owner, body := range entries {
		if !roster.Valid(owner) {
			s.log.Warn(ctx, "dropping habits of unknown member", "member", owner)
			continue
		}
		var list []models.Habit
		if err := json.Unmarshal(body, &list); err != nil {
			s.log.Warn(ctx, "dropping malformed habit list", "member", owner, "error", err)
			continue
		}
		store[owner] = s.repairList(ctx, owner, list)
	}
	return store
}

func (s *habitService) repairList(ctx context.Context, owner string, list []models.Habit) []models.Habit {
	out := make([]models.Habit, 0, len(list))
	for _, h := range list {
		if h.ID == "" || strings.TrimSpace(h.Name) == "" {
			s.log.Warn(ctx, "dropping invalid habit", "member", owner, "habit", h.ID)
			continue
		}
		h.CompletedDays = uniqueDates(h.CompletedDays)
		out = append(out, h)
	}
	return out
}

func uniqueDates(days []string) []string {
	seen := make(map[string]struct{}, len(days))
	out := make([]string, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Save overwrites the stored blob with store.
func (s *habitService) Save(ctx context.Context, store models.HabitStore) error {
	if store == nil {
		store = models.HabitStore{}
	}
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("encode habit store: %w", err)
	}
	if err := s.repo.Set(ctx, common.KeyHabitsStore, data); err != nil {
		return fmt.Errorf("save habit store: %w", err)
	}
	return nil
}
