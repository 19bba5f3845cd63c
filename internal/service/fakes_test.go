package service

import (
	"InterVue/internal/model"
	"InterVue/internal/pkg/kafka"
	"InterVue/internal/repository"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type fakeTokenRepo struct {
	mu      sync.Mutex
	amounts map[string]int64
	updated map[string]time.Time
	names   map[string]string
	getErr  error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		amounts: map[string]int64{},
		updated: map[string]time.Time{},
		names:   map[string]string{},
	}
}

func (f *fakeTokenRepo) AddTokens(_ context.Context, userID string, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.amounts[userID] += amount
	f.updated[userID] = time.Now()
	return f.amounts[userID], nil
}

func (f *fakeTokenRepo) GetToken(_ context.Context, userID string) (*model.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	amount, ok := f.amounts[userID]
	if !ok {
		return nil, nil
	}
	return &model.Token{UserID: userID, Amount: amount, UpdatedAt: f.updated[userID]}, nil
}

func (f *fakeTokenRepo) GetTopTokens(_ context.Context, since time.Time, limit int) ([]*repository.LeaderboardRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([]*repository.LeaderboardRow, 0)
	for id, amount := range f.amounts {
		if f.updated[id].Before(since) {
			continue
		}
		rows = append(rows, &repository.LeaderboardRow{UserID: id, Name: f.names[id], Amount: amount, UpdatedAt: f.updated[id]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].UserID < rows[j].UserID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeTokenRepo) GetUserIDsAfter(_ context.Context, afterID string, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0)
	for id := range f.amounts {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

type fakeStreakRepo struct {
	mu      sync.Mutex
	streaks map[string]*model.Streak
}

func newFakeStreakRepo() *fakeStreakRepo {
	return &fakeStreakRepo{streaks: map[string]*model.Streak{}}
}

func (f *fakeStreakRepo) RecordActivity(_ context.Context, userID string, date time.Time, increment bool) (*model.Streak, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record(userID, date, increment), nil
}

func (f *fakeStreakRepo) record(userID string, date time.Time, increment bool) *model.Streak {
	s, ok := f.streaks[userID]
	switch {
	case !ok:
		s = &model.Streak{UserID: userID, Count: 1}
		f.streaks[userID] = s
	case increment:
		s.Count++
	default:
		s.Count = 0
	}
	d := date
	s.LastDate = &d
	cp := *s
	return &cp
}

func (f *fakeStreakRepo) GetStreak(_ context.Context, userID string) (*model.Streak, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.streaks[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

type fakeBadgeRepo struct {
	mu         sync.Mutex
	catalog    map[string]model.Badge
	owned      map[string]map[string]*model.UserBadge
	grantErr   map[string]error
	ownedErr   error
	grantCalls int
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	f := &fakeBadgeRepo{
		catalog:  map[string]model.Badge{},
		owned:    map[string]map[string]*model.UserBadge{},
		grantErr: map[string]error{},
	}
	for _, b := range model.DefaultBadges() {
		f.catalog[b.ID] = b
	}
	return f
}

func (f *fakeBadgeRepo) GetBadge(_ context.Context, id string) (*model.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.catalog[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBadgeRepo) ListBadges(context.Context) ([]*model.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]*model.Badge, 0, len(f.catalog))
	for _, b := range f.catalog {
		list = append(list, &b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeBadgeRepo) ListUserBadges(_ context.Context, userID string) ([]*model.UserBadge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]*model.UserBadge, 0)
	for _, ub := range f.owned[userID] {
		list = append(list, ub)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].BadgeID < list[j].BadgeID })
	return list, nil
}

func (f *fakeBadgeRepo) GetUserBadgeIDs(_ context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ownedErr != nil {
		return nil, f.ownedErr
	}
	ids := make([]string, 0)
	for id := range f.owned[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeBadgeRepo) GrantBadge(_ context.Context, userID string, badgeID string) (*model.UserBadge, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.grantCalls++
	if err := f.grantErr[badgeID]; err != nil {
		return nil, false, err
	}
	if f.owned[userID] == nil {
		f.owned[userID] = map[string]*model.UserBadge{}
	}
	if ub, ok := f.owned[userID][badgeID]; ok {
		return ub, false, nil
	}
	ub := &model.UserBadge{UserID: userID, BadgeID: badgeID, AwardedAt: time.Now(), Badge: f.catalog[badgeID]}
	f.owned[userID][badgeID] = ub
	return ub, true, nil
}

func (f *fakeBadgeRepo) count(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.owned[userID])
}

func (f *fakeBadgeRepo) has(userID, badgeID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.owned[userID][badgeID]
	return ok
}

type fakeInterviewRepo struct {
	interviews map[string]*model.Interview
	counts     map[string]int64
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: map[string]*model.Interview{}, counts: map[string]int64{}}
}

func (f *fakeInterviewRepo) CreateInterview(_ context.Context, interview *model.Interview) error {
	if interview.ID == "" {
		interview.ID = fmt.Sprintf("iv-%d", len(f.interviews)+1)
	}
	interview.CreatedAt = time.Now()
	f.interviews[interview.ID] = interview
	f.counts[interview.UserID]++
	return nil
}

func (f *fakeInterviewRepo) GetInterviewByID(_ context.Context, id string) (*model.Interview, error) {
	return f.interviews[id], nil
}

func (f *fakeInterviewRepo) GetInterviewsByUserID(_ context.Context, userID string) ([]*model.Interview, error) {
	list := make([]*model.Interview, 0)
	for _, iv := range f.interviews {
		if iv.UserID == userID {
			list = append(list, iv)
		}
	}
	return list, nil
}

func (f *fakeInterviewRepo) GetLatestInterviews(_ context.Context, excludeUserID string, limit int) ([]*model.Interview, error) {
	list := make([]*model.Interview, 0)
	for _, iv := range f.interviews {
		if iv.Finalized && iv.UserID != excludeUserID {
			list = append(list, iv)
		}
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeInterviewRepo) CountInterviewsByUserID(_ context.Context, userID string) (int64, error) {
	return f.counts[userID], nil
}

type rewardKey struct {
	userID, sourceID, rewardType string
}

// fakeRewardRepo 与真实实现一致：标记与写入同时生效
type fakeRewardRepo struct {
	mu        sync.Mutex
	tokens    *fakeTokenRepo
	streaks   *fakeStreakRepo
	events    map[rewardKey]*model.RewardEvent
	byID      map[uint64]*model.RewardEvent
	tokensErr error
}

func newFakeRewardRepo(tokens *fakeTokenRepo, streaks *fakeStreakRepo) *fakeRewardRepo {
	return &fakeRewardRepo{
		tokens:  tokens,
		streaks: streaks,
		events:  map[rewardKey]*model.RewardEvent{},
		byID:    map[uint64]*model.RewardEvent{},
	}
}

func (f *fakeRewardRepo) ClaimEvent(_ context.Context, event *model.RewardEvent) (*model.RewardEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := rewardKey{event.UserID, event.SourceID, event.RewardType}
	stored, ok := f.events[key]
	if !ok {
		stored = &model.RewardEvent{}
		*stored = *event
		stored.ID = uint64(len(f.events) + 1)
		f.events[key] = stored
		f.byID[stored.ID] = stored
	}
	cp := *stored
	return &cp, nil
}

func (f *fakeRewardRepo) ApplyTokens(ctx context.Context, eventID uint64, userID string, amount int64) (int64, bool, error) {
	f.mu.Lock()
	event := f.byID[eventID]
	if f.tokensErr != nil {
		f.mu.Unlock()
		return 0, false, f.tokensErr
	}
	if event.TokensApplied {
		f.mu.Unlock()
		total, _ := f.tokens.GetToken(ctx, userID)
		if total == nil {
			return 0, false, nil
		}
		return total.Amount, false, nil
	}
	event.TokensApplied = true
	f.mu.Unlock()
	total, err := f.tokens.AddTokens(ctx, userID, amount)
	return total, true, err
}

func (f *fakeRewardRepo) ApplyStreak(ctx context.Context, eventID uint64, userID string, date time.Time, increment bool) (*model.Streak, bool, error) {
	f.mu.Lock()
	event := f.byID[eventID]
	if event.StreakApplied {
		f.mu.Unlock()
		s, _ := f.streaks.GetStreak(ctx, userID)
		return s, false, nil
	}
	event.StreakApplied = true
	f.mu.Unlock()
	s, err := f.streaks.RecordActivity(ctx, userID, date, increment)
	return s, true, err
}

func (f *fakeRewardRepo) MarkStep(_ context.Context, eventID uint64, step string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event := f.byID[eventID]
	switch step {
	case repository.RewardStepStreak:
		event.StreakApplied = true
	case repository.RewardStepBadges:
		event.BadgesEvaluated = true
	}
	return nil
}

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.data[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.data[key] = value
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []*kafka.RewardMessage
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, messages ...*kafka.RewardMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, messages...)
	return nil
}

func (f *fakePublisher) countType(typ string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.messages {
		if m.Type == typ {
			n++
		}
	}
	return n
}

type fakeOracle struct {
	reply string
	err   error
	calls int
}

func (f *fakeOracle) Complete(context.Context, string, string, float64) (string, error) {
	f.calls++
	return f.reply, f.err
}
