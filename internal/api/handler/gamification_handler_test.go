package handler

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type stubTokenSvc struct {
	balance map[string]int64
}

func (s *stubTokenSvc) AwardTokens(_ context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, service.ErrMissingUserID
	}
	if amount <= 0 {
		return 0, service.ErrInvalidAmount
	}
	s.balance[userID] += amount
	return s.balance[userID], nil
}

func (s *stubTokenSvc) GetBalance(_ context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, service.ErrMissingUserID
	}
	return s.balance[userID], nil
}

type stubStreakSvc struct {
	lastDate time.Time
}

func (s *stubStreakSvc) RecordActivity(_ context.Context, userID string, date time.Time, increment bool) (*dto.StreakDTO, error) {
	if userID == "" {
		return nil, service.ErrMissingUserID
	}
	s.lastDate = date
	count := 0
	if increment {
		count = 3
	}
	return &dto.StreakDTO{Count: count, LastDate: &date}, nil
}

func (s *stubStreakSvc) GetStreak(_ context.Context, userID string) (*dto.StreakDTO, error) {
	if userID == "" {
		return nil, service.ErrMissingUserID
	}
	return &dto.StreakDTO{}, nil
}

type stubBadgeSvc struct {
	evaluated []string
}

func (s *stubBadgeSvc) EvaluateAndAward(context.Context, string, service.BadgeContext) ([]*dto.UserBadgeDTO, error) {
	return nil, nil
}

func (s *stubBadgeSvc) EvaluateUser(_ context.Context, userID string) ([]*dto.UserBadgeDTO, error) {
	s.evaluated = append(s.evaluated, userID)
	return nil, nil
}

func (s *stubBadgeSvc) Grant(_ context.Context, userID string, badgeID string) (*dto.BadgeGrantResultDTO, error) {
	if badgeID != "badge_10_tokens" {
		return nil, service.ErrBadgeNotFound
	}
	return &dto.BadgeGrantResultDTO{BadgeID: badgeID, AwardedAt: time.Now()}, nil
}

func (s *stubBadgeSvc) ListUserBadges(context.Context, string) ([]*dto.UserBadgeDTO, error) {
	return []*dto.UserBadgeDTO{}, nil
}

func (s *stubBadgeSvc) ListCatalog(context.Context) ([]*dto.BadgeDTO, error) {
	return []*dto.BadgeDTO{{ID: "badge_10_tokens"}}, nil
}

type stubLeaderboardSvc struct {
	gotN int
}

func (s *stubLeaderboardSvc) TopN(_ context.Context, period string, n int) ([]*dto.LeaderboardEntryDTO, error) {
	if period != "" && period != "week" && period != "month" {
		return nil, service.ErrInvalidPeriod
	}
	s.gotN = n
	return []*dto.LeaderboardEntryDTO{}, nil
}

func (s *stubLeaderboardSvc) Refresh(context.Context, string) error {
	return nil
}

type stubRewardSvc struct{}

func (stubRewardSvc) Trigger(_ context.Context, userID string, sourceID string, rewardType string) (*dto.RewardResultDTO, error) {
	if rewardType != "quiz_completion" {
		return nil, service.ErrInvalidRewardType
	}
	return &dto.RewardResultDTO{Complete: true, Amount: 10, Streak: 1, Badges: []*dto.UserBadgeDTO{}}, nil
}

type gamificationFixture struct {
	tokens      *stubTokenSvc
	streaks     *stubStreakSvc
	badges      *stubBadgeSvc
	leaderboard *stubLeaderboardSvc
	router      *gin.Engine
}

func newGamificationFixture() *gamificationFixture {
	gin.SetMode(gin.TestMode)
	f := &gamificationFixture{
		tokens:      &stubTokenSvc{balance: map[string]int64{}},
		streaks:     &stubStreakSvc{},
		badges:      &stubBadgeSvc{},
		leaderboard: &stubLeaderboardSvc{},
	}
	h := NewGamificationHandler(f.tokens, f.streaks, f.badges, f.leaderboard, stubRewardSvc{})
	r := gin.New()
	g := r.Group("/api/gamification")
	g.GET("/tokens", h.GetTokens)
	g.POST("/tokens", h.AwardTokens)
	g.GET("/streaks", h.GetStreak)
	g.POST("/streaks", h.UpdateStreak)
	g.GET("/badges", h.GetBadges)
	g.POST("/badges", h.GrantBadge)
	g.GET("/badges/catalog", h.GetCatalog)
	g.GET("/leaderboard", h.GetLeaderboard)
	g.POST("/rewards", h.TriggerReward)
	f.router = r
	return f
}

func (f *gamificationFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body
}

func TestTokensEndpoints(t *testing.T) {
	f := newGamificationFixture()

	w := f.do(http.MethodGet, "/api/gamification/tokens", "")
	if w.Code != http.StatusBadRequest || decodeBody(t, w)["error"] != service.ErrMissingUserID.Error() {
		t.Fatalf("missing userId: %d %s", w.Code, w.Body.String())
	}

	w = f.do(http.MethodPost, "/api/gamification/tokens", `{"userId":"u1","amount":15}`)
	if w.Code != http.StatusOK || decodeBody(t, w)["amount"] != float64(15) {
		t.Fatalf("award: %d %s", w.Code, w.Body.String())
	}
	if len(f.badges.evaluated) != 1 || f.badges.evaluated[0] != "u1" {
		t.Fatalf("badges not evaluated: %v", f.badges.evaluated)
	}

	w = f.do(http.MethodGet, "/api/gamification/tokens?userId=u1", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["amount"] != float64(15) {
		t.Fatalf("balance: %d %s", w.Code, w.Body.String())
	}

	for _, body := range []string{`{"userId":"u1","amount":0}`, `{"userId":"u1"`, `{"amount":5}`} {
		w = f.do(http.MethodPost, "/api/gamification/tokens", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d", body, w.Code)
		}
	}
}

func TestStreakEndpoints(t *testing.T) {
	f := newGamificationFixture()

	w := f.do(http.MethodPost, "/api/gamification/streaks", `{"userId":"u1","increment":true,"lastDate":"2026-04-02T08:00:00Z"}`)
	if w.Code != http.StatusOK || decodeBody(t, w)["count"] != float64(3) {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	if !f.streaks.lastDate.Equal(time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("lastDate = %v", f.streaks.lastDate)
	}

	w = f.do(http.MethodGet, "/api/gamification/streaks?userId=nobody", "")
	body := decodeBody(t, w)
	if w.Code != http.StatusOK || body["count"] != float64(0) || body["lastDate"] != nil {
		t.Fatalf("empty streak: %d %s", w.Code, w.Body.String())
	}
}

func TestBadgeEndpoints(t *testing.T) {
	f := newGamificationFixture()

	w := f.do(http.MethodPost, "/api/gamification/badges", `{"userId":"u1","badgeId":"badge_10_tokens"}`)
	if w.Code != http.StatusOK || decodeBody(t, w)["badgeId"] != "badge_10_tokens" {
		t.Fatalf("grant: %d %s", w.Code, w.Body.String())
	}
	w = f.do(http.MethodPost, "/api/gamification/badges", `{"userId":"u1","badgeId":"nope"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown badge: %d", w.Code)
	}
	w = f.do(http.MethodGet, "/api/gamification/badges?userId=u1", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}
	w = f.do(http.MethodGet, "/api/gamification/badges/catalog", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "badge_10_tokens") {
		t.Fatalf("catalog: %d %s", w.Code, w.Body.String())
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	f := newGamificationFixture()

	w := f.do(http.MethodGet, "/api/gamification/leaderboard?period=week", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("empty week: %d %s", w.Code, w.Body.String())
	}
	if f.leaderboard.gotN != 10 {
		t.Fatalf("default n = %d", f.leaderboard.gotN)
	}
	w = f.do(http.MethodGet, "/api/gamification/leaderboard?period=decade", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad period: %d", w.Code)
	}
}

func TestRewardEndpoint(t *testing.T) {
	f := newGamificationFixture()

	w := f.do(http.MethodPost, "/api/gamification/rewards", `{"userId":"u1","sourceId":"q1","rewardType":"quiz_completion"}`)
	body := decodeBody(t, w)
	if w.Code != http.StatusOK || body["amount"] != float64(10) || body["replayed"] != false {
		t.Fatalf("trigger: %d %s", w.Code, w.Body.String())
	}
	w = f.do(http.MethodPost, "/api/gamification/rewards", `{"userId":"u1","sourceId":"q1","rewardType":"login"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad type: %d", w.Code)
	}
}

type stubPeerSvc struct{}

func (stubPeerSvc) CreateSession(context.Context) *dto.PeerSessionDTO {
	return &dto.PeerSessionDTO{ID: "demo-session-123", ParticipantA: "demo-user-a", Status: "pending"}
}

func (stubPeerSvc) ListSessions(context.Context, string) ([]*dto.PeerSessionDTO, error) {
	return []*dto.PeerSessionDTO{}, nil
}

func (stubPeerSvc) AddQuestion(context.Context, *dto.PeerQuestionCreateDTO) (*dto.PeerQuestionDTO, error) {
	return nil, service.ErrMissingSessionID
}

func (stubPeerSvc) ListQuestions(_ context.Context, sessionID string) ([]*dto.PeerQuestionDTO, error) {
	if sessionID == "" {
		return nil, service.ErrMissingSessionID
	}
	return []*dto.PeerQuestionDTO{}, nil
}

func (stubPeerSvc) AddFeedback(context.Context, *dto.PeerFeedbackCreateDTO) (*dto.PeerFeedbackDTO, error) {
	return &dto.PeerFeedbackDTO{ID: 1}, nil
}

func (stubPeerSvc) ListFeedbacks(context.Context, string) ([]*dto.PeerFeedbackDTO, error) {
	return []*dto.PeerFeedbackDTO{}, nil
}

func TestPeerInterviewEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPeerInterviewHandler(stubPeerSvc{})
	r := gin.New()
	r.POST("/session", h.CreateSession)
	r.GET("/session", h.ListSessions)
	r.GET("/question", h.ListQuestions)
	r.POST("/question", h.AddQuestion)

	serve := func(method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w, decodeBody(t, w)
	}

	w, body := serve(http.MethodPost, "/session", "")
	session, _ := body["session"].(map[string]any)
	if w.Code != http.StatusOK || body["success"] != true || session["id"] != "demo-session-123" || session["participantB"] != nil {
		t.Fatalf("create session: %d %s", w.Code, w.Body.String())
	}

	w, body = serve(http.MethodGet, "/session", "")
	if w.Code != http.StatusBadRequest || body["success"] != false || body["error"] != "Missing userId" {
		t.Fatalf("missing userId: %d %s", w.Code, w.Body.String())
	}

	w, body = serve(http.MethodGet, "/question", "")
	if w.Code != http.StatusBadRequest || body["error"] != "Missing sessionId" {
		t.Fatalf("missing sessionId: %d %s", w.Code, w.Body.String())
	}

	w, body = serve(http.MethodPost, "/question", `{"sessionId":"s1","askedBy":"u1"}`)
	if w.Code != http.StatusBadRequest || body["success"] != false {
		t.Fatalf("missing question: %d %s", w.Code, w.Body.String())
	}
}
