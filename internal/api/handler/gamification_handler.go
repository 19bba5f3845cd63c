package handler

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/response"
	"InterVue/internal/service"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

type GamificationHandler struct {
	tokenSvc       service.TokenService
	streakSvc      service.StreakService
	badgeSvc       service.BadgeService
	leaderboardSvc service.LeaderboardService
	rewardSvc      service.RewardService
}

func NewGamificationHandler(
	tokenSvc service.TokenService,
	streakSvc service.StreakService,
	badgeSvc service.BadgeService,
	leaderboardSvc service.LeaderboardService,
	rewardSvc service.RewardService,
) *GamificationHandler {
	return &GamificationHandler{
		tokenSvc:       tokenSvc,
		streakSvc:      streakSvc,
		badgeSvc:       badgeSvc,
		leaderboardSvc: leaderboardSvc,
		rewardSvc:      rewardSvc,
	}
}

// GetTokens 查询余额
func (h *GamificationHandler) GetTokens(c *gin.Context) {
	amount, err := h.tokenSvc.GetBalance(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TokenBalanceDTO{Amount: amount})
}

// AwardTokens 发放后顺带评估徽章，评估失败不影响发放结果
func (h *GamificationHandler) AwardTokens(c *gin.Context) {
	var req dto.TokenAwardDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	ctx := c.Request.Context()
	amount, err := h.tokenSvc.AwardTokens(ctx, req.UserID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	if _, err = h.badgeSvc.EvaluateUser(ctx, req.UserID); err != nil {
		log.WarnContext(ctx, "evaluate badges after award failed", "user_id", req.UserID, "err", err)
	}
	response.Success(c, dto.TokenBalanceDTO{Amount: amount})
}

func (h *GamificationHandler) GetStreak(c *gin.Context) {
	streak, err := h.streakSvc.GetStreak(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, streak)
}

// UpdateStreak lastDate 缺省时取当前时间
func (h *GamificationHandler) UpdateStreak(c *gin.Context) {
	var req dto.StreakUpdateDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date := time.Now()
	if req.LastDate != nil {
		date = *req.LastDate
	}
	streak, err := h.streakSvc.RecordActivity(c.Request.Context(), req.UserID, date, req.Increment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, streak)
}

func (h *GamificationHandler) GetBadges(c *gin.Context) {
	list, err := h.badgeSvc.ListUserBadges(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (h *GamificationHandler) GrantBadge(c *gin.Context) {
	var req dto.BadgeGrantDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.badgeSvc.Grant(c.Request.Context(), req.UserID, req.BadgeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (h *GamificationHandler) GetCatalog(c *gin.Context) {
	list, err := h.badgeSvc.ListCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetLeaderboard period 缺省为 week，limit 最大 10
func (h *GamificationHandler) GetLeaderboard(c *gin.Context) {
	n := queryInt(c, "limit", consts.LeaderboardLimit)
	list, err := h.leaderboardSvc.TopN(c.Request.Context(), c.Query("period"), n)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// TriggerReward 同一 (userId, sourceId, rewardType) 重复调用不会重复发放
func (h *GamificationHandler) TriggerReward(c *gin.Context) {
	var req dto.RewardTriggerDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.rewardSvc.Trigger(c.Request.Context(), req.UserID, req.SourceID, req.RewardType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
