package consts

const (
	LeaderboardKey    = "gamification:leaderboard:"
	TokenBlacklistKey = "auth:blacklist:"
	QuizKey           = "quiz:issued:"
)

const (
	BadgeReconcileLock  = "lock:badge:reconcile"
	LeaderboardWarmLock = "lock:leaderboard:warm"
)
