package consts

const (
	MimePrefixImage = "image"
)

const (
	LeaderboardPeriodWeek  = "week"
	LeaderboardPeriodMonth = "month"
	LeaderboardLimit       = 10
)

const (
	NotificationTypeTokens = "tokens_awarded"
	NotificationTypeBadge  = "badge_awarded"
)

const (
	DemoPeerSessionID = "demo-session-123"
)

// CoverImages 面试封面候选
var CoverImages = []string{
	"/covers/adobe.png",
	"/covers/amazon.png",
	"/covers/facebook.png",
	"/covers/hostinger.png",
	"/covers/pinterest.png",
	"/covers/quora.png",
	"/covers/reddit.png",
	"/covers/skype.png",
	"/covers/spotify.png",
	"/covers/telegram.png",
	"/covers/tiktok.png",
	"/covers/yahoo.png",
}
