package dto

type NotificationDTO struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	TargetID  string         `json:"targetId"`
	Content   string         `json:"content"`
	Payload   map[string]any `json:"payload"`
	IsRead    bool           `json:"isRead"`
	CreatedAt string         `json:"createdAt"`
}

type NotificationUnreadDTO struct {
	UnreadCount int64 `json:"unreadCount"`
}
