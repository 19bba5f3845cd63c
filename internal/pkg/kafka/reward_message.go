package kafka

import (
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/mongo"
	"fmt"
	"time"
)

// RewardMessage 奖励事件，经 Kafka 或直接写入通知
type RewardMessage struct {
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	SourceID   string    `json:"sourceId,omitempty"`
	RewardType string    `json:"rewardType,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	Total      int64     `json:"total,omitempty"`
	BadgeID    string    `json:"badgeId,omitempty"`
	BadgeName  string    `json:"badgeName,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// DedupKey 同一事件重复投递只生成一条通知
func (m *RewardMessage) DedupKey() string {
	if m.Type == consts.NotificationTypeBadge {
		return fmt.Sprintf("%s:%s:%s", m.Type, m.UserID, m.BadgeID)
	}
	return fmt.Sprintf("%s:%s:%s:%s", m.Type, m.UserID, m.RewardType, m.SourceID)
}

func (m *RewardMessage) ToNotification() *mongo.NotificationModel {
	n := &mongo.NotificationModel{
		ReceiverID: m.UserID,
		Type:       m.Type,
		DedupKey:   m.DedupKey(),
		CreatedAt:  m.OccurredAt,
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	switch m.Type {
	case consts.NotificationTypeBadge:
		n.TargetID = m.BadgeID
		n.Content = fmt.Sprintf("You earned the %s badge!", m.BadgeName)
		n.Payload = map[string]any{"badgeId": m.BadgeID, "badgeName": m.BadgeName}
	default:
		n.TargetID = m.SourceID
		n.Content = fmt.Sprintf("You earned %d tokens. Total: %d", m.Amount, m.Total)
		n.Payload = map[string]any{"amount": m.Amount, "total": m.Total, "rewardType": m.RewardType}
	}
	return n
}
