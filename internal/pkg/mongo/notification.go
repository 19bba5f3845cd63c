package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationModel 奖励通知，Type 为 tokens_awarded 或 badge_awarded，
// TargetID 对应徽章ID 或奖励来源ID
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID string             `bson:"receiver_id" json:"receiverId"`
	Type       string             `bson:"type" json:"type"`
	TargetID   string             `bson:"target_id" json:"targetId"`
	DedupKey   string             `bson:"dedup_key" json:"-"`
	Content    string             `bson:"content" json:"content"`
	Payload    map[string]any     `bson:"payload" json:"payload"`
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
