package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvalidNotificationID = errors.New("invalid notification id")

type NotificationRepo interface {
	CreateNotifications(ctx context.Context, list []*NotificationModel) error
	GetNotificationList(ctx context.Context, userID string, limit, offset int64) ([]*NotificationModel, error)
	MarkAsRead(ctx context.Context, userID string, msgID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
}

type notificationRepoImpl struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	return &notificationRepoImpl{
		col: db.Collection("notifications"),
	}
}

// CreateNotifications 按 dedup_key 幂等写入，重复投递不会产生多条通知
func (s *notificationRepoImpl) CreateNotifications(ctx context.Context, list []*NotificationModel) error {
	if len(list) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(list))
	for _, item := range list {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"dedup_key": item.DedupKey}).
			SetUpdate(bson.M{"$setOnInsert": item}).
			SetUpsert(true))
	}
	_, err := s.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return errors.Wrap(err, "upsert notifications")
	}
	return nil
}

// GetNotificationList 分页获取用户的通知列表 (按时间倒序)
func (s *notificationRepoImpl) GetNotificationList(ctx context.Context, userID string, limit, offset int64) ([]*NotificationModel, error) {
	filter := bson.M{"receiver_id": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find notifications")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*NotificationModel, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, errors.Wrap(err, "decode notifications")
	}
	return list, nil
}

// MarkAsRead 标记单条通知为已读
func (s *notificationRepoImpl) MarkAsRead(ctx context.Context, userID string, msgID string) error {
	objectID, err := primitive.ObjectIDFromHex(msgID)
	if err != nil {
		return ErrInvalidNotificationID
	}
	filter := bson.M{"_id": objectID, "receiver_id": userID}
	update := bson.M{"$set": bson.M{"is_read": true}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Wrap(err, "mark notification read")
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkAllAsRead 将用户所有未读通知标记为已读
func (s *notificationRepoImpl) MarkAllAsRead(ctx context.Context, userID string) error {
	filter := bson.M{"receiver_id": userID, "is_read": false}
	update := bson.M{"$set": bson.M{"is_read": true}}
	_, err := s.col.UpdateMany(ctx, filter, update)
	return errors.Wrap(err, "mark all notifications read")
}

func (s *notificationRepoImpl) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	filter := bson.M{"receiver_id": userID, "is_read": false}
	return s.col.CountDocuments(ctx, filter)
}
