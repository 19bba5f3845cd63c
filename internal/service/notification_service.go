package service

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

type NotificationService interface {
	GetNotificationList(ctx context.Context, userID string, page, pageSize int) ([]*dto.NotificationDTO, error)
	GetUnreadCount(ctx context.Context, userID string) (*dto.NotificationUnreadDTO, error)
	MarkRead(ctx context.Context, userID string, msgID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationServiceImpl struct {
	notificationRepo mongo.NotificationRepo
}

func NewNotificationService(notificationRepo mongo.NotificationRepo) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) GetNotificationList(ctx context.Context, userID string, page, pageSize int) ([]*dto.NotificationDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}
	list, err := s.notificationRepo.GetNotificationList(ctx, userID, int64(pageSize), int64((page-1)*pageSize))
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NotificationDTO, 0, len(list))
	for _, m := range list {
		res = append(res, &dto.NotificationDTO{
			ID:        m.ID.Hex(),
			Type:      m.Type,
			TargetID:  m.TargetID,
			Content:   m.Content,
			Payload:   m.Payload,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return res, nil
}

func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, userID string) (*dto.NotificationUnreadDTO, error) {
	count, err := s.notificationRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.NotificationUnreadDTO{UnreadCount: count}, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID string, msgID string) error {
	err := s.notificationRepo.MarkAsRead(ctx, userID, msgID)
	if errors.Is(err, mongo.ErrInvalidNotificationID) || errors.Is(err, mongoDB.ErrNoDocuments) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}
