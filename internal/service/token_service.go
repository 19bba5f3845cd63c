package service

import (
	"InterVue/internal/repository"
	"context"
	"strings"
)

type TokenService interface {
	AwardTokens(ctx context.Context, userID string, amount int64) (int64, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
}

type tokenServiceImpl struct {
	tokenRepo repository.TokenRepo
}

func NewTokenService(tokenRepo repository.TokenRepo) TokenService {
	return &tokenServiceImpl{tokenRepo: tokenRepo}
}

// AwardTokens 原子累加，返回累加后的余额
func (s *tokenServiceImpl) AwardTokens(ctx context.Context, userID string, amount int64) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, ErrMissingUserID
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return s.tokenRepo.AddTokens(ctx, userID, amount)
}

// GetBalance 没有记录视为 0
func (s *tokenServiceImpl) GetBalance(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, ErrMissingUserID
	}
	token, err := s.tokenRepo.GetToken(ctx, userID)
	if err != nil {
		return 0, err
	}
	if token == nil {
		return 0, nil
	}
	return token.Amount, nil
}
