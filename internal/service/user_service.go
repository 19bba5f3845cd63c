package service

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/security"
	"InterVue/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type UserService interface {
	SignUp(ctx context.Context, dto *dto.SignUpDTO) error
	SignIn(ctx context.Context, dto *dto.SignInDTO) (string, time.Time, error)
	SignOut(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID string) (*dto.ProfileDTO, error)
}

type userServiceImpl struct {
	userRepo      repository.UserRepo
	tokenService  TokenService
	streakService StreakService
	badgeService  BadgeService
	cache         Cache
}

func NewUserService(
	userRepo repository.UserRepo,
	tokenService TokenService,
	streakService StreakService,
	badgeService BadgeService,
	cache Cache,
) UserService {
	return &userServiceImpl{
		userRepo:      userRepo,
		tokenService:  tokenService,
		streakService: streakService,
		badgeService:  badgeService,
		cache:         cache,
	}
}

func (s *userServiceImpl) SignUp(ctx context.Context, signUp *dto.SignUpDTO) error {
	email := normalizeEmail(signUp.Email)
	exist, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrUserExist
	}

	hash, err := security.HashPassword(signUp.Password)
	if err != nil {
		return err
	}
	user := &model.User{
		Name:     strings.TrimSpace(signUp.Name),
		Email:    email,
		Password: hash,
	}
	err = s.userRepo.CreateUser(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserExist
	}
	return err
}

// SignIn 邮箱不存在与密码错误返回同一个错误
func (s *userServiceImpl) SignIn(ctx context.Context, signIn *dto.SignInDTO) (string, time.Time, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(signIn.Email))
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(signIn.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return "", time.Time{}, ErrPasswordIncorrect
		}
		return "", time.Time{}, err
	}
	return security.GenerateToken(user.ID)
}

// SignOut 签名加入黑名单直到 Token 自然过期
func (s *userServiceImpl) SignOut(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrNotAuthenticated
	}
	ttl := security.ExpirationTime()
	if claims, err := security.ValidateToken(token); err == nil && claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, consts.TokenBlacklistKey+signature, "1", ttl)
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := &dto.ProfileDTO{}
	if err = copier.Copy(&profile.UserDTO, user); err != nil {
		return nil, err
	}
	if profile.Tokens, err = s.tokenService.GetBalance(ctx, userID); err != nil {
		return nil, err
	}
	if profile.Streak, err = s.streakService.GetStreak(ctx, userID); err != nil {
		return nil, err
	}
	if profile.Badges, err = s.badgeService.ListUserBadges(ctx, userID); err != nil {
		return nil, err
	}
	return profile, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
