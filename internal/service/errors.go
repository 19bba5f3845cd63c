package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrParamInvalid         = errors.New("invalid parameters")
	ErrMissingUserID        = errors.New("userId is required")
	ErrInvalidAmount        = errors.New("amount must be a positive integer")
	ErrMissingBadgeID       = errors.New("badgeId is required")
	ErrBadgeNotFound        = errors.New("badge not found")
	ErrInvalidPeriod        = errors.New("period must be week or month")
	ErrInvalidRewardType    = errors.New("unknown reward type")
	ErrMissingSourceID      = errors.New("sourceId is required")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExist            = errors.New("user already exists, please sign in instead")
	ErrPasswordIncorrect    = errors.New("invalid email or password")
	ErrNotAuthenticated     = errors.New("Not authenticated")
	ErrInterviewNotFound    = errors.New("interview not found")
	ErrMissingFields        = errors.New("Missing required fields")
	ErrInvalidQuestionCount = errors.New("Invalid amount of questions")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrEmptyTranscript      = errors.New("transcript is required")
	ErrMissingTopic         = errors.New("Missing topic")
	ErrQuizNotFound         = errors.New("quiz not found or expired")
	ErrOracleUnavailable    = errors.New("AI service is unavailable, please try again later")
	ErrFileNotSupported     = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file is too large")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrMissingSessionID     = errors.New("Missing sessionId")
	ErrTooManyRequests      = errors.New("too many requests, please slow down")
	UnExpectedError         = errors.New("internal server error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         http.StatusBadRequest,
	ErrMissingUserID:        http.StatusBadRequest,
	ErrInvalidAmount:        http.StatusBadRequest,
	ErrMissingBadgeID:       http.StatusBadRequest,
	ErrBadgeNotFound:        http.StatusNotFound,
	ErrInvalidPeriod:        http.StatusBadRequest,
	ErrInvalidRewardType:    http.StatusBadRequest,
	ErrMissingSourceID:      http.StatusBadRequest,
	ErrUserNotFound:         http.StatusNotFound,
	ErrUserExist:            http.StatusBadRequest,
	ErrPasswordIncorrect:    http.StatusUnauthorized,
	ErrNotAuthenticated:     http.StatusUnauthorized,
	ErrInterviewNotFound:    http.StatusNotFound,
	ErrMissingFields:        http.StatusBadRequest,
	ErrInvalidQuestionCount: http.StatusBadRequest,
	ErrFeedbackNotFound:     http.StatusNotFound,
	ErrEmptyTranscript:      http.StatusBadRequest,
	ErrMissingTopic:         http.StatusBadRequest,
	ErrQuizNotFound:         http.StatusNotFound,
	ErrOracleUnavailable:    http.StatusBadGateway,
	ErrFileNotSupported:     http.StatusBadRequest,
	ErrFileTooLarge:         http.StatusBadRequest,
	ErrNotificationNotFound: http.StatusNotFound,
	ErrMissingSessionID:     http.StatusBadRequest,
	ErrTooManyRequests:      http.StatusTooManyRequests,
	UnExpectedError:         http.StatusInternalServerError,
}

// StatusOf 支持被 %w 包装过的哨兵错误，未登记返回 500
func StatusOf(err error) (int, error) {
	if code, ok := ErrorMap[err]; ok {
		return code, err
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return code, sentinel
		}
	}
	return http.StatusInternalServerError, nil
}

// InvalidParam 携带具体字段信息的参数错误
func InvalidParam(detail string) error {
	return fmt.Errorf("%w: %s", ErrParamInvalid, detail)
}
