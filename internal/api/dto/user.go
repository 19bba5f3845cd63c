package dto

import "time"

type SignUpDTO struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type SignInDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ProfileURL *string   `json:"profileURL"`
	ResumeURL  *string   `json:"resumeURL"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ProfileDTO struct {
	UserDTO
	Tokens int64           `json:"tokens"`
	Streak *StreakDTO      `json:"streak"`
	Badges []*UserBadgeDTO `json:"badges"`
}
