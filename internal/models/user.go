package models

import "time"

// UserProfile is the identity created at signup. Only IsOnboarded changes afterwards.
type UserProfile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	IsOnboarded bool      `json:"is_onboarded"`
	CreatedAt   time.Time `json:"created_at"`
}

// User pairs a profile with its onboarding answers (nil until submitted).
type User struct {
	Profile    UserProfile     `json:"profile"`
	Onboarding *OnboardingData `json:"onboarding"`
}

// Clone returns a copy that shares no mutable memory with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := &User{Profile: u.Profile}
	if u.Onboarding != nil {
		data := u.Onboarding.Clone()
		out.Onboarding = &data
	}
	return out
}
