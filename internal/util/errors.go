package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrGoalInactive         = errors.New("goal is not active")
	ErrGoalAlreadyCompleted = errors.New("one-time goal already completed")
	ErrNothingToUndo        = errors.New("no completion to undo")
	ErrAlreadyClockedIn     = errors.New("already clocked in today")
	ErrNotClockedIn         = errors.New("no open time entry for today")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrSelfDemotion         = errors.New("admins cannot revoke their own admin role")
	ErrSelfDeletion         = errors.New("admins cannot delete their own account")
	ErrResetTokenInvalid    = errors.New("reset token is invalid or expired")
)
