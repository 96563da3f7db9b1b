package staff

import (
	"context"
	"fmt"
	"time"

	staffRepo "dentora/database/repository/staff"
	"dentora/models"
	"dentora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenDuration    = 12 * time.Hour
	maxLoginAttempts = 5
	lockoutWindow    = 15 * time.Minute
)

// AuthResponse is returned on successful staff sign-in.
type AuthResponse struct {
	Token string           `json:"token"`
	User  models.StaffUser `json:"user"`
}

// StaffService handles administration-portal accounts.
type StaffService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.StaffUser, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, userID string) error
}

type DefaultStaffService struct {
	Repo      staffRepo.StaffRepository
	AuthCache *redis.Client // failed-attempt counters; optional
}

func attemptsKey(email string) string {
	return "staff:login:attempts:" + email
}

func (s *DefaultStaffService) tooManyAttempts(ctx context.Context, email string) bool {
	if s.AuthCache == nil {
		return false
	}
	n, err := s.AuthCache.Get(ctx, attemptsKey(email)).Int()
	return err == nil && n >= maxLoginAttempts
}

func (s *DefaultStaffService) recordFailedAttempt(ctx context.Context, email string) {
	if s.AuthCache == nil {
		return
	}
	key := attemptsKey(email)
	if err := s.AuthCache.Incr(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("failed to record login attempt", zap.Error(err))
		return
	}
	s.AuthCache.Expire(ctx, key, lockoutWindow)
}

func (s *DefaultStaffService) Register(ctx context.Context, name, email, password, role string) (*models.StaffUser, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a staff account with that email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if role == "" {
		role = "receptionist"
	}
	user := &models.StaffUser{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DefaultStaffService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	if s.tooManyAttempts(ctx, email) {
		return nil, fmt.Errorf("too many failed attempts, try again later")
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch staff user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		s.recordFailedAttempt(ctx, email)
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailedAttempt(ctx, email)
		return nil, fmt.Errorf("invalid email or password")
	}
	if s.AuthCache != nil {
		s.AuthCache.Del(ctx, attemptsKey(email))
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	// Store the token hash so sign-out can revoke the session server-side.
	if err := s.Repo.SetTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	user.PasswordHash = ""
	return &AuthResponse{Token: token, User: *user}, nil
}

func (s *DefaultStaffService) RevokeToken(ctx context.Context, userID string) error {
	return s.Repo.SetTokenHash(ctx, userID, "")
}
