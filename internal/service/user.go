package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stockology/backend/internal/config"
	"github.com/stockology/backend/internal/domain"
	"github.com/stockology/backend/internal/queue/client"
	"github.com/stockology/backend/internal/queue/task"
	"github.com/stockology/backend/internal/repository"
	"github.com/stockology/backend/pkg/auth"
	"github.com/stockology/backend/pkg/hash"
	"github.com/stockology/backend/pkg/logger"
	"github.com/stockology/backend/pkg/otp"
	"github.com/stockology/backend/pkg/sms"
	"github.com/stockology/backend/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const otpMessageTemplate = "Your OTP for Stockology is %s"

// defaultWatchlistSymbols is the starter set seeded for every account on its
// first successful phone verification.
var defaultWatchlistSymbols = []string{
	"SBIN.NS",
	"RELIANCE.NS",
	"TCS.NS",
	"ICICIBANK.NS",
	"HDFCBANK.NS",
	"BAJFINANCE.NS",
	"SUZLON.NS",
}

type userService struct {
	userRepository      repository.Users
	watchlistRepository repository.Watchlists
	hasher              hash.PasswordHasher
	tokenManager        auth.TokenManager
	otpGenerator        otp.Generator
	smsSender           sms.Sender
	authConfig          config.AuthConfig
}

func newUserService(userRepository repository.Users,
	watchlistRepository repository.Watchlists,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	smsSender sms.Sender,
	authConfig config.AuthConfig,
) *userService {
	return &userService{
		userRepository:      userRepository,
		watchlistRepository: watchlistRepository,
		hasher:              hasher,
		tokenManager:        tokenManager,
		otpGenerator:        otpGenerator,
		smsSender:           smsSender,
		authConfig:          authConfig,
	}
}

type SignUpInput struct {
	FullName string
	Email    string
	Password string
}

type SignInInput struct {
	Email    string
	Password string
}

func (s *userService) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, ErrRequiredFieldsMissing
	}

	// Friendly pre-check; the unique key on email closes the race on insert.
	if _, err := s.userRepository.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrUserAlreadyExist
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id failed: %w", err)
	}

	newUser := &domain.User{
		ID:                    userID,
		FullName:              input.FullName,
		Email:                 input.Email,
		PasswordHash:          passwordHash,
		IsPhoneNumberVerified: false,
		IsProfileComplete:     false,
	}

	if err := s.userRepository.Create(ctx, newUser); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExist
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get created user failed: %w", err)
	}

	token, err := s.tokenManager.NewJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token failed: %w", err)
	}

	s.enqueueWelcomeEmail(ctx, user)

	return &AuthResult{Token: token, User: user}, nil
}

func (s *userService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrRequiredFieldsMissing
	}

	user, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenManager.NewJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token failed: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// SendOtp issues a fresh code for phoneNumber and stores it as the caller's
// pending code, overwriting any earlier one. The row is updated before the
// SMS goes out, so a delivery failure leaves a retryable pending code behind.
func (s *userService) SendOtp(ctx context.Context, userID uuid.UUID, phoneNumber string) error {
	if phoneNumber == "" || !validator.IsPhoneNumberValid(phoneNumber) {
		return ErrInvalidPhoneNumber
	}

	owner, err := s.userRepository.GetVerifiedOwnerByPhone(ctx, phoneNumber)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get verified owner by phone failed: %w", err)
	}
	if owner != nil && owner.ID != userID {
		return ErrPhoneNumberTaken
	}

	code := s.otpGenerator.RandomCode(s.authConfig.OtpLength)

	if err := s.userRepository.SetPendingOtp(ctx, userID, code, phoneNumber); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return ErrUserNotFound
		}
		return fmt.Errorf("store pending otp failed: %w", err)
	}

	sendInput := sms.SendSMSInput{
		To:      phoneNumber,
		Message: fmt.Sprintf(otpMessageTemplate, code),
	}
	if err := s.smsSender.Send(ctx, sendInput); err != nil {
		return fmt.Errorf("%w: %s", ErrOtpDeliveryFailed, err)
	}

	return nil
}

// VerifyOtp compares code against the stored pending code byte for byte. A
// cleared pending code never matches, so replaying a stale code fails with
// ErrInvalidOtp. Watchlist seeding runs only on the false→true verification
// transition, and the seed insert itself is idempotent.
func (s *userService) VerifyOtp(ctx context.Context, userID uuid.UUID, code string) (*AuthResult, error) {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	if code == "" {
		return nil, ErrRequiredFieldsMissing
	}

	if !user.PendingOtp.Valid || user.PendingOtp.String != code {
		return nil, ErrInvalidOtp
	}

	firstVerification, err := s.userRepository.CompleteVerification(ctx, userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("complete verification failed: %w", err)
	}

	if firstVerification {
		if err := s.seedWatchlist(ctx, userID); err != nil {
			return nil, fmt.Errorf("seed watchlist failed: %w", err)
		}
	}

	user, err = s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get verified user failed: %w", err)
	}

	token, err := s.tokenManager.NewJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token failed: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) seedWatchlist(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	entries := make([]domain.WatchlistEntry, 0, len(defaultWatchlistSymbols))
	for _, symbol := range defaultWatchlistSymbols {
		entryID, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate watchlist entry id failed: %w", err)
		}
		entries = append(entries, domain.WatchlistEntry{
			ID:        entryID,
			UserID:    userID,
			Symbol:    symbol,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return s.watchlistRepository.CreateMany(ctx, entries)
}

// enqueueWelcomeEmail schedules the post-registration email. Failures are
// logged, never surfaced: registration already succeeded.
func (s *userService) enqueueWelcomeEmail(ctx context.Context, user *domain.User) {
	queueClient := client.GetClient(ctx)
	if queueClient == nil {
		return
	}

	welcomeTask, err := task.NewSendWelcomeEmailTask(user.Email, user.FullName)
	if err != nil {
		logger.Error("build welcome email task failed", zap.Error(err))
		return
	}

	if _, err := queueClient.EnqueueContext(ctx, welcomeTask); err != nil {
		logger.Error("enqueue welcome email failed", zap.Error(err), zap.String("email", user.Email))
	}
}
