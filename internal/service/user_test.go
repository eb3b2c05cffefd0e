package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stockology/backend/internal/config"
	"github.com/stockology/backend/internal/domain"
	"github.com/stockology/backend/pkg/auth"
	"github.com/stockology/backend/pkg/hash"
	"github.com/stockology/backend/pkg/sms"
	mock_sms "github.com/stockology/backend/pkg/sms/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type usersRepoMock struct {
	mock.Mock
}

func (m *usersRepoMock) Create(_ context.Context, user *domain.User) error {
	args := m.Called(user)

	return args.Error(0)
}

func (m *usersRepoMock) GetOneByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(id)

	user, _ := args.Get(0).(*domain.User)

	return user, args.Error(1)
}

func (m *usersRepoMock) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	args := m.Called(email)

	user, _ := args.Get(0).(*domain.User)

	return user, args.Error(1)
}

func (m *usersRepoMock) GetVerifiedOwnerByPhone(_ context.Context, phoneNumber string) (*domain.User, error) {
	args := m.Called(phoneNumber)

	user, _ := args.Get(0).(*domain.User)

	return user, args.Error(1)
}

func (m *usersRepoMock) SetPendingOtp(_ context.Context, userID uuid.UUID, code string, phoneNumber string) error {
	args := m.Called(userID, code, phoneNumber)

	return args.Error(0)
}

func (m *usersRepoMock) CompleteVerification(_ context.Context, userID uuid.UUID, joinedOn time.Time) (bool, error) {
	args := m.Called(userID, joinedOn)

	return args.Bool(0), args.Error(1)
}

type watchlistsRepoMock struct {
	mock.Mock
}

func (m *watchlistsRepoMock) CreateMany(_ context.Context, entries []domain.WatchlistEntry) error {
	args := m.Called(entries)

	return args.Error(0)
}

func (m *watchlistsRepoMock) GetAllByUserID(_ context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error) {
	args := m.Called(userID)

	entries, _ := args.Get(0).([]domain.WatchlistEntry)

	return entries, args.Error(1)
}

type staticOtpGenerator struct {
	code string
}

func (g staticOtpGenerator) RandomCode(_ int) string {
	return g.code
}

type userServiceFixture struct {
	service      *userService
	usersRepo    *usersRepoMock
	watchlists   *watchlistsRepoMock
	smsSender    *mock_sms.SMSSender
	hasher       hash.PasswordHasher
	tokenManager auth.TokenManager
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()

	tokenManager, err := auth.NewManager(config.JWTConfig{
		SigningKey:     "test-signing-key",
		AccessTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	usersRepo := new(usersRepoMock)
	watchlists := new(watchlistsRepoMock)
	smsSender := new(mock_sms.SMSSender)
	hasher := hash.NewSHA256Hasher("test-salt")

	return &userServiceFixture{
		service: newUserService(
			usersRepo,
			watchlists,
			hasher,
			tokenManager,
			staticOtpGenerator{code: "1234"},
			smsSender,
			config.AuthConfig{OtpLength: 4},
		),
		usersRepo:    usersRepo,
		watchlists:   watchlists,
		smsSender:    smsSender,
		hasher:       hasher,
		tokenManager: tokenManager,
	}
}

func (f *userServiceFixture) storedUser(t *testing.T, password string) *domain.User {
	t.Helper()

	passwordHash, err := f.hasher.Hash(password)
	require.NoError(t, err)

	id, err := uuid.NewV7()
	require.NoError(t, err)

	return &domain.User{
		ID:           id,
		FullName:     "Alice",
		Email:        "a@x.com",
		PasswordHash: passwordHash,
	}
}

func TestUserService_SignUp(t *testing.T) {
	f := newUserServiceFixture(t)

	f.usersRepo.On("GetByEmail", "a@x.com").Return(nil, domain.ErrNotFound).Once()
	f.usersRepo.On("Create", mock.MatchedBy(func(u *domain.User) bool {
		return u.FullName == "Alice" &&
			u.Email == "a@x.com" &&
			u.PasswordHash != "pw1" &&
			!u.IsPhoneNumberVerified &&
			!u.IsProfileComplete
	})).Return(nil).Once().Run(func(args mock.Arguments) {
		created := args.Get(0).(*domain.User)
		f.usersRepo.On("GetOneByID", created.ID).Return(created, nil).Once()
	})

	result, err := f.service.SignUp(context.Background(), SignUpInput{
		FullName: "Alice",
		Email:    "a@x.com",
		Password: "pw1",
	})
	require.NoError(t, err)

	sub, err := f.tokenManager.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), sub)
	assert.False(t, result.User.IsPhoneNumberVerified)

	f.usersRepo.AssertExpectations(t)
}

func TestUserService_SignUpMissingFields(t *testing.T) {
	f := newUserServiceFixture(t)

	for _, input := range []SignUpInput{
		{},
		{FullName: "Alice", Email: "a@x.com"},
		{FullName: "Alice", Password: "pw1"},
		{Email: "a@x.com", Password: "pw1"},
	} {
		_, err := f.service.SignUp(context.Background(), input)
		assert.ErrorIs(t, err, ErrRequiredFieldsMissing)
	}
}

func TestUserService_SignUpDuplicateEmail(t *testing.T) {
	f := newUserServiceFixture(t)

	existing := f.storedUser(t, "pw1")
	f.usersRepo.On("GetByEmail", "a@x.com").Return(existing, nil).Once()

	_, err := f.service.SignUp(context.Background(), SignUpInput{
		FullName: "Bob",
		Email:    "a@x.com",
		Password: "pw2",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExist)
}

func TestUserService_SignUpInsertRace(t *testing.T) {
	f := newUserServiceFixture(t)

	// Pre-check misses the concurrent insert; the unique key reports it.
	f.usersRepo.On("GetByEmail", "a@x.com").Return(nil, domain.ErrNotFound).Once()
	f.usersRepo.On("Create", mock.Anything).Return(domain.ErrDuplicateEntry).Once()

	_, err := f.service.SignUp(context.Background(), SignUpInput{
		FullName: "Alice",
		Email:    "a@x.com",
		Password: "pw1",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExist)
}

func TestUserService_SignIn(t *testing.T) {
	f := newUserServiceFixture(t)

	user := f.storedUser(t, "pw1")
	f.usersRepo.On("GetByEmail", "a@x.com").Return(user, nil)

	_, err := f.service.SignIn(context.Background(), SignInInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := f.service.SignIn(context.Background(), SignInInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	sub, err := f.tokenManager.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), sub)
}

func TestUserService_SignInUnknownEmail(t *testing.T) {
	f := newUserServiceFixture(t)

	f.usersRepo.On("GetByEmail", "b@x.com").Return(nil, domain.ErrNotFound).Once()

	_, err := f.service.SignIn(context.Background(), SignInInput{Email: "b@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_SendOtp(t *testing.T) {
	f := newUserServiceFixture(t)
	userID := uuid.New()

	f.usersRepo.On("GetVerifiedOwnerByPhone", "+911234567890").Return(nil, domain.ErrNotFound).Once()
	f.usersRepo.On("SetPendingOtp", userID, "1234", "+911234567890").Return(nil).Once()
	f.smsSender.On("Send", sms.SendSMSInput{
		To:      "+911234567890",
		Message: "Your OTP for Stockology is 1234",
	}).Return(nil).Once()

	err := f.service.SendOtp(context.Background(), userID, "+911234567890")
	require.NoError(t, err)

	f.usersRepo.AssertExpectations(t)
	f.smsSender.AssertExpectations(t)
}

func TestUserService_SendOtpInvalidPhone(t *testing.T) {
	f := newUserServiceFixture(t)

	for _, phone := range []string{"", "12345", "not-a-number"} {
		err := f.service.SendOtp(context.Background(), uuid.New(), phone)
		assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
	}
}

func TestUserService_SendOtpPhoneOwnedVerified(t *testing.T) {
	f := newUserServiceFixture(t)

	owner := f.storedUser(t, "pw1")
	owner.IsPhoneNumberVerified = true
	f.usersRepo.On("GetVerifiedOwnerByPhone", "+911234567890").Return(owner, nil).Once()

	err := f.service.SendOtp(context.Background(), uuid.New(), "+911234567890")
	assert.ErrorIs(t, err, ErrPhoneNumberTaken)
}

func TestUserService_SendOtpOwnVerifiedPhone(t *testing.T) {
	f := newUserServiceFixture(t)

	owner := f.storedUser(t, "pw1")
	owner.IsPhoneNumberVerified = true
	f.usersRepo.On("GetVerifiedOwnerByPhone", "+911234567890").Return(owner, nil).Once()
	f.usersRepo.On("SetPendingOtp", owner.ID, "1234", "+911234567890").Return(nil).Once()
	f.smsSender.On("Send", mock.Anything).Return(nil).Once()

	err := f.service.SendOtp(context.Background(), owner.ID, "+911234567890")
	assert.NoError(t, err)
}

func TestUserService_SendOtpDeliveryFailed(t *testing.T) {
	f := newUserServiceFixture(t)
	userID := uuid.New()

	f.usersRepo.On("GetVerifiedOwnerByPhone", "+911234567890").Return(nil, domain.ErrNotFound).Once()
	f.usersRepo.On("SetPendingOtp", userID, "1234", "+911234567890").Return(nil).Once()
	f.smsSender.On("Send", mock.Anything).Return(errors.New("provider down")).Once()

	err := f.service.SendOtp(context.Background(), userID, "+911234567890")
	assert.ErrorIs(t, err, ErrOtpDeliveryFailed)
}

func TestUserService_VerifyOtp(t *testing.T) {
	f := newUserServiceFixture(t)

	user := f.storedUser(t, "pw1")
	user.PhoneNumber = sql.NullString{String: "+911234567890", Valid: true}
	user.PendingOtp = sql.NullString{String: "1234", Valid: true}

	verified := *user
	verified.PendingOtp = sql.NullString{}
	verified.IsPhoneNumberVerified = true
	verified.IsProfileComplete = true
	now := time.Now()
	verified.JoinedOn = &now

	f.usersRepo.On("GetOneByID", user.ID).Return(user, nil).Once()
	f.usersRepo.On("CompleteVerification", user.ID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()
	f.watchlists.On("CreateMany", mock.MatchedBy(func(entries []domain.WatchlistEntry) bool {
		if len(entries) != len(defaultWatchlistSymbols) {
			return false
		}
		for i, symbol := range defaultWatchlistSymbols {
			if entries[i].Symbol != symbol || entries[i].UserID != user.ID {
				return false
			}
		}
		return true
	})).Return(nil).Once()
	f.usersRepo.On("GetOneByID", user.ID).Return(&verified, nil).Once()

	result, err := f.service.VerifyOtp(context.Background(), user.ID, "1234")
	require.NoError(t, err)

	assert.True(t, result.User.IsPhoneNumberVerified)
	assert.True(t, result.User.IsProfileComplete)
	assert.NotNil(t, result.User.JoinedOn)
	assert.False(t, result.User.PendingOtp.Valid)

	sub, err := f.tokenManager.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), sub)

	f.watchlists.AssertExpectations(t)
	f.usersRepo.AssertExpectations(t)
}

func TestUserService_VerifyOtpWrongCode(t *testing.T) {
	f := newUserServiceFixture(t)

	user := f.storedUser(t, "pw1")
	user.PendingOtp = sql.NullString{String: "1234", Valid: true}
	f.usersRepo.On("GetOneByID", user.ID).Return(user, nil).Once()

	_, err := f.service.VerifyOtp(context.Background(), user.ID, "4321")
	assert.ErrorIs(t, err, ErrInvalidOtp)
}

func TestUserService_VerifyOtpStaleCode(t *testing.T) {
	f := newUserServiceFixture(t)

	// The pending code was already consumed; a replayed code never matches.
	user := f.storedUser(t, "pw1")
	f.usersRepo.On("GetOneByID", user.ID).Return(user, nil).Once()

	_, err := f.service.VerifyOtp(context.Background(), user.ID, "1234")
	assert.ErrorIs(t, err, ErrInvalidOtp)
}

func TestUserService_VerifyOtpMissingCode(t *testing.T) {
	f := newUserServiceFixture(t)

	user := f.storedUser(t, "pw1")
	f.usersRepo.On("GetOneByID", user.ID).Return(user, nil).Once()

	_, err := f.service.VerifyOtp(context.Background(), user.ID, "")
	assert.ErrorIs(t, err, ErrRequiredFieldsMissing)
}

func TestUserService_VerifyOtpUnknownUser(t *testing.T) {
	f := newUserServiceFixture(t)
	userID := uuid.New()

	f.usersRepo.On("GetOneByID", userID).Return(nil, domain.ErrNotFound).Once()

	_, err := f.service.VerifyOtp(context.Background(), userID, "1234")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_VerifyOtpAlreadyVerifiedSkipsSeeding(t *testing.T) {
	f := newUserServiceFixture(t)

	user := f.storedUser(t, "pw1")
	user.IsPhoneNumberVerified = true
	user.PendingOtp = sql.NullString{String: "1234", Valid: true}

	f.usersRepo.On("GetOneByID", user.ID).Return(user, nil).Twice()
	f.usersRepo.On("CompleteVerification", user.ID, mock.AnythingOfType("time.Time")).Return(false, nil).Once()

	_, err := f.service.VerifyOtp(context.Background(), user.ID, "1234")
	require.NoError(t, err)

	f.watchlists.AssertNotCalled(t, "CreateMany", mock.Anything)
}

func TestUserService_GetOneByID(t *testing.T) {
	f := newUserServiceFixture(t)

	user := f.storedUser(t, "pw1")
	f.usersRepo.On("GetOneByID", user.ID).Return(user, nil).Once()

	got, err := f.service.GetOneByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	unknown := uuid.New()
	f.usersRepo.On("GetOneByID", unknown).Return(nil, domain.ErrNotFound).Once()

	_, err = f.service.GetOneByID(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
