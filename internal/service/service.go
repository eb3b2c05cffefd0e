package service

import (
	"context"

	"github.com/stockology/backend/internal/config"
	"github.com/stockology/backend/internal/domain"
	"github.com/stockology/backend/internal/repository"
	"github.com/stockology/backend/pkg/auth"
	"github.com/stockology/backend/pkg/hash"
	"github.com/stockology/backend/pkg/otp"
	"github.com/stockology/backend/pkg/sms"

	"github.com/google/uuid"
)

type Services struct {
	Users      Users
	Watchlists Watchlists
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	SMSSender    sms.Sender
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users: newUserService(deps.Repos.Users,
			deps.Repos.Watchlists,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.SMSSender,
			deps.Config.Auth,
		),
		Watchlists: newWatchlistService(deps.Repos.Watchlists),
	}
}

// AuthResult is the outcome of any operation that establishes a session: a
// freshly signed bearer token and the user it is bound to.
type AuthResult struct {
	Token string
	User  *domain.User
}

type Users interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, input SignInInput) (*AuthResult, error)
	SendOtp(ctx context.Context, userID uuid.UUID, phoneNumber string) error
	VerifyOtp(ctx context.Context, userID uuid.UUID, code string) (*AuthResult, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Watchlists interface {
	GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error)
}
