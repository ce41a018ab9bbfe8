package usecase

import (
	"context"
	"errors"
	"time"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/otp"
	"cardlink-backend/internal/phone"
	"cardlink-backend/internal/validate"
	"cardlink-backend/pkg/kafka"
	"cardlink-backend/pkg/xerrors"

	"go.uber.org/zap"
)

// UserStore is the persistence surface the auth and profile flows need.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByPhone(ctx context.Context, mobileNumber string) (*domain.User, error)
	ExistsByPhone(ctx context.Context, mobileNumber string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, u *domain.User) error
	SetLoginOTP(ctx context.Context, userID, code string, issuedAt time.Time) error
	ClearLoginOTP(ctx context.Context, userID string) error
}

// OTPLimiter throttles OTP issuance per subject.
type OTPLimiter interface {
	CanRequest(ctx context.Context, subject, purpose string) error
}

// TokenSigner issues access tokens.
type TokenSigner interface {
	Sign(userID string, isStaff bool) (string, error)
}

// IDGenerator mints entity IDs.
type IDGenerator interface {
	Generate() string
}

// EventPublisher emits domain events to the broker. Implementations may be
// absent; callers treat publish failures as non-fatal.
type EventPublisher interface {
	PublishRegistration(ctx context.Context, ev *kafka.RegistrationEvent) error
	PublishPush(ctx context.Context, ev *kafka.PushEvent) error
}

type AuthUsecase struct {
	users   UserStore
	staging *otp.StagingStore
	limiter OTPLimiter
	ids     IDGenerator
	tokens  TokenSigner
	events  EventPublisher
	logger  *zap.Logger
	now     func() time.Time
}

func NewAuthUsecase(
	users UserStore,
	staging *otp.StagingStore,
	limiter OTPLimiter,
	ids IDGenerator,
	tokens TokenSigner,
	events EventPublisher,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:   users,
		staging: staging,
		limiter: limiter,
		ids:     ids,
		tokens:  tokens,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

// RequestLoginOTP issues a login code for an existing account. The code is
// returned to the caller; SMS delivery is out of band.
func (uc *AuthUsecase) RequestLoginOTP(ctx context.Context, mobileNumber, countryCode string) (string, validate.Errors, error) {
	e164, _, ferr := phone.Normalize(mobileNumber, countryCode)
	if ferr != nil {
		return "", validate.Errors{ferr}, nil
	}

	user, err := uc.users.GetByPhone(ctx, e164)
	if err != nil {
		return "", nil, err
	}

	if uc.limiter != nil {
		if err := uc.limiter.CanRequest(ctx, e164, "login"); err != nil {
			return "", validate.Errors{validate.NonField(err.Error())}, nil
		}
	}

	code := otp.GenerateCode()
	if err := uc.users.SetLoginOTP(ctx, user.ID, code, uc.now()); err != nil {
		return "", nil, err
	}

	uc.logger.Debug("login OTP issued", zap.String("user_id", user.ID))
	return code, nil, nil
}

// VerifyLoginOTP exchanges a valid login code for an access token. Unknown
// numbers and bad or stale codes all collapse to ErrInvalidOTP; the code is
// cleared on success so it cannot be replayed.
func (uc *AuthUsecase) VerifyLoginOTP(ctx context.Context, mobileNumber, countryCode, code string) (string, *domain.User, error) {
	e164, _, ferr := phone.Normalize(mobileNumber, countryCode)
	if ferr != nil {
		return "", nil, xerrors.ErrInvalidOTP
	}

	user, err := uc.users.GetByPhone(ctx, e164)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			return "", nil, xerrors.ErrInvalidOTP
		}
		return "", nil, err
	}

	if !user.OTPValid(code, uc.now(), otp.TTL) {
		return "", nil, xerrors.ErrInvalidOTP
	}

	if err := uc.users.ClearLoginOTP(ctx, user.ID); err != nil {
		return "", nil, err
	}
	user.OTPCode = nil
	user.OTPCreatedAt = nil

	token, err := uc.tokens.Sign(user.ID, user.IsStaff)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// SignupRequest is the candidate payload staged until OTP verification.
type SignupRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	MobileNumber string  `json:"mobile_number"`
	CountryCode  string  `json:"country_code"`
	IsWhatsApp   bool    `json:"is_whatsapp"`
}

// Signup stages a new-account candidate and issues its verification code.
// No account row is created here. Re-requesting for the same number
// supersedes the previous staging entry and its code.
func (uc *AuthUsecase) Signup(ctx context.Context, req *SignupRequest) (string, validate.Errors, error) {
	e164, cc, ferr := phone.Normalize(req.MobileNumber, req.CountryCode)
	if ferr != nil {
		return "", validate.Errors{ferr}, nil
	}

	taken, err := uc.users.ExistsByPhone(ctx, e164)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, xerrors.ErrPhoneAlreadyInUse
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := uc.users.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return "", nil, err
		}
		if taken {
			return "", nil, xerrors.ErrEmailAlreadyInUse
		}
	}

	if uc.limiter != nil {
		if err := uc.limiter.CanRequest(ctx, e164, "signup"); err != nil {
			return "", validate.Errors{validate.NonField(err.Error())}, nil
		}
	}

	code := otp.GenerateCode()
	pending := &domain.PendingSignup{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: e164,
		CountryCode:  cc,
		IsWhatsApp:   req.IsWhatsApp,
		OTPCode:      code,
	}
	if err := uc.staging.Stage(ctx, pending); err != nil {
		return "", nil, err
	}

	uc.logger.Debug("signup OTP issued", zap.String("mobile_number", e164))
	return code, nil, nil
}

// FinalizeSignup consumes the staging entry for the number, creates the
// account, and returns an access token with the new user.
func (uc *AuthUsecase) FinalizeSignup(ctx context.Context, mobileNumber, countryCode, code string) (string, *domain.User, error) {
	e164, _, ferr := phone.Normalize(mobileNumber, countryCode)
	if ferr != nil {
		return "", nil, xerrors.ErrSignupNotStaged
	}

	pending, err := uc.staging.Consume(ctx, e164, code)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:           uc.ids.Generate(),
		Name:         pending.Name,
		Email:        pending.Email,
		MobileNumber: pending.MobileNumber,
		CountryCode:  pending.CountryCode,
		IsWhatsApp:   pending.IsWhatsApp,
		Role:         domain.RoleIndividual,
		IsActive:     true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := uc.tokens.Sign(user.ID, user.IsStaff)
	if err != nil {
		return "", nil, err
	}

	if uc.events != nil {
		ev := &kafka.RegistrationEvent{
			UserID:       user.ID,
			MobileNumber: user.MobileNumber,
			Email:        user.Email,
			RegisteredAt: user.CreatedAt,
		}
		if err := uc.events.PublishRegistration(ctx, ev); err != nil {
			uc.logger.Warn("registration event publish failed", zap.Error(err))
		}
	}

	uc.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("mobile_number", user.MobileNumber))
	return token, user, nil
}
