package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/malliaquatic/clubd/pkg/cryptox"
	"github.com/malliaquatic/clubd/pkg/jwtx"
	"github.com/malliaquatic/clubd/pkg/slogx"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidDNI         = errors.New("invalid_dni")
	ErrNameRequired       = errors.New("name_required")
	ErrAdminDisabled      = errors.New("admin_access_disabled")
	ErrTOTPRequired       = errors.New("totp_required")
	ErrInvalidTOTPCode    = errors.New("invalid_totp_code")
	ErrMFAAlreadyEnabled  = errors.New("mfa_already_enabled")
	ErrMFANotEnrolled     = errors.New("mfa_not_enrolled")
)

// TokenGrant is the result of a successful authentication.
type TokenGrant struct {
	Token     string
	ExpiresIn int
	Tier      domain.Tier
	Name      string
}

// MFAEnrollment carries a freshly generated TOTP secret back to the
// caller. The secret stays pending until verified with a live code.
type MFAEnrollment struct {
	Secret     string
	OTPAuthURL string
}

// AuthService issues session tokens for the three access tiers. Member
// credentials are DNI + password; admin tiers authenticate with access
// PINs checked server-side against argon2 hashes. The browser never
// learns a PIN's value or decides its own privilege level.
type AuthService struct {
	Store  store.Store
	Config *ConfigService
	Events *EventBus

	Signer   *jwtx.Signer
	Issuer   string
	UserTTL  time.Duration
	AdminTTL time.Duration

	// PHC-format argon2id hashes of the two access PINs.
	AdminPINHash      string
	SuperAdminPINHash string

	mu            sync.Mutex
	pendingSecret string // TOTP secret awaiting verification
}

// Register creates or overwrites a member account and logs it in. The
// password defaults to the DNI when empty, which mirrors the club's
// "your DNI is your pass" onboarding.
func (s *AuthService) Register(ctx context.Context, dni, name, password string) (TokenGrant, error) {
	dni = strings.TrimSpace(dni)
	name = strings.TrimSpace(name)

	if !domain.ValidDNI(dni) {
		return TokenGrant{}, ErrInvalidDNI
	}
	if name == "" {
		return TokenGrant{}, ErrNameRequired
	}
	if password == "" {
		password = dni
	}

	hash, err := cryptox.HashSecret(password)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		DNI:          dni,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Users().Upsert(ctx, user); err != nil {
		return TokenGrant{}, fmt.Errorf("persist user: %w", err)
	}

	slogx.FromContext(ctx).Info("member registered", slog.String("dni", dni))

	if s.Events != nil {
		s.Events.Publish(Event{Topic: TopicAuthChanged})
	}
	return s.issueUserToken(dni, name)
}

// Login authenticates a member by DNI and password. An unknown DNI is
// reported as such so the client can fall through to registration;
// only a wrong password reads as bad credentials.
func (s *AuthService) Login(ctx context.Context, dni, password string) (TokenGrant, error) {
	dni = strings.TrimSpace(dni)

	if !domain.ValidDNI(dni) {
		return TokenGrant{}, ErrInvalidDNI
	}

	user, err := s.Store.Users().GetByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenGrant{}, ErrUserNotFound
		}
		return TokenGrant{}, err
	}

	if cryptox.VerifySecret(password, user.PasswordHash) != nil {
		slogx.FromContext(ctx).Info("member login failed", slog.String("dni", dni))
		return TokenGrant{}, ErrInvalidCredentials
	}

	slogx.FromContext(ctx).Info("member login", slog.String("dni", dni))

	if s.Events != nil {
		s.Events.Publish(Event{Topic: TopicAuthChanged})
	}
	return s.issueUserToken(user.DNI, user.Name)
}

// Logout records the end of a session and notifies listeners. Tokens
// are stateless, so disposal is the client's job.
func (s *AuthService) Logout(ctx context.Context, tier domain.Tier, dni string) {
	slogx.FromContext(ctx).Info("session logout",
		slog.String("tier", string(tier)),
		slog.String("dni", dni),
	)
	if s.Events != nil {
		s.Events.Publish(Event{Topic: TopicAuthChanged})
	}
}

// AdminPIN exchanges an access PIN for an elevated session. The super
// admin PIN always works and additionally requires a one-time code once
// an authenticator is enrolled; the admin PIN is subject to the
// adminAccessEnabled switch so the super admin can lock helpers out.
func (s *AuthService) AdminPIN(ctx context.Context, pin, totpCode string) (TokenGrant, error) {
	log := slogx.FromContext(ctx)

	if s.SuperAdminPINHash != "" && cryptox.VerifySecret(pin, s.SuperAdminPINHash) == nil {
		if secret := s.Config.Get(ctx).AdminTOTPSecret; secret != "" {
			if totpCode == "" {
				return TokenGrant{}, ErrTOTPRequired
			}
			if !totp.Validate(totpCode, secret) {
				log.Warn("super admin TOTP rejected")
				return TokenGrant{}, ErrInvalidTOTPCode
			}
		}
		log.Info("super admin session issued")
		return s.issueAdminToken(domain.TierSuperAdmin)
	}

	if s.AdminPINHash != "" && cryptox.VerifySecret(pin, s.AdminPINHash) == nil {
		if !s.Config.Get(ctx).AdminAccessEnabled {
			return TokenGrant{}, ErrAdminDisabled
		}
		log.Info("admin session issued")
		return s.issueAdminToken(domain.TierAdmin)
	}

	log.Warn("admin PIN rejected")
	return TokenGrant{}, ErrInvalidCredentials
}

// AdminTierAllowed re-checks whether a previously issued admin session
// may still act. The super admin can flip adminAccessEnabled at any
// moment and existing admin tokens must go dark immediately.
func (s *AuthService) AdminTierAllowed(ctx context.Context, tier domain.Tier) bool {
	if tier == domain.TierAdmin {
		return s.Config.Get(ctx).AdminAccessEnabled
	}
	return true
}

// EnrollTOTP generates an authenticator secret for the super admin. The
// secret is held pending until VerifyTOTP confirms a live code.
func (s *AuthService) EnrollTOTP(ctx context.Context) (MFAEnrollment, error) {
	if s.Config.Get(ctx).AdminTOTPSecret != "" {
		return MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: "superadmin",
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return MFAEnrollment{}, fmt.Errorf("generate TOTP key: %w", err)
	}

	s.mu.Lock()
	s.pendingSecret = key.Secret()
	s.mu.Unlock()

	return MFAEnrollment{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
	}, nil
}

// VerifyTOTP activates a pending enrollment after a live code proves the
// authenticator was provisioned correctly.
func (s *AuthService) VerifyTOTP(ctx context.Context, code string) error {
	s.mu.Lock()
	secret := s.pendingSecret
	s.mu.Unlock()

	if secret == "" {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, secret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Config.SetTOTPSecret(ctx, secret); err != nil {
		return err
	}

	s.mu.Lock()
	s.pendingSecret = ""
	s.mu.Unlock()

	slogx.FromContext(ctx).Info("super admin TOTP enrolled")
	return nil
}

func (s *AuthService) issueUserToken(dni, name string) (TokenGrant, error) {
	claims := jwtx.NewSessionClaims(dni, string(domain.TierUser), name, s.Issuer, s.UserTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("sign session token: %w", err)
	}
	return TokenGrant{
		Token:     token,
		ExpiresIn: int(s.UserTTL.Seconds()),
		Tier:      domain.TierUser,
		Name:      name,
	}, nil
}

func (s *AuthService) issueAdminToken(tier domain.Tier) (TokenGrant, error) {
	claims := jwtx.NewSessionClaims(string(tier), string(tier), "", s.Issuer, s.AdminTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("sign session token: %w", err)
	}
	return TokenGrant{
		Token:     token,
		ExpiresIn: int(s.AdminTTL.Seconds()),
		Tier:      tier,
	}, nil
}
