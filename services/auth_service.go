package services

import (
	"carehub/database"
	"carehub/models"
	"carehub/tokens"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// AuthService handles registration, login and logout
type AuthService struct {
	users   UserRepository
	issuer  TokenIssuer
	revoker TokenRevoker
	google  GoogleVerifier
}

// NewAuthService creates a new auth service. google may be nil to disable Google sign-in.
func NewAuthService(users UserRepository, issuer TokenIssuer, revoker TokenRevoker, google GoogleVerifier) *AuthService {
	return &AuthService{
		users:   users,
		issuer:  issuer,
		revoker: revoker,
		google:  google,
	}
}

// AuthResult is returned by every successful sign-in
type AuthResult struct {
	User   *models.User
	Token  string
	Claims *tokens.Claims
}

// Register creates a regular user account and signs it in
func (as *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*AuthResult, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Status:       models.UserStatusActive,
	}
	if err := as.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return as.issue(user)
}

// Login checks the password before the account status so that suspension
// is only revealed to someone who knows the credentials.
func (as *AuthService) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	user, err := as.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := checkPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended {
		return nil, ErrAccountSuspended
	}

	return as.issue(user)
}

// LoginWithGoogle signs in with a Google ID token. The account is found by
// Google subject, then by verified email, and is created with the user role otherwise.
func (as *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	if as.google == nil {
		return nil, ErrGoogleLoginDisabled
	}

	identity, err := as.google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := as.users.GetUserByGoogleSub(ctx, identity.Subject)
	if err != nil {
		return nil, err
	}

	if user == nil && identity.Email != "" && identity.EmailVerified {
		user, err = as.users.GetUserByEmail(ctx, identity.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			if err := as.users.LinkGoogleAccount(ctx, user.ID, identity.Subject); err != nil {
				return nil, err
			}
			user.GoogleSub = identity.Subject
		}
	}

	if user == nil {
		user, err = as.createGoogleUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	}

	if user.Status == models.UserStatusSuspended {
		return nil, ErrAccountSuspended
	}

	return as.issue(user)
}

// Logout revokes the token described by claims until it would have expired
func (as *AuthService) Logout(claims *tokens.Claims) {
	if claims == nil || claims.RegisteredClaims.ID == "" || claims.ExpiresAt == nil {
		return
	}
	as.revoker.Revoke(claims.RegisteredClaims.ID, claims.ExpiresAt.Time)
}

func (as *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, claims, err := as.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{User: user, Token: token, Claims: claims}, nil
}

var usernameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_.]+`)

const maxUsernameAttempts = 20

func (as *AuthService) createGoogleUser(ctx context.Context, identity *GoogleIdentity) (*models.User, error) {
	base := usernameBase(identity)

	for i := 0; i < maxUsernameAttempts; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s%d", base, i)
		}

		user := &models.User{
			Username:  candidate,
			Email:     identity.Email,
			FullName:  identity.Name,
			GoogleSub: identity.Subject,
			Role:      models.RoleUser,
			Status:    models.UserStatusActive,
		}
		err := as.users.CreateUser(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, database.ErrUniqueViolation) {
			return nil, err
		}

		// A concurrent login may have created the account for this subject.
		existing, err := as.users.GetUserByGoogleSub(ctx, identity.Subject)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	return nil, fmt.Errorf("could not allocate a username for %q", base)
}

func usernameBase(identity *GoogleIdentity) string {
	base := identity.Email
	if at := strings.IndexByte(base, '@'); at >= 0 {
		base = base[:at]
	}
	base = usernameUnsafe.ReplaceAllString(base, "")
	if len(base) > 28 {
		base = base[:28]
	}
	if len(base) < 3 {
		base = "user" + base
	}
	return base
}
