package services

import (
	"context"
	"time"

	"bcspace_server/database"
	"bcspace_server/lib"
	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type AuthService struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService) *AuthService {
	return &AuthService{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// Login verifies admin credentials and returns a signed access token.
// Failures are indistinguishable to the caller: unknown email and wrong
// password both yield ErrInvalidCredentials.
func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (string, *tables.AdminUser, error) {
	user, err := database.Query[tables.AdminUser](as.db).
		Where("email", req.Email).
		First(ctx)
	if err != nil {
		return "", nil, lib.MapPgError(err)
	}
	if user == nil {
		return "", nil, lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		as.logger.Warn("Failed admin login attempt", gecho.Field("email", req.Email))
		return "", nil, lib.ErrInvalidCredentials
	}

	token, err := lib.SignAccessToken(user.ID, user.Email, user.Role, as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	if _, err := database.Query[tables.AdminUser](as.db).
		Where("id", user.ID).
		Update(ctx, map[string]any{"last_login_at": now}); err != nil {
		as.logger.Warn("Failed to record login time", gecho.Field("error", err))
	}
	user.LastLoginAt = &now

	as.logger.Info("Admin logged in", gecho.Field("email", user.Email))
	return token, user, nil
}

// Logout blacklists the session token until it would expire on its own.
func (as *AuthService) Logout(claims *structs.AuthClaims) error {
	return as.cacheService.BlacklistToken(claims.Jti, claims.Exp)
}

// VerifyClaims checks a parsed token against the blacklist.
func (as *AuthService) VerifyClaims(claims *structs.AuthClaims) error {
	blacklisted, err := as.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		// Redis being down must not lock admins out; the token signature
		// and expiry were already verified.
		as.logger.Warn("Token blacklist check failed", gecho.Field("error", err))
		return nil
	}
	if blacklisted {
		return lib.ErrInvalidToken
	}
	return nil
}
