// Package services contains the backend's business logic. AccountService
// registers identities and signs them in; RowService fronts the generic row
// API; OrphanService records and exports orphaned identities.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/cryptox"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/server/auth"
	"github.com/dmitrijs2005/ttioportal/internal/server/config"
	"github.com/dmitrijs2005/ttioportal/internal/server/models"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// MinPasswordLength is the shortest password CreateAccount accepts.
const MinPasswordLength = 6

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrWeakPassword = errors.New("weak password")
)

// SignInResult is a successful sign-in.
type SignInResult struct {
	UserID      string
	Email       string
	Role        string
	AccessToken string
}

type AccountService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	log                         logging.Logger

	// dummyDigest is verified against when the email is unknown so that
	// unknown and known emails cost the same.
	dummyDigest string
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *AccountService {
	dummy, _ := cryptox.HashPassword(common.GenerateRandByteArray(16))
	return &AccountService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		log:                         l.With("module", "accounts"),
		dummyDigest:                 dummy,
	}
}

// canonicalEmail folds compatibility forms (full-width letters and the like)
// and case, so that one mailbox maps to one account.
func canonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(email)))
}

func normalizeEmail(email string) (string, error) {
	email = canonicalEmail(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.IndexByte(email, '@'):], ".") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// CreateAccount registers email with an argon2id digest of password and the
// given metadata. It returns the new account id.
func (s *AccountService) CreateAccount(ctx context.Context, email, password string, metadata map[string]any) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}

	digest, err := cryptox.HashPassword([]byte(password))
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	if metadata == nil {
		metadata = map[string]any{}
	}
	md, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("%w: metadata: %v", common.ErrorValidation, err)
	}

	acc := &models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: digest,
		Metadata:     md,
	}

	if _, err := s.repomanager.Accounts(s.db).Create(ctx, acc); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", err
		}
		s.log.Error(ctx, "account create failed", "error", err)
		return "", common.ErrorInternal
	}

	s.log.Info(ctx, "account created", "user_id", acc.ID)
	return acc.ID, nil
}

// SignIn verifies the credential pair and mints an access token. Unknown
// email and wrong password both yield common.ErrorUnauthorized.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email = canonicalEmail(email)

	acc, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = cryptox.VerifyPassword(s.dummyDigest, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		s.log.Error(ctx, "account lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword(acc.PasswordHash, []byte(password))
	if err != nil {
		s.log.Error(ctx, "stored digest unreadable", "user_id", acc.ID, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	role := string(acc.Role())
	token, err := auth.GenerateToken(auth.Identity{UserID: acc.ID, Email: acc.Email, Role: role},
		s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &SignInResult{UserID: acc.ID, Email: acc.Email, Role: role, AccessToken: token}, nil
}
