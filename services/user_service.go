// Use-case layer for users; orchestrates business rules, not HTTP or
// Mongo details. The login flow owns the failed-attempt lockout guard.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
	"github.com/MarKarl30/UTS-BackEnd-Prog/repositories"
	"github.com/MarKarl30/UTS-BackEnd-Prog/utils"
	"github.com/MarKarl30/UTS-BackEnd-Prog/utils/redislog"
)

// UserService lists the user use-cases handlers can call.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error)
	GetUser(ctx context.Context, id string) (*models.PublicUser, error)
	ListUsers(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicUser], error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.PublicUser, error)
	ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	repo repositories.UserRepository
	log  *redislog.Logger // nil-safe; audit events only
}

// NewUserService constructs the service with its dependencies injected.
func NewUserService(repo repositories.UserRepository, rlog *redislog.Logger) UserService {
	return &userService{repo: repo, log: rlog}
}

// dummyHash is a well-formed bcrypt digest used to burn a comparison when
// the email is unknown, so a missing account costs the same work as a
// wrong password and the response shape never differs.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Default sort field for user lists.
const userDefaultSort = "email"

func userSearchFields(u models.User) []string {
	return []string{u.Name, u.Email}
}

func userSortKey(u models.User, field string) string {
	switch field {
	case "name":
		return u.Name
	case "email":
		return u.Email
	default:
		return "" // unknown field sorts everything equal, input order kept
	}
}

// Register creates a new user with a hashed password and zeroed lockout
// counters.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	// Pre-check uniqueness for a friendly error; the unique index is the
	// real guarantee under concurrent registers.
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		s.log.Warn("register email exists", map[string]string{"email": req.Email})
		return nil, core.ErrConflict
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("register hash error", map[string]string{"email": req.Email, "err": err.Error()})
		return nil, err
	}

	u := &models.User{
		Name:     core.NormalizeName(req.Name),
		Email:    req.Email,
		Password: hash,
		// LoginAttempt 0 and zero LastAttempt: lockout state starts open.
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrConflict) {
			return nil, core.ErrConflict
		}
		s.log.Error("register db create error", map[string]string{"email": req.Email, "err": err.Error()})
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("register success", map[string]string{"user_id": u.ID.Hex(), "email": u.Email})
	return u, nil
}

// Login runs the lockout guard, verifies credentials and issues a JWT.
//
// Per-attempt state lives on the user document; every transition below is
// one atomic update, so concurrent attempts cannot lose an increment.
func (s *userService) Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			// Unknown account: same bcrypt work, same error as a wrong
			// password, so responses don't reveal which emails exist.
			utils.CheckPassword(dummyHash, req.Password)
			s.log.Warn("login unknown email", map[string]string{"email": req.Email})
			return "", core.ErrInvalidCredentials
		}
		return "", err
	}

	now := time.Now()
	switch dec := core.EvaluateLockout(u.LoginAttempt, u.LastAttempt, now); dec.State {
	case core.LockoutActive:
		// Reject without touching the password or the counters.
		s.log.Warn("login locked out", map[string]string{
			"email":     req.Email,
			"remaining": fmt.Sprintf("%dm", dec.RemainingMinutes),
		})
		return "", &core.LockedOutError{RemainingMinutes: dec.RemainingMinutes}
	case core.LockoutExpired:
		// Cooldown has passed; zero the counter before checking anything.
		if err := s.repo.ResetLoginAttempt(ctx, req.Email, now); err != nil {
			return "", err
		}
		u.LoginAttempt = 0
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		if err := s.repo.IncrementLoginAttempt(ctx, req.Email, now); err != nil {
			return "", err
		}
		s.log.Warn("login wrong password", map[string]string{"email": req.Email})
		return "", core.ErrInvalidCredentials
	}

	// Success: counter back to zero, attempt time stamped.
	if err := s.repo.ResetLoginAttempt(ctx, req.Email, now); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub": u.ID.Hex(),
		"exp": now.Add(exp).Unix(),
		"iat": now.Unix(),
		"eml": u.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		s.log.Error("login token sign error", map[string]string{"email": u.Email, "err": err.Error()})
		return "", err
	}

	s.log.Info("login success", map[string]string{"user_id": u.ID.Hex(), "email": u.Email})
	return signed, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.PublicUser, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}

// ListUsers fetches the whole collection and runs the shared query
// pipeline over it.
func (s *userService) ListUsers(ctx context.Context, q models.ListQuery) (*core.QueryResult[models.PublicUser], error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("list users db error", map[string]string{"err": err.Error()})
		return nil, err
	}
	return core.RunQuery(users, q.ToQueryRequest(userDefaultSort), userSearchFields, userSortKey, models.User.Public)
}

// UpdateUser applies partial updates (name and/or email).
func (s *userService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.PublicUser, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = core.NormalizeName(*req.Name)
	}
	if req.Email != nil && *req.Email != u.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			s.log.Warn("update email exists", map[string]string{"email": *req.Email})
			return nil, core.ErrConflict
		}
		u.Email = *req.Email
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, core.ErrConflict) || errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		s.log.Error("update user db error", map[string]string{"user_id": id, "err": err.Error()})
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info("update user success", map[string]string{"user_id": id})
	pub := u.Public()
	return &pub, nil
}

// ChangePassword verifies the old password before storing the new hash.
func (s *userService) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(u.Password, req.OldPassword) {
		s.log.Warn("change password wrong old password", map[string]string{"user_id": id})
		return core.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	u.Password = hash

	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Error("change password db error", map[string]string{"user_id": id, "err": err.Error()})
		return fmt.Errorf("failed to change password: %w", err)
	}
	s.log.Info("change password success", map[string]string{"user_id": id})
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return err
		}
		s.log.Error("delete user db error", map[string]string{"user_id": id, "err": err.Error()})
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.log.Info("delete user success", map[string]string{"user_id": id})
	return nil
}
