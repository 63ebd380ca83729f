package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"errors"
	"fmt"

	"github.com/Lewis3ai/INFOA1test/models"
	"github.com/Lewis3ai/INFOA1test/repositories"
	"github.com/Lewis3ai/INFOA1test/utils"
	"github.com/Lewis3ai/INFOA1test/utils/redislog"
)

// Typed domain errors; handlers map these to status codes.
var (
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService covers signup, login, and identity resolution for the
// auth middleware.
type AuthService interface {
	Signup(req models.SignupRequest) (*models.User, error)
	Login(req models.LoginRequest) (string, error)
	// Resolve maps a verified token identity back to a live User row.
	// A deleted user holding a stale token resolves to an error.
	Resolve(username string) (*models.User, error)
}

type authService struct {
	repo   repositories.UserRepository
	tokens *utils.TokenManager
	log    *redislog.Logger
}

func NewAuthService(repo repositories.UserRepository, tokens *utils.TokenManager, rlog *redislog.Logger) AuthService {
	return &authService{repo: repo, tokens: tokens, log: rlog}
}

// Signup hashes the password and inserts the row. Uniqueness is NOT
// pre-checked: the insert goes straight to the database and a
// constraint violation comes back as ErrDuplicateUser. Two concurrent
// signups for the same username can both reach the insert; exactly one
// commits.
func (s *authService) Signup(req models.SignupRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("signup hash error", map[string]string{"username": req.Username, "err": err.Error()})
		return nil, err
	}

	u := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}

	if err := s.repo.Create(u); err != nil {
		if repositories.IsDuplicate(err) {
			s.log.Warn("signup duplicate", map[string]string{"username": req.Username})
			return nil, ErrDuplicateUser
		}
		s.log.Error("signup db error", map[string]string{"username": req.Username, "err": err.Error()})
		return nil, err
	}

	s.log.Info("signup success", map[string]string{"user_id": fmt.Sprint(u.ID), "username": u.Username})
	return u, nil
}

// Login validates credentials and issues a signed token. Any failure
// (unknown user, wrong password) collapses into ErrInvalidCredentials
// so nothing leaks about which part was wrong.
func (s *authService) Login(req models.LoginRequest) (string, error) {
	u, err := s.repo.FindByUsername(req.Username)
	if err != nil {
		s.log.Warn("login user not found", map[string]string{"username": req.Username})
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		s.log.Warn("login wrong password", map[string]string{"username": req.Username})
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Username)
	if err != nil {
		s.log.Error("login token sign error", map[string]string{"username": u.Username, "err": err.Error()})
		return "", err
	}

	s.log.Info("login success", map[string]string{"user_id": fmt.Sprint(u.ID), "username": u.Username})
	return token, nil
}

func (s *authService) Resolve(username string) (*models.User, error) {
	return s.repo.FindByUsername(username)
}
