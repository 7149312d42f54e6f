package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/reserva/internal/domains/user/dto"
	"github.com/savioruz/reserva/internal/domains/user/repository"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/jwt"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/postgres"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req dto.UserRegisterRequest) (res dto.UserResponse, err error)
	Login(ctx context.Context, req dto.UserLoginRequest) (res dto.UserLoginResponse, err error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (res dto.UserLoginResponse, err error)
}

const identifier = "service - auth - %s"

var errInvalidCredentials = failure.Unauthorized("invalid email or password")

type authService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	jwt    *jwt.JWT
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, j *jwt.JWT, l logger.Interface) AuthService {
	return &authService{
		db:     db,
		repo:   r,
		jwt:    j,
		logger: l,
	}
}

func (s *authService) Register(ctx context.Context, req dto.UserRegisterRequest) (res dto.UserResponse, err error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "register - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "register - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	_, err = s.repo.GetUserByEmail(ctx, tx, email)
	if err == nil {
		return res, failure.Conflict("user already exists")
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error(identifier, "register - failed to get user by email: "+err.Error())

		return res, failure.InternalError(err)
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(identifier, "register - failed to hash password: "+err.Error())

		return res, failure.InternalError(err)
	}

	user, err := s.repo.CreateUser(ctx, tx, repository.CreateUserParams{
		Email:    email,
		Password: string(password),
		FullName: strings.TrimSpace(req.Name),
		Phone:    helper.PgString(req.Phone),
		Level:    constant.UserRoleUser,
	})
	if err != nil {
		if postgres.IsConstraintViolation(err) {
			return res, failure.Conflict("user already exists")
		}

		s.logger.Error(identifier, "register - failed to create user: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "register - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	return dto.UserResponse{}.FromModel(user), nil
}

func (s *authService) Login(ctx context.Context, req dto.UserLoginRequest) (res dto.UserLoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, s.db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, errInvalidCredentials
		}

		s.logger.Error(identifier, "login - failed to get user by email: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return res, errInvalidCredentials
	}

	if _, err = s.repo.UpdateLastLogin(ctx, s.db, user.ID); err != nil {
		s.logger.Error(identifier, "login - failed to update last login: "+err.Error())

		return res, failure.InternalError(err)
	}

	return s.issue(user)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (res dto.UserLoginResponse, err error) {
	claims, err := s.jwt.ValidateToken(req.RefreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token")
	}

	user, err := s.repo.GetUserByID(ctx, s.db, helper.PgUUID(claims.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.Unauthorized("invalid refresh token")
		}

		s.logger.Error(identifier, "refresh - failed to get user: "+err.Error())

		return res, failure.InternalError(err)
	}

	return s.issue(user)
}

func (s *authService) issue(user repository.User) (res dto.UserLoginResponse, err error) {
	res.AccessToken, err = s.jwt.GenerateAccessToken(user.ID.String(), user.Email, user.Level)
	if err != nil {
		s.logger.Error(identifier, "issue - failed to generate access token: "+err.Error())

		return res, failure.InternalError(err)
	}

	res.RefreshToken, err = s.jwt.GenerateRefreshToken(user.ID.String(), user.Email, user.Level)
	if err != nil {
		s.logger.Error(identifier, "issue - failed to generate refresh token: "+err.Error())

		return res, failure.InternalError(err)
	}

	res.User = dto.UserResponse{}.FromModel(user)

	return res, nil
}
