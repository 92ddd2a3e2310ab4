package service

import (
	"context"

	"github.com/Badmus2018/gogdripsv1/config"
	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/internal/repository"
	"github.com/Badmus2018/gogdripsv1/pkg/errs"
	"github.com/Badmus2018/gogdripsv1/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error)
}

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateNewUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID, user.Name, user.ExternalID, user.Role, s.config.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.UserID = user.ID

	return
}
