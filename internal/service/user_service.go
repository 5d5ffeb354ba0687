package service

import (
	"context"
	"time"

	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/repository"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/grazeweb/my-eshop-app/pkg/utils"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (err error) {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return errs.ErrClient
	}

	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if user.ID != 0 {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	userEnt := domain.User{
		Name:           data.Name,
		Email:          data.Email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return respPayload, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID, user.Name, user.ExternalID, user.IsAdmin, s.config.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.UserID = user.ID

	return
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, externalID string) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByExternalID(ctx, externalID)
	if err != nil {
		return
	}

	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		ExternalID:  user.ExternalID,
		AddressLine: user.AddressLine,
		AddressCity: user.AddressCity,
		AddressZip:  user.AddressZip,
	}, nil
}

// SaveAddress stores the checkout address on the profile when the shopper
// opts in, so the next checkout can prefill it.
func (s *UserServiceImpl) SaveAddress(ctx context.Context, req dto.AddressRequest) (err error) {
	user, err := s.repo.GetUserByExternalID(ctx, req.ExternalID)
	if err != nil {
		return
	}

	user.AddressLine = &req.Address
	user.AddressCity = &req.City
	user.AddressZip = &req.Zip
	user.UpdatedAt = time.Now().Unix()

	return s.repo.UpdateUserAddress(ctx, user)
}

func (s *UserServiceImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error) {
	users, err := s.repo.GetUsers(ctx, filter)
	if err != nil {
		return
	}

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return
	}

	records := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		records = append(records, dto.UserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			ExternalID: user.ExternalID,
		})
	}

	resp.Metadata = response.PaginationMetadata{
		TotalCount: count,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	resp.Records = records

	return
}
