package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

// ユーザー・店舗のプロフィール登録。
// 認証は外部コラボレータの責務で、ここでは数値IDを信用して扱うだけ。
type ProfileUsecase struct {
	users          repo.UserRepository
	establishments repo.EstablishmentRepository
}

func NewProfileUsecase(users repo.UserRepository, establishments repo.EstablishmentRepository) *ProfileUsecase {
	return &ProfileUsecase{users: users, establishments: establishments}
}

type CreateUserInput struct {
	Name  string
	Email string
	Type  string
	Phone string
}

func (u *ProfileUsecase) CreateUser(ctx context.Context, in CreateUserInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewServiceError(ErrInvalidInput, "name required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return 0, NewServiceError(ErrInvalidInput, "email required")
	}

	userType := model.UserType(strings.ToUpper(strings.TrimSpace(in.Type)))
	switch userType {
	case model.UserTypeConsumer, model.UserTypeEstablishment:
		// OK
	default:
		return 0, NewServiceError(ErrInvalidInput, "invalid user type")
	}

	id, err := u.users.Create(ctx, model.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Type:      userType,
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: time.Now(),
	})
	if err == repo.ErrConflict {
		return 0, NewServiceError(ErrInvalidInput, "email already registered")
	}
	if err != nil {
		return 0, NewServiceError(ErrInternal, "db error")
	}
	return id, nil
}

type CreateEstablishmentInput struct {
	TradeName string
	CNPJ      string
	Address   string
	Latitude  float64
	Longitude float64
}

func (u *ProfileUsecase) CreateEstablishment(ctx context.Context, userID int64, in CreateEstablishmentInput) (int64, error) {
	if userID <= 0 {
		return 0, NewServiceError(ErrInvalidInput, "invalid user id")
	}
	if strings.TrimSpace(in.TradeName) == "" {
		return 0, NewServiceError(ErrInvalidInput, "trade name required")
	}

	usr, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return 0, NewServiceError(ErrInvalidInput, "user not found")
	}
	if err != nil {
		return 0, NewServiceError(ErrInternal, "db error")
	}
	if usr.Type != model.UserTypeEstablishment {
		return 0, NewServiceError(ErrInvalidInput, "user is not an establishment")
	}

	id, err := u.establishments.Create(ctx, model.Establishment{
		UserID:    userID,
		TradeName: strings.TrimSpace(in.TradeName),
		CNPJ:      strings.TrimSpace(in.CNPJ),
		Address:   strings.TrimSpace(in.Address),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	})
	if err == repo.ErrConflict {
		return 0, NewServiceError(ErrInvalidInput, "establishment already exists")
	}
	if err != nil {
		return 0, NewServiceError(ErrInternal, "db error")
	}
	return id, nil
}
