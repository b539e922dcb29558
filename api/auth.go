package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"recipebook/api/openapi"
	"recipebook/models"
	"recipebook/repository"
)

// Register a new account
// (POST /auth/register)
func (impl *ServerImpl) PostAuthRegister(ctx context.Context, request openapi.PostAuthRegisterRequestObject) (openapi.PostAuthRegisterResponseObject, error) {
	const op = "PostAuthRegister"

	name := strings.TrimSpace(request.Body.Name)
	email := strings.TrimSpace(request.Body.Email)
	if name == "" || email == "" {
		return openapi.PostAuthRegister400JSONResponse{Message: "name and email should not be empty"}, nil
	}

	// 檢查 email 是否已被註冊
	_, err := impl.users.FindByEmail(ctx, email)
	if err == nil {
		return openapi.PostAuthRegister400JSONResponse{Message: "Email already exists"}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("[%s] Fail to find user by email, err=%w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to hash password, err=%w", op, err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	err = impl.users.Create(ctx, &user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return openapi.PostAuthRegister400JSONResponse{Message: "Email already exists"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create user, err=%w", op, err)
	}
	return openapi.PostAuthRegister201JSONResponse(toUser(&user)), nil
}

// Sign in with email and password
// (POST /auth/login)
func (impl *ServerImpl) PostAuthLogin(ctx context.Context, request openapi.PostAuthLoginRequestObject) (openapi.PostAuthLoginResponseObject, error) {
	const op = "PostAuthLogin"

	user, err := impl.users.FindByEmail(ctx, strings.TrimSpace(request.Body.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.PostAuthLogin401JSONResponse{Message: "Invalid email or password"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to find user by email, err=%w", op, err)
	}

	// 比對密碼
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Body.Password)); err != nil {
		return openapi.PostAuthLogin401JSONResponse{Message: "Invalid email or password"}, nil
	}

	accessToken, err := impl.tokens.Issue(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to issue access token, err=%w", op, err)
	}
	return openapi.PostAuthLogin200JSONResponse{AccessToken: accessToken}, nil
}

// Get the signed in user
// (GET /auth/me)
func (impl *ServerImpl) GetAuthMe(ctx context.Context, request openapi.GetAuthMeRequestObject) (openapi.GetAuthMeResponseObject, error) {
	claims := currentClaims(ctx)
	return openapi.GetAuthMe200JSONResponse{
		ID:    currentUserID(ctx),
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}
