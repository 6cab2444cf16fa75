/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"time"

	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service used for the user registration and login phases
type AuthService interface {
	Register(username, password string) (*entity.User, error) // Tries to create a new user in the system, returning it if successful
	Login(username, password string) (*entity.User, error)    // Tries to authenticate a user via its credentials, returning the user entity if successful
}

type authService struct {
	userRepository repository.UserRepository // Repository for users
	logger         applog.Logger             // Logs a format string
}

func NewAuthService(userRepo repository.UserRepository, logger applog.Logger) AuthService {
	return &authService{
		userRepository: userRepo,
		logger:         logger,
	}
}

func (a *authService) Register(username, password string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.logger.Logf("Could not calculate hash {%v}", err)
		return nil, err
	}

	userUUID := uuid.New().String()
	u := &entity.User{
		UUID:      userUUID,
		Username:  username,
		Status:    entity.StatusOffline,
		CreatedAt: time.Now(),

		Secret: entity.UserSecret{
			UserUUID: userUUID,
			Hash:     string(hash),
		},
	}
	if err := a.userRepository.Create(u); err != nil {
		return nil, err
	}
	a.logger.Logf("User %s registered as %s", username, userUUID)
	return u, nil
}

func (a *authService) Login(username, password string) (*entity.User, error) {
	u, err := a.userRepository.GetForLogin(username)
	if err != nil {
		return nil, fmt.Errorf("User was not found {%s}", err.Error())
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.Secret.Hash), []byte(password)); err != nil {
		return nil, fmt.Errorf("Wrong credentials")
	}
	return u, nil
}
