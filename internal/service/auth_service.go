package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogapp/internal/config"
	"blogapp/internal/models"
	"blogapp/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	ValidateAccessToken(tokenString string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cfg       *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// Register создает пользователя, токены при регистрации не выдаются.
func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByUserName(ctx, req.UserName)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("пользователь %s: %w", req.UserName, repository.ErrDuplicate)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("ошибка при проверке имени пользователя: %w", err)
	}

	user := &models.User{
		UserName: req.UserName,
		Name:     req.Name,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login не различает неизвестного пользователя и неверный пароль:
// наружу в обоих случаях уходит одна и та же ошибка.
func (s *authService) Login(ctx context.Context, userName, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, userName, password)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, refreshTokenExpiry, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	// одна запись на каждый вход, параллельные сессии не вытесняют друг друга
	record := &models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.UserID,
		ExpiresAt: refreshTokenExpiry,
	}

	err = s.tokenRepo.Save(ctx, record)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка сохранения refresh token: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

// RefreshTokens обменивает действующий refresh token на новую пару токенов.
// Старая запись удаляется, заодно подчищаются просроченные.
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	_, err := s.parseToken(refreshToken, s.cfg.RefreshSecretKey)
	if err != nil {
		return nil, "", "", ErrInvalidToken
	}

	record, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, "", "", ErrInvalidToken
	}

	if time.Now().After(record.ExpiresAt) {
		return nil, "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetUserByID(ctx, record.UserID)
	if err != nil {
		return nil, "", "", ErrInvalidToken
	}

	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, "", "", fmt.Errorf("ошибка при отзыве refresh token: %w", err)
	}

	if deleted, err := s.tokenRepo.DeleteExpired(ctx, time.Now()); err != nil {
		log.Printf("Не удалось удалить просроченные refresh token: %v", err)
	} else if deleted > 0 {
		log.Printf("Удалено просроченных refresh token: %d", deleted)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	newRefreshToken, refreshTokenExpiry, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	record = &models.RefreshToken{
		Token:     newRefreshToken,
		UserID:    user.UserID,
		ExpiresAt: refreshTokenExpiry,
	}

	if err := s.tokenRepo.Save(ctx, record); err != nil {
		return nil, "", "", fmt.Errorf("ошибка сохранения refresh token: %w", err)
	}

	return user, accessToken, newRefreshToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.UserID,
		"username": user.UserName,
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.AccessSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// generateRefreshToken подписывает refresh token отдельным секретом:
// утечка ключа access-токенов не дает подделывать refresh-токены.
func (s *authService) generateRefreshToken(user *models.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenDuration)

	claims := jwt.MapClaims{
		"userId":   user.UserID,
		"username": user.UserName,
		"exp":      expiryTime.Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.RefreshSecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, expiryTime, nil
}

func (s *authService) parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	return claims, nil
}

// ValidateAccessToken проверяет подпись и срок действия access-токена и
// возвращает вшитую в него личность. Любая причина отказа неотличима
// для вызывающего.
func (s *authService) ValidateAccessToken(tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString, s.cfg.AccessSecretKey)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, ok1 := claims["userId"].(float64)
	userName, ok2 := claims["username"].(string)
	if !ok1 || !ok2 {
		return nil, ErrInvalidToken
	}

	user := &models.User{
		UserID:   int(userID),
		UserName: userName,
	}

	return user, nil
}
