package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	handlers "blogapp/internal/handler"
	"blogapp/internal/service"
)

type Middleware func(http.Handler) http.Handler

// AuthMiddleware проверяет access-токен и кладет личность в контекст.
// Любой отсутствующий, поддельный или просроченный токен отклоняется
// одинаково, без уточнения причины.
func AuthMiddleware(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// preflight-запросы обрабатывает CORS middleware
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// Публичные эндпоинты
			publicPaths := []string{
				"/adduser",
				"/login",
				"/token/refresh",
				"/health",
			}

			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			// скачивание файлов открыто: картинки запрашивает тег <img>,
			// который не умеет передавать заголовок Authorization
			if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/file/") {
				next.ServeHTTP(w, r)
				return
			}

			// Извлекаем токен из заголовка
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			// Проверяем формат "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			user, err := authService.ValidateAccessToken(parts[1])
			if err != nil {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			// Добавляем данные пользователя в контекст
			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", user.UserID)
			ctx = context.WithValue(ctx, "username", user.UserName)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s за %s", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
