package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogapp/cmd/app"
	"blogapp/internal/config"
	handlers "blogapp/internal/handler"
	"blogapp/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.AccessSecretKey == "" || cfg.RefreshSecretKey == "" {
		log.Fatal("ACCESS_SECRET_KEY и REFRESH_SECRET_KEY не установлены в .env файле")
	}

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, store, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/adduser", handler.AddUser).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/token/refresh", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/file/upload", handler.UploadFile).Methods(http.MethodPost)
	router.HandleFunc("/file/{filename}", handler.DownloadFile).Methods(http.MethodGet)

	router.HandleFunc("/createpost", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/comments/{postId}", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/comments/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
