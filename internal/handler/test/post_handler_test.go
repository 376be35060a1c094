package test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogapp/internal/models"
	"blogapp/internal/repository"
	"blogapp/internal/service"
)

func TestCreatePostHandler_Success(t *testing.T) {
	handler := createTestHandler()
	mockPostService := handler.PostService.(*MockPostService)

	// владелец берется из токена, а не из тела запроса
	mockPostService.On("CreatePost", mock.Anything, repository.CreatePostRequest{
		Title:       "Hello",
		Description: "first post",
		Picture:     "",
		Username:    "alice",
		Categories:  "Tech",
	}).Return(&models.Post{
		PostID:      1,
		Title:       "Hello",
		Description: "first post",
		Username:    "alice",
		Categories:  "Tech",
	}, nil)

	req := postJSON("/createpost", map[string]interface{}{
		"title":       "Hello",
		"description": "first post",
		"username":    "mallory",
		"categories":  "Tech",
	})
	req = withIdentity(req, 1, "alice")
	rr := httptest.NewRecorder()

	handler.CreatePost(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusCreated)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(1), response["postId"])

	mockPostService.AssertExpectations(t)
}

func TestCreatePostHandler_MissingTitle(t *testing.T) {
	handler := createTestHandler()

	req := postJSON("/createpost", map[string]interface{}{
		"description": "no title",
	})
	req = withIdentity(req, 1, "alice")
	rr := httptest.NewRecorder()

	handler.CreatePost(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Missing required fields")
}

func TestGetPostsHandler(t *testing.T) {
	t.Run("Фильтр по категории пробрасывается в репозиторий", func(t *testing.T) {
		handler := createTestHandler()
		mockPostRepo := handler.PostRepo.(*MockPostRepository)

		mockPostRepo.On("GetAll", mock.Anything, "Tech").Return([]models.Post{
			{PostID: 1, Title: "Hello", Username: "alice", Categories: "Tech", CreatedAt: time.Now()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/posts?category=Tech", nil)
		rr := httptest.NewRecorder()

		handler.GetPosts(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Hello")
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Без категории возвращаются все посты", func(t *testing.T) {
		handler := createTestHandler()
		mockPostRepo := handler.PostRepo.(*MockPostRepository)

		mockPostRepo.On("GetAll", mock.Anything, "").Return([]models.Post{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rr := httptest.NewRecorder()

		handler.GetPosts(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestGetPostHandler(t *testing.T) {
	t.Run("Успешное получение поста", func(t *testing.T) {
		handler := createTestHandler()
		mockPostRepo := handler.PostRepo.(*MockPostRepository)

		mockPostRepo.On("GetByID", mock.Anything, 1).Return(&models.Post{
			PostID:     1,
			Title:      "Hello",
			Username:   "alice",
			Categories: "Tech",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.GetPost(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"title":"Hello"`)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		handler := createTestHandler()
		mockPostRepo := handler.PostRepo.(*MockPostRepository)

		mockPostRepo.On("GetByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/posts/99", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		handler.GetPost(rr, req)

		assertJSONError(t, rr, http.StatusNotFound, "Post not found")
	})

	t.Run("Нечисловой id", func(t *testing.T) {
		handler := createTestHandler()

		req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handler.GetPost(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest, "Invalid post id")
	})
}

func TestUpdatePostHandler(t *testing.T) {
	t.Run("Частичное обновление передает только присланные поля", func(t *testing.T) {
		handler := createTestHandler()
		mockPostService := handler.PostService.(*MockPostService)

		mockPostService.On("UpdatePost", mock.Anything, 1,
			map[string]interface{}{"title": "New title"}, "alice").Return(nil)

		req := postJSON("/posts/1", map[string]interface{}{"title": "New title"})
		req.Method = http.MethodPut
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		req = withIdentity(req, 1, "alice")
		rr := httptest.NewRecorder()

		handler.UpdatePost(rr, req)

		response := assertJSONSuccess(t, rr, http.StatusOK)
		assert.Equal(t, true, response["success"])
		mockPostService.AssertExpectations(t)
	})

	t.Run("Чужой пост обновить нельзя", func(t *testing.T) {
		handler := createTestHandler()
		mockPostService := handler.PostService.(*MockPostService)

		mockPostService.On("UpdatePost", mock.Anything, 1, mock.Anything, "mallory").
			Return(service.ErrForbidden)

		req := postJSON("/posts/1", map[string]interface{}{"title": "Hacked"})
		req.Method = http.MethodPut
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		req = withIdentity(req, 2, "mallory")
		rr := httptest.NewRecorder()

		handler.UpdatePost(rr, req)

		assertJSONError(t, rr, http.StatusForbidden, "not the owner")
	})
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("Владелец удаляет пост", func(t *testing.T) {
		handler := createTestHandler()
		mockPostService := handler.PostService.(*MockPostService)

		mockPostService.On("DeletePost", mock.Anything, 1, "alice").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/posts/1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		req = withIdentity(req, 1, "alice")
		rr := httptest.NewRecorder()

		handler.DeletePost(rr, req)

		response := assertJSONSuccess(t, rr, http.StatusOK)
		assert.Equal(t, true, response["success"])
	})

	t.Run("Чужой пост удалить нельзя", func(t *testing.T) {
		handler := createTestHandler()
		mockPostService := handler.PostService.(*MockPostService)

		mockPostService.On("DeletePost", mock.Anything, 1, "mallory").
			Return(service.ErrForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/posts/1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		req = withIdentity(req, 2, "mallory")
		rr := httptest.NewRecorder()

		handler.DeletePost(rr, req)

		assertJSONError(t, rr, http.StatusForbidden, "not the owner")
	})

	t.Run("Пост не найден", func(t *testing.T) {
		handler := createTestHandler()
		mockPostService := handler.PostService.(*MockPostService)

		mockPostService.On("DeletePost", mock.Anything, 99, "alice").
			Return(repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/posts/99", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		req = withIdentity(req, 1, "alice")
		rr := httptest.NewRecorder()

		handler.DeletePost(rr, req)

		assertJSONError(t, rr, http.StatusNotFound, "Post not found")
	})
}
