package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapp/internal/repository"
)

// допустимые типы загружаемых изображений
var allowedFileTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("File too large (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "No file uploaded", http.StatusBadRequest)
		}
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := handler.Header.Get("Content-Type")
	if !allowedFileTypes[contentType] {
		WriteError(w, "Invalid file type. Only PNG, JPG, and JPEG are allowed.", http.StatusBadRequest)
		return
	}

	record, err := h.FileService.UploadFile(r.Context(), handler.Filename, contentType, file, handler.Size)
	if err != nil {
		WriteInternalError(w, "Error uploading file", err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success":  true,
		"message":  "File uploaded successfully",
		"filename": record.Filename,
		"id":       record.FileID,
	}, http.StatusCreated)
}

func (h *Handlers) DownloadFile(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	record, object, err := h.FileService.DownloadFile(r.Context(), filename)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "File not found", http.StatusNotFound)
		} else {
			WriteInternalError(w, "Error retrieving file", err)
		}
		return
	}
	defer object.Close()

	w.Header().Set("Content-Type", record.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(record.Size, 10))

	if _, err := io.Copy(w, object); err != nil {
		// заголовки уже отправлены, статус менять поздно
		fmt.Printf("Предупреждение: ошибка при отдаче файла %s: %v\n", filename, err)
	}
}
