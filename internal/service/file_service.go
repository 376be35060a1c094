package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"blogapp/internal/models"
	"blogapp/internal/repository"
	"blogapp/internal/storage"
)

type FileService interface {
	UploadFile(ctx context.Context, originalName, contentType string, file io.Reader, size int64) (*models.File, error)
	DownloadFile(ctx context.Context, filename string) (*models.File, io.ReadCloser, error)
}

type fileService struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewFileService(fileRepo repository.FileRepository, storage storage.Storage) FileService {
	return &fileService{
		fileRepo: fileRepo,
		storage:  storage,
	}
}

// UploadFile кладет байты в MinIO под именем {millis}-{originalName} и
// сохраняет метаданные в БД. Если метаданные записать не удалось,
// объект убирается из MinIO.
func (f *fileService) UploadFile(ctx context.Context, originalName, contentType string, file io.Reader, size int64) (*models.File, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName)

	if err := f.storage.UploadFile(ctx, filename, contentType, file, size); err != nil {
		return nil, err
	}

	record := &models.File{
		Filename:     filename,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         size,
	}

	if err := f.fileRepo.Create(ctx, record); err != nil {
		if delErr := f.storage.DeleteFile(ctx, filename); delErr != nil {
			fmt.Printf("Предупреждение: не удалось удалить объект %s из MinIO: %v\n", filename, delErr)
		}
		return nil, err
	}

	return record, nil
}

func (f *fileService) DownloadFile(ctx context.Context, filename string) (*models.File, io.ReadCloser, error) {
	record, err := f.fileRepo.GetByFilename(ctx, filename)
	if err != nil {
		return nil, nil, err
	}

	object, err := f.storage.DownloadFile(ctx, record.Filename)
	if err != nil {
		return nil, nil, err
	}

	return record, object, nil
}
