package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/mlehnert/linkup-backend/internal/domain"
	"github.com/mlehnert/linkup-backend/internal/media"
	"github.com/mlehnert/linkup-backend/internal/repository/ports"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyUpload  = errors.New("empty upload")
)

type ProfileService struct {
	users     ports.UserRepository
	storage   ports.ObjectStorage
	processor media.Processor
	bucket    string
}

func NewProfileService(users ports.UserRepository, storage ports.ObjectStorage, processor media.Processor, bucket string) *ProfileService {
	return &ProfileService{
		users:     users,
		storage:   storage,
		processor: processor,
		bucket:    bucket,
	}
}

func (s *ProfileService) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdatePicture processes the uploaded image, stores it in the profile
// bucket, and persists the resulting URL on the user record.
func (s *ProfileService) UpdatePicture(ctx context.Context, userID uuid.UUID, upload media.Upload) (*domain.User, error) {
	if upload.Reader == nil || upload.Size == 0 {
		return nil, ErrEmptyUpload
	}

	reader, size, contentType, err := prepareImageForUpload(ctx, s.processor, upload)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("profiles/%s/%s%s", userID, uuid.NewString(), extensionFor(contentType, upload.FileName))
	url, err := s.storage.Upload(ctx, s.bucket, objectName, contentType, reader, size)
	if err != nil {
		return nil, fmt.Errorf("upload profile picture: %w", err)
	}

	user, err := s.users.UpdateProfileImage(ctx, userID, url)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) UpdateBio(ctx context.Context, userID uuid.UUID, bio string) (*domain.User, error) {
	user, err := s.users.UpdateBio(ctx, userID, strings.TrimSpace(bio))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func extensionFor(contentType, fileName string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	if ext := strings.ToLower(path.Ext(fileName)); ext != "" {
		return ext
	}
	return ".jpg"
}
