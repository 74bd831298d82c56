package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mlehnert/linkup-backend/internal/domain"
	"github.com/mlehnert/linkup-backend/internal/media"
)

type stubImageProcessor struct {
	output      []byte
	contentType string
	err         error

	calls int
	last  media.Upload
}

func (s *stubImageProcessor) Process(ctx context.Context, upload media.Upload) (*media.Result, error) {
	s.calls++
	s.last = upload
	if s.err != nil {
		return nil, s.err
	}
	ct := s.contentType
	if ct == "" {
		ct = upload.ContentType
	}
	return &media.Result{
		Bytes:       append([]byte(nil), s.output...),
		ContentType: ct,
		Resized:     true,
	}, nil
}

func TestProfileLookup(t *testing.T) {
	userID := uuid.New()
	bio := "hello"
	repo := &fakeUserRepo{findByIDResult: &domain.User{ID: userID, FirstName: "Jo", Bio: &bio}}
	svc := NewProfileService(repo, &fakeObjectStorage{}, nil, "profiles")

	user, err := svc.Profile(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != userID || user.Bio == nil || *user.Bio != "hello" {
		t.Fatalf("unexpected user: %+v", user)
	}

	t.Run("missing user", func(t *testing.T) {
		repo := &fakeUserRepo{findByIDErr: sql.ErrNoRows}
		svc := NewProfileService(repo, &fakeObjectStorage{}, nil, "profiles")
		if _, err := svc.Profile(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUpdatePicture(t *testing.T) {
	userID := uuid.New()
	processed := []byte("processed image bytes")
	processor := &stubImageProcessor{output: processed, contentType: "image/jpeg"}
	storage := &fakeObjectStorage{url: "https://cdn.example.com/avatars/pic.jpg"}
	repo := &fakeUserRepo{updateImageResult: &domain.User{ID: userID}}
	svc := NewProfileService(repo, storage, processor, "profiles")

	raw := "raw image data"
	upload := media.Upload{
		Reader:      strings.NewReader(raw),
		Size:        int64(len(raw)),
		FileName:    "avatar.JPG",
		ContentType: "image/jpeg",
	}

	if _, err := svc.UpdatePicture(context.Background(), userID, upload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processor.calls != 1 {
		t.Fatalf("expected processor to run once, got %d", processor.calls)
	}
	if len(storage.uploaded) != 1 {
		t.Fatalf("expected one upload, got %d", len(storage.uploaded))
	}
	up := storage.uploaded[0]
	if up.bucket != "profiles" {
		t.Fatalf("unexpected bucket %q", up.bucket)
	}
	if !strings.HasPrefix(up.objectName, "profiles/"+userID.String()+"/") {
		t.Fatalf("unexpected object name %q", up.objectName)
	}
	if !strings.HasSuffix(up.objectName, ".jpg") {
		t.Fatalf("expected .jpg suffix, got %q", up.objectName)
	}
	if up.size != int64(len(processed)) {
		t.Fatalf("expected processed size %d, got %d", len(processed), up.size)
	}
	if repo.updateImageInput.url != storage.url {
		t.Fatalf("expected stored url %q, got %q", storage.url, repo.updateImageInput.url)
	}
}

func TestUpdatePictureEmptyUpload(t *testing.T) {
	svc := NewProfileService(&fakeUserRepo{}, &fakeObjectStorage{}, nil, "profiles")

	_, err := svc.UpdatePicture(context.Background(), uuid.New(), media.Upload{})
	if !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("expected ErrEmptyUpload, got %v", err)
	}
}

func TestUpdatePictureStorageFailure(t *testing.T) {
	storage := &fakeObjectStorage{err: errors.New("minio down")}
	repo := &fakeUserRepo{}
	svc := NewProfileService(repo, storage, nil, "profiles")

	raw := "raw image data"
	upload := media.Upload{Reader: strings.NewReader(raw), Size: int64(len(raw)), ContentType: "image/png"}

	_, err := svc.UpdatePicture(context.Background(), uuid.New(), upload)
	if err == nil {
		t.Fatal("expected error when storage fails")
	}
	if repo.updateImageInput.url != "" {
		t.Fatal("expected no image url to be persisted")
	}
}

func TestUpdateBio(t *testing.T) {
	userID := uuid.New()
	bio := "climber, baker"
	repo := &fakeUserRepo{updateBioResult: &domain.User{ID: userID, Bio: &bio}}
	svc := NewProfileService(repo, &fakeObjectStorage{}, nil, "profiles")

	user, err := svc.UpdateBio(context.Background(), userID, "  climber, baker  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updateBioInput.bio != "climber, baker" {
		t.Fatalf("expected trimmed bio, got %q", repo.updateBioInput.bio)
	}
	if user.Bio == nil || *user.Bio != bio {
		t.Fatalf("unexpected bio on result: %+v", user.Bio)
	}

	t.Run("missing user", func(t *testing.T) {
		repo := &fakeUserRepo{updateBioErr: sql.ErrNoRows}
		svc := NewProfileService(repo, &fakeObjectStorage{}, nil, "profiles")
		if _, err := svc.UpdateBio(context.Background(), uuid.New(), "bio"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
