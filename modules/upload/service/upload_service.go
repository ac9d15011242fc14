package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gig-planner/core/errors"
	"gig-planner/core/logger"
	"gig-planner/core/storage"
	"gig-planner/core/utils"
	gigEntity "gig-planner/modules/gig/entity"

	"github.com/google/uuid"
)

// maxUploadSize caps both avatars and setlist PDFs.
const maxUploadSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// AvatarWriter persists a new avatar URL on the user record.
type AvatarWriter interface {
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
}

// SetlistStore is the slice of the gig repository the setlist upload needs.
type SetlistStore interface {
	GetGigByID(ctx context.Context, id uuid.UUID) (*gigEntity.Gig, error)
	SetGigSetlist(ctx context.Context, id uuid.UUID, url string) error
}

type UploadService struct {
	store    storage.ObjectStore
	avatars  AvatarWriter
	setlists SetlistStore
}

func NewUploadService(store storage.ObjectStore, avatars AvatarWriter, setlists SetlistStore) *UploadService {
	return &UploadService{store: store, avatars: avatars, setlists: setlists}
}

// UploadAvatar stores a profile image and records its URL on the user.
func (s *UploadService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, size int64, body io.Reader) (string, error) {
	if s.store == nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "object storage is not configured", nil)
	}
	if size > maxUploadSize {
		return "", errors.NewAppError(errors.ErrInvalidInput, "file exceeds the 10MB limit", nil)
	}
	if !allowedImageTypes[contentType] {
		return "", errors.NewAppError(errors.ErrInvalidInput, "avatar must be a PNG, JPEG or WebP image", nil)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("avatars/%s/%s%s", userID, utils.GenerateID(), ext)

	url, err := s.store.Put(ctx, key, body, contentType)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store avatar", err)
	}

	if err := s.avatars.UpdateAvatar(ctx, userID, url); err != nil {
		return "", errors.NewAppError(errors.ErrPersistence, "failed to save avatar URL", err)
	}

	logger.Info("UploadService:UploadAvatar:Stored", "user_id", userID, "key", key)
	return url, nil
}

// UploadSetlist stores a PDF setlist against an owned gig.
func (s *UploadService) UploadSetlist(ctx context.Context, userID, gigID uuid.UUID, contentType string, size int64, body io.Reader) (string, error) {
	if s.store == nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "object storage is not configured", nil)
	}
	if size > maxUploadSize {
		return "", errors.NewAppError(errors.ErrInvalidInput, "file exceeds the 10MB limit", nil)
	}
	if contentType != "application/pdf" {
		return "", errors.NewAppError(errors.ErrInvalidInput, "setlist must be a PDF", nil)
	}

	gig, err := s.setlists.GetGigByID(ctx, gigID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrPersistence, "failed to load gig", err)
	}
	if gig == nil {
		return "", errors.NewAppError(errors.ErrNotFound, "gig not found", nil)
	}
	if gig.OwnerID != userID {
		return "", errors.NewAppError(errors.ErrForbidden, "gig belongs to a different user", nil)
	}

	key := fmt.Sprintf("setlists/%s/%s.pdf", gigID, utils.GenerateID())

	url, err := s.store.Put(ctx, key, body, contentType)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store setlist", err)
	}

	if err := s.setlists.SetGigSetlist(ctx, gigID, url); err != nil {
		return "", errors.NewAppError(errors.ErrPersistence, "failed to save setlist URL", err)
	}

	logger.Info("UploadService:UploadSetlist:Stored", "gig_id", gigID, "key", key)
	return url, nil
}
