package commands

import (
	"context"
	"io"

	"github.com/google/uuid"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"
	"flashbooth/internal/usecase/queries"
)

var (
	ErrGalleryImageNotFound = errs.New("gallery image not found")
	ErrTagNotFound          = errs.New("tag not found")
	ErrTagNameTaken         = errs.New("tag name already exists")
	ErrFileStorageFailed    = errs.New("file storage failed")
)

// FileStorage persists uploaded media and serves it back by URL.
type FileStorage interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storedName string, err error)
	PublicURL(storedName string) string
	Remove(ctx context.Context, storedName string) error
}

type GalleryImageRecord struct {
	ID       uuid.UUID
	FileName string
	ImageURL string
	Caption  string
	IsPublic bool
}

type GalleryRepository interface {
	InsertImage(ctx context.Context, rec GalleryImageRecord) error
	UpdateImage(ctx context.Context, id uuid.UUID, caption *string, isPublic *bool) error
	// DeleteImage removes the row and reports the stored file name so the
	// caller can clean up the media file.
	DeleteImage(ctx context.Context, id uuid.UUID) (string, error)
	SetImageTags(ctx context.Context, imageID uuid.UUID, tagIDs []uuid.UUID) error
	CreateTag(ctx context.Context, id uuid.UUID, name, color string) error
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type GalleryCommands interface {
	Upload(ctx context.Context, fileName string, content io.Reader, caption string, isPublic bool) (*queries.GalleryImageView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGalleryImageRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateTag(ctx context.Context, req reqdto.CreateTagRequest) (*queries.TagView, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type galleryCommandsImpl struct {
	galleryRepo GalleryRepository
	storage     FileStorage
}

func NewGalleryCommands(galleryRepo GalleryRepository, storage FileStorage) GalleryCommands {
	return &galleryCommandsImpl{
		galleryRepo: galleryRepo,
		storage:     storage,
	}
}

func (g *galleryCommandsImpl) Upload(ctx context.Context, fileName string, content io.Reader, caption string, isPublic bool) (*queries.GalleryImageView, error) {
	storedName, err := g.storage.Save(ctx, fileName, content)
	if err != nil {
		return nil, errs.Mark(err, ErrFileStorageFailed)
	}

	rec := GalleryImageRecord{
		ID:       uuid.New(),
		FileName: storedName,
		ImageURL: g.storage.PublicURL(storedName),
		Caption:  caption,
		IsPublic: isPublic,
	}

	if err := g.galleryRepo.InsertImage(ctx, rec); err != nil {
		// Orphaned file, best effort cleanup.
		_ = g.storage.Remove(ctx, storedName)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.GalleryImageView{
		ID:       rec.ID,
		ImageURL: rec.ImageURL,
		Caption:  rec.Caption,
		IsPublic: rec.IsPublic,
		Tags:     []queries.TagView{},
	}, nil
}

func (g *galleryCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGalleryImageRequest) error {
	if req.Caption != nil || req.IsPublic != nil {
		if err := g.galleryRepo.UpdateImage(ctx, id, req.Caption, req.IsPublic); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGalleryImageNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if req.TagIDs == nil {
		return nil
	}

	tagIDs := make([]uuid.UUID, 0, len(req.TagIDs))
	for _, raw := range req.TagIDs {
		tagID, err := uuid.Parse(raw)
		if err != nil {
			return ErrTagNotFound
		}
		tagIDs = append(tagIDs, tagID)
	}

	if err := g.galleryRepo.SetImageTags(ctx, id, tagIDs); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrTagNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (g *galleryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	storedName, err := g.galleryRepo.DeleteImage(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrGalleryImageNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := g.storage.Remove(ctx, storedName); err != nil {
		return errs.Mark(err, ErrFileStorageFailed)
	}
	return nil
}

func (g *galleryCommandsImpl) CreateTag(ctx context.Context, req reqdto.CreateTagRequest) (*queries.TagView, error) {
	id := uuid.New()
	if err := g.galleryRepo.CreateTag(ctx, id, req.Name, req.Color); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrTagNameTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &queries.TagView{ID: id, Name: req.Name, Color: req.Color}, nil
}

func (g *galleryCommandsImpl) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := g.galleryRepo.DeleteTag(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTagNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
