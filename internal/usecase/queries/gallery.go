package queries

import (
	"context"

	"flashbooth/internal/pkg/errs"
)

var ErrGalleryImageNotFound = errs.New("gallery image not found")

type GalleryQueries interface {
	// ListPublic returns images visible on the public gallery page.
	ListPublic(ctx context.Context) ([]*GalleryImageView, error)
	// ListAll returns every image for the back office, hidden ones included.
	ListAll(ctx context.Context) ([]*GalleryImageView, error)
	ListTags(ctx context.Context) ([]*TagView, error)
}

type GalleryReadStore interface {
	FindImages(ctx context.Context, publicOnly bool) ([]*GalleryImageView, error)
	FindTags(ctx context.Context) ([]*TagView, error)
}

type galleryQueriesImpl struct {
	readStore GalleryReadStore
}

func NewGalleryQueries(readStore GalleryReadStore) GalleryQueries {
	return &galleryQueriesImpl{readStore: readStore}
}

func (q *galleryQueriesImpl) ListPublic(ctx context.Context) ([]*GalleryImageView, error) {
	return q.readStore.FindImages(ctx, true)
}

func (q *galleryQueriesImpl) ListAll(ctx context.Context) ([]*GalleryImageView, error) {
	return q.readStore.FindImages(ctx, false)
}

func (q *galleryQueriesImpl) ListTags(ctx context.Context) ([]*TagView, error) {
	return q.readStore.FindTags(ctx)
}
