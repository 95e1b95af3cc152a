package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GalleryReadStore struct {
	pool *pgxpool.Pool
}

func NewGalleryReadStore(pool *pgxpool.Pool) queries.GalleryReadStore {
	return &GalleryReadStore{pool: pool}
}

func (s *GalleryReadStore) FindImages(ctx context.Context, publicOnly bool) ([]*queries.GalleryImageView, error) {
	const query = `
		SELECT id, image_url, COALESCE(caption, ''), is_public, created_at
		FROM gallery_images
		WHERE NOT $1 OR is_public
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, publicOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gallery images", err)
	}
	defer rows.Close()

	views := make([]*queries.GalleryImageView, 0)
	byID := make(map[uuid.UUID]*queries.GalleryImageView)
	for rows.Next() {
		var v queries.GalleryImageView
		if err := rows.Scan(&v.ID, &v.ImageURL, &v.Caption, &v.IsPublic, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan gallery image", err)
		}
		v.Tags = []queries.TagView{}
		views = append(views, &v)
		byID[v.ID] = &v
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read gallery images", err)
	}
	if len(views) == 0 {
		return views, nil
	}

	if err := s.attachTags(ctx, byID); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *GalleryReadStore) attachTags(ctx context.Context, byID map[uuid.UUID]*queries.GalleryImageView) error {
	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	const query = `
		SELECT it.image_id, t.id, t.name, COALESCE(t.color, ''), t.created_at
		FROM gallery_image_tags it
		JOIN tags t ON t.id = it.tag_id
		WHERE it.image_id = ANY($1)
		ORDER BY t.name`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list image tags", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			imageID uuid.UUID
			tag     queries.TagView
		)
		if err := rows.Scan(&imageID, &tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			return infra.WrapRepoErr("failed to scan image tag", err)
		}
		if view, ok := byID[imageID]; ok {
			view.Tags = append(view.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read image tags", err)
	}
	return nil
}

func (s *GalleryReadStore) FindTags(ctx context.Context) ([]*queries.TagView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, COALESCE(color, ''), created_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tags", err)
	}
	defer rows.Close()

	tags := make([]*queries.TagView, 0)
	for rows.Next() {
		var tag queries.TagView
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tag", err)
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read tags", err)
	}
	return tags, nil
}
