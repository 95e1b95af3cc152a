package repository

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GalleryRepository struct {
	pool *pgxpool.Pool
}

func NewGalleryRepository(pool *pgxpool.Pool) commands.GalleryRepository {
	return &GalleryRepository{pool: pool}
}

func (r *GalleryRepository) InsertImage(ctx context.Context, rec commands.GalleryImageRecord) error {
	const query = `
		INSERT INTO gallery_images (id, file_name, image_url, caption, is_public)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, rec.ID, rec.FileName, rec.ImageURL, rec.Caption, rec.IsPublic)
	if err != nil {
		return infra.WrapRepoErr("failed to insert gallery image", err)
	}
	return nil
}

func (r *GalleryRepository) UpdateImage(ctx context.Context, id uuid.UUID, caption *string, isPublic *bool) error {
	const query = `
		UPDATE gallery_images SET
			caption    = COALESCE($2, caption),
			is_public  = COALESCE($3, is_public),
			updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, caption, isPublic)
	if err != nil {
		return infra.WrapRepoErr("failed to update gallery image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("gallery image not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GalleryRepository) DeleteImage(ctx context.Context, id uuid.UUID) (string, error) {
	var fileName string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM gallery_images WHERE id = $1 RETURNING file_name`, id,
	).Scan(&fileName)
	if err != nil {
		return "", infra.WrapRepoErr("failed to delete gallery image", err)
	}
	return fileName, nil
}

// SetImageTags replaces the image's tag set wholesale inside one transaction.
func (r *GalleryRepository) SetImageTags(ctx context.Context, imageID uuid.UUID, tagIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM gallery_image_tags WHERE image_id = $1`, imageID); err != nil {
		return infra.WrapRepoErr("failed to clear image tags", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO gallery_image_tags (image_id, tag_id) VALUES ($1, $2)`,
			imageID, tagID,
		); err != nil {
			return infra.WrapRepoErr("failed to attach tag", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit image tags", err)
	}
	return nil
}

func (r *GalleryRepository) CreateTag(ctx context.Context, id uuid.UUID, name, color string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tags (id, name, color) VALUES ($1, $2, $3)`,
		id, name, color,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create tag", err)
	}
	return nil
}

func (r *GalleryRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete tag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tag not found", nil, infra.KindNotFound)
	}
	return nil
}
