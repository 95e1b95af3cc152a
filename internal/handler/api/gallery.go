package api

import (
	"errors"
	"net/http"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/handler/httperr"
	"flashbooth/internal/infra/storage"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gallery uploads are capped well below gin's default multipart memory.
const maxUploadBytes = 10 << 20

type GalleryHandler struct {
	galleryCommands commands.GalleryCommands
	galleryQueries  queries.GalleryQueries
}

func NewGalleryHandler(galleryCommands commands.GalleryCommands, galleryQueries queries.GalleryQueries) *GalleryHandler {
	return &GalleryHandler{
		galleryCommands: galleryCommands,
		galleryQueries:  galleryQueries,
	}
}

// @Summary Public gallery
// @Tags gallery
// @Produce json
// @Success 200 {array} queries.GalleryImageView
// @Router /gallery [get]
func (h *GalleryHandler) ListPublic(c *gin.Context) {
	views, err := h.galleryQueries.ListPublic(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary All gallery images
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.GalleryImageView
// @Router /admin/gallery [get]
func (h *GalleryHandler) ListAll(c *gin.Context) {
	views, err := h.galleryQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Upload a gallery image
// @Tags admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param caption formData string false "Caption"
// @Param is_public formData bool false "Publicly visible"
// @Success 201 {object} queries.GalleryImageView
// @Failure 400 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Router /admin/gallery [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image file required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("file too large"), "Image exceeds the 10MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not read uploaded file", nil)
		return
	}
	defer file.Close()

	isPublic := c.PostForm("is_public") == "true"

	view, err := h.galleryCommands.Upload(c.Request.Context(), fileHeader.Filename, file, c.PostForm("caption"), isPublic)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMediaType) {
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType, err, "Unsupported image format", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update gallery image metadata
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Image id"
// @Param request body reqdto.UpdateGalleryImageRequest true "Metadata patch"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [patch]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image id", nil)
		return
	}

	var req reqdto.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.galleryCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrGalleryImageNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Image not found", nil)
		case errors.Is(err, commands.ErrTagNotFound):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown tag", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a gallery image
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Image id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image id", nil)
		return
	}

	if err := h.galleryCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrGalleryImageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Image not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List tags
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.TagView
// @Router /admin/gallery/tags [get]
func (h *GalleryHandler) ListTags(c *gin.Context) {
	tags, err := h.galleryQueries.ListTags(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// @Summary Create a tag
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTagRequest true "Tag"
// @Success 201 {object} queries.TagView
// @Failure 409 {object} httperr.Response
// @Router /admin/gallery/tags [post]
func (h *GalleryHandler) CreateTag(c *gin.Context) {
	var req reqdto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	tag, err := h.galleryCommands.CreateTag(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrTagNameTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err, "A tag with this name already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// @Summary Delete a tag
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Tag id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/tags/{id} [delete]
func (h *GalleryHandler) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tag id", nil)
		return
	}

	if err := h.galleryCommands.DeleteTag(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrTagNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tag not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
