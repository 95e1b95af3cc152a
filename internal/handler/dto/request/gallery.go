package request

type UpdateGalleryImageRequest struct {
	Caption  *string  `json:"caption,omitempty"`
	IsPublic *bool    `json:"is_public,omitempty"`
	TagIDs   []string `json:"tag_ids,omitempty"`
}

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}
