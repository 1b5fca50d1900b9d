// Request bodies accepted by the HTTP API.
package types

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

type UpdateUserRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,max=120"`
	Username        *string `json:"username" validate:"omitempty,max=64"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,url"`
}

type SaveProfileRequest struct {
	Name     string  `json:"name" validate:"max=120"`
	Bio      string  `json:"bio" validate:"max=2000"`
	Website  string  `json:"website" validate:"omitempty,url"`
	Slug     *string `json:"slug" validate:"omitempty,max=80"`
	IsPublic *bool   `json:"is_public"`
}

type UpdatePortfolioRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Slug        *string `json:"slug" validate:"omitempty,max=80"`
	IsPublic    *bool   `json:"is_public"`
}

type SaveImageRequest struct {
	ImageURL    string  `json:"image_url" validate:"required"`
	PortfolioID *string `json:"portfolio_id"`
	Source      string  `json:"source" validate:"omitempty,oneof=upload instagram twitter"`
}

type SaveImagesRequest struct {
	Images []SaveImageRequest `json:"images" validate:"required,min=1,dive"`
}

type ConnectRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

type EventRequest struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
}
