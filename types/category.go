package types

import "AppNotas/models"

const CategoryNameMaxLen = 100

type CategoryRequest struct {
	Name string `json:"name" form:"name"`
}

type CategoryResponse struct {
	Message  string           `json:"message"`
	Category *models.Category `json:"category"`
}
