package dto

import "clinic-api/app/models"

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserListResponse struct {
	Data []models.User `json:"data"`
}
