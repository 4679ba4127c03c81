package dto

import "github.com/BruksfildServices01/matcha-inventory/internal/usecase/dashboard"

type StatusRequest struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DashboardResponse struct {
	Message       string            `json:"message"`
	InventoryData dashboard.Summary `json:"inventory_data"`
}

type HealthResponse struct {
	Message    string `json:"message"`
	Storage    string `json:"storage"`
	UsersCount int64  `json:"users_count"`
}
