package dto

import "ai-roomplanner-be/internal/entity"

type GenerateRecommendationsRequest struct {
	RoomId       string   `json:"roomId" validate:"required"`
	Budget       int      `json:"budget" validate:"required,gt=0"`
	StyleIds     []string `json:"styleIds"`
	FamilySizeId string   `json:"familySizeId"`
}

type BundleResponse struct {
	Category        entity.Category   `json:"category"`
	Product         *entity.Product   `json:"product"`
	BudgetAllocated float64           `json:"budgetAllocated"`
	Alternatives    []*entity.Product `json:"alternatives"`
}

type RecommendationResponse struct {
	Products          []*entity.Product    `json:"products"`
	Bundles           []BundleResponse     `json:"bundles"`
	TotalPrice        int                  `json:"totalPrice"`
	Budget            int                  `json:"budget"`
	BudgetUtilization int                  `json:"budgetUtilization"`
	Room              *entity.RoomTemplate `json:"room"`
	StyleMatches      []string             `json:"styleMatches"`
	FamilySize        *entity.FamilySize   `json:"familySize"`
}

type AlternativesResponse struct {
	ProductId    string            `json:"productId"`
	Alternatives []*entity.Product `json:"alternatives"`
}

type BudgetAllocationResponse struct {
	Total      int                         `json:"total"`
	Allocation map[entity.Category]float64 `json:"allocation"`
}
