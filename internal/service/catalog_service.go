package service

import (
	"context"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/entity"
)

type ICatalogService interface {
	Rooms(ctx context.Context) []*entity.RoomTemplate
	Styles(ctx context.Context) []*entity.Style
	FamilySizes(ctx context.Context) []*entity.FamilySize
	Products(ctx context.Context, filter ProductFilter) *dto.ProductListResponse
	Debug(ctx context.Context) *dto.DebugCatalogResponse
}

// ProductFilter narrows the product listing. Zero values mean "no filter";
// MaxPrice 0 in particular does not hide everything.
type ProductFilter struct {
	RoomId   string
	StyleId  string
	Category string
	MaxPrice int
}

type catalogService struct {
	store *catalog.Store
}

func NewCatalogService(store *catalog.Store) ICatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) Rooms(ctx context.Context) []*entity.RoomTemplate {
	return s.store.Rooms()
}

func (s *catalogService) Styles(ctx context.Context) []*entity.Style {
	return s.store.Styles()
}

func (s *catalogService) FamilySizes(ctx context.Context) []*entity.FamilySize {
	return s.store.FamilySizes()
}

func (s *catalogService) Products(ctx context.Context, filter ProductFilter) *dto.ProductListResponse {
	source := s.store.Products()
	if filter.RoomId != "" {
		source = s.store.ProductsForRoom(filter.RoomId)
	}

	products := make([]*entity.Product, 0, len(source))
	for _, p := range source {
		if filter.StyleId != "" && p.StyleMatchCount([]string{filter.StyleId}) == 0 {
			continue
		}
		if filter.Category != "" && p.Category != entity.Category(filter.Category) {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		products = append(products, p)
	}

	return &dto.ProductListResponse{
		Products: products,
		Count:    len(products),
	}
}

func (s *catalogService) Debug(ctx context.Context) *dto.DebugCatalogResponse {
	return &dto.DebugCatalogResponse{
		Products:    s.store.Products(),
		Styles:      s.store.Styles(),
		Rooms:       s.store.Rooms(),
		FamilySizes: s.store.FamilySizes(),
		TimeSlots:   constant.TimeSlots,
		Steps:       constant.Steps,
	}
}
