// Package catalog loads the bundled product/style/room data and serves
// indexed, read-only lookups over it. Absent ids resolve to nil or empty
// results, never errors.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"ai-roomplanner-be/internal/entity"
)

//go:embed data/products.json
var productsRaw []byte

//go:embed data/styles.json
var stylesRaw []byte

//go:embed data/rooms.json
var roomsRaw []byte

type Store struct {
	products    []*entity.Product
	styles      []*entity.Style
	rooms       []*entity.RoomTemplate
	familySizes []*entity.FamilySize

	productById    map[string]*entity.Product
	styleById      map[string]*entity.Style
	roomById       map[string]*entity.RoomTemplate
	familySizeById map[string]*entity.FamilySize

	// productsByRoom keeps catalog order per room so downstream ranking
	// stays stable.
	productsByRoom map[string][]*entity.Product
}

// Load parses the embedded catalog and builds the id indexes once.
func Load() (*Store, error) {
	var productDoc struct {
		Products []*entity.Product `json:"products"`
	}
	if err := json.Unmarshal(productsRaw, &productDoc); err != nil {
		return nil, fmt.Errorf("catalog: parse products: %w", err)
	}

	var styleDoc struct {
		Styles []*entity.Style `json:"styles"`
	}
	if err := json.Unmarshal(stylesRaw, &styleDoc); err != nil {
		return nil, fmt.Errorf("catalog: parse styles: %w", err)
	}

	var roomDoc struct {
		Rooms       []*entity.RoomTemplate `json:"rooms"`
		FamilySizes []*entity.FamilySize   `json:"familySizes"`
	}
	if err := json.Unmarshal(roomsRaw, &roomDoc); err != nil {
		return nil, fmt.Errorf("catalog: parse rooms: %w", err)
	}

	s := &Store{
		products:       productDoc.Products,
		styles:         styleDoc.Styles,
		rooms:          roomDoc.Rooms,
		familySizes:    roomDoc.FamilySizes,
		productById:    make(map[string]*entity.Product, len(productDoc.Products)),
		styleById:      make(map[string]*entity.Style, len(styleDoc.Styles)),
		roomById:       make(map[string]*entity.RoomTemplate, len(roomDoc.Rooms)),
		familySizeById: make(map[string]*entity.FamilySize, len(roomDoc.FamilySizes)),
		productsByRoom: make(map[string][]*entity.Product, len(roomDoc.Rooms)),
	}

	for _, p := range s.products {
		s.productById[p.Id] = p
	}
	for _, st := range s.styles {
		s.styleById[st.Id] = st
	}
	for _, fs := range s.familySizes {
		s.familySizeById[fs.Id] = fs
	}
	for _, r := range s.rooms {
		s.roomById[r.Id] = r
		for _, p := range s.products {
			if p.InRoom(r.Id) {
				s.productsByRoom[r.Id] = append(s.productsByRoom[r.Id], p)
			}
		}
	}

	return s, nil
}

// MustLoad panics on a malformed bundle. The catalog ships inside the binary,
// so a parse failure is a build defect, not a runtime condition.
func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) FindRoom(id string) *entity.RoomTemplate {
	return s.roomById[id]
}

func (s *Store) FindStyle(id string) *entity.Style {
	return s.styleById[id]
}

func (s *Store) FindFamilySize(id string) *entity.FamilySize {
	return s.familySizeById[id]
}

func (s *Store) FindProduct(id string) *entity.Product {
	return s.productById[id]
}

// ProductsForRoom returns catalog-ordered products eligible for the room.
// The returned slice is shared; callers must not mutate it.
func (s *Store) ProductsForRoom(roomId string) []*entity.Product {
	return s.productsByRoom[roomId]
}

// ProductsForBudget keeps products priced at or under the ceiling, preserving
// the order of the input list.
func ProductsForBudget(list []*entity.Product, ceiling float64) []*entity.Product {
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if float64(p.Price) <= ceiling {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Products() []*entity.Product       { return s.products }
func (s *Store) Styles() []*entity.Style           { return s.styles }
func (s *Store) Rooms() []*entity.RoomTemplate     { return s.rooms }
func (s *Store) FamilySizes() []*entity.FamilySize { return s.familySizes }
