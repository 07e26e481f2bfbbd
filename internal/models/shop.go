package models

// ItemCategory groups shop items by where they apply.
type ItemCategory string

const (
	CategoryAvatarAccessory ItemCategory = "avatar-accessories"
	CategoryRoomFurniture   ItemCategory = "room-furniture"
	CategoryRoomDecor       ItemCategory = "room-decor"
	CategoryRoomWall        ItemCategory = "room-wall"
)

// PlacementType constrains where a room item may be positioned.
type PlacementType string

const (
	PlacementFloor PlacementType = "floor"
	PlacementWall  PlacementType = "wall"
	PlacementNone  PlacementType = ""
)

// ShopItem is a purchasable catalog entry.
type ShopItem struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    ItemCategory  `json:"category"`
	Price       int           `json:"price"`
	UnlockLevel int           `json:"unlockLevel"`
	Icon        string        `json:"icon"`
	Placement   PlacementType `json:"placement,omitempty"`
}
