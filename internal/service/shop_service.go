package service

import (
	"errors"
	"time"

	"spellbound/internal/models"
)

var (
	ErrUnknownItem    = errors.New("unknown shop item")
	ErrItemLocked     = errors.New("item not unlocked at this level")
	ErrNotEnoughCoins = errors.New("not enough coins")
	ErrItemNotOwned   = errors.New("item not owned")
	ErrNotPlaceable   = errors.New("item cannot be placed in the room")
)

// Room canvas bounds. Wall items hang on the back wall, floor items sit on
// the floor band; positions outside the bands are clamped, not rejected.
const (
	roomMinX      = 20.0
	roomMaxX      = 380.0
	roomWallMinY  = 40.0
	roomWallMaxY  = 120.0
	roomFloorMinY = 180.0
	roomFloorMaxY = 280.0
)

// ShopService owns the item catalog and all coin-for-item transactions.
// Purchases, equips and room layout changes are applied through the profile
// service so each one is a single persisted step.
type ShopService struct {
	profiles *ProfileService
	catalog  []models.ShopItem
	byID     map[string]models.ShopItem
}

// NewShopService creates a new shop service
func NewShopService(profiles *ProfileService) *ShopService {
	s := &ShopService{
		profiles: profiles,
		catalog:  shopCatalog(),
	}
	s.byID = make(map[string]models.ShopItem, len(s.catalog))
	for _, item := range s.catalog {
		s.byID[item.ID] = item
	}
	return s
}

// Catalog returns every shop item.
func (s *ShopService) Catalog() []models.ShopItem {
	items := make([]models.ShopItem, len(s.catalog))
	copy(items, s.catalog)
	return items
}

// Item looks up one catalog entry.
func (s *ShopService) Item(itemID string) (models.ShopItem, bool) {
	item, ok := s.byID[itemID]
	return item, ok
}

// Purchase buys an item for a child. Buying an item the child already owns
// is a no-op that succeeds without debiting coins, so a double-submitted
// purchase can never charge twice.
func (s *ShopService) Purchase(childID, itemID string) error {
	item, ok := s.byID[itemID]
	if !ok {
		return ErrUnknownItem
	}
	return s.profiles.mutateChild(childID, func(save *models.ChildSave) error {
		for _, owned := range save.OwnedItems {
			if owned.ItemID == itemID {
				return nil
			}
		}
		if save.Profile.Level < item.UnlockLevel {
			return ErrItemLocked
		}
		if save.Profile.Coins < item.Price {
			return ErrNotEnoughCoins
		}
		save.Profile.Coins -= item.Price
		save.OwnedItems = append(save.OwnedItems, models.OwnedItem{
			ItemID:     itemID,
			AcquiredAt: time.Now(),
		})
		return nil
	})
}

// ToggleEquip flips an owned item's equipped flag. For avatar accessories
// the profile's accessory list is kept in sync so the avatar always renders
// exactly the equipped set.
func (s *ShopService) ToggleEquip(childID, itemID string) (bool, error) {
	item, ok := s.byID[itemID]
	if !ok {
		return false, ErrUnknownItem
	}

	equipped := false
	err := s.profiles.mutateChild(childID, func(save *models.ChildSave) error {
		idx := -1
		for i, owned := range save.OwnedItems {
			if owned.ItemID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrItemNotOwned
		}
		save.OwnedItems[idx].Equipped = !save.OwnedItems[idx].Equipped
		equipped = save.OwnedItems[idx].Equipped

		if item.Category == models.CategoryAvatarAccessory {
			accessories := save.Profile.AvatarConfig.Accessories[:0:0]
			for _, a := range save.Profile.AvatarConfig.Accessories {
				if a != itemID {
					accessories = append(accessories, a)
				}
			}
			if equipped {
				accessories = append(accessories, itemID)
			}
			if accessories == nil {
				accessories = []string{}
			}
			save.Profile.AvatarConfig.Accessories = accessories
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return equipped, nil
}

// UpdateRoomPlacements replaces a child's room layout. Every placed item
// must be an owned room item; positions are clamped into the room bounds.
func (s *ShopService) UpdateRoomPlacements(childID string, placements []models.ItemPlacement) error {
	return s.profiles.mutateChild(childID, func(save *models.ChildSave) error {
		owned := make(map[string]bool, len(save.OwnedItems))
		for _, item := range save.OwnedItems {
			owned[item.ItemID] = true
		}

		clamped := make([]models.ItemPlacement, 0, len(placements))
		for _, p := range placements {
			item, ok := s.byID[p.ItemID]
			if !ok {
				return ErrUnknownItem
			}
			if !owned[p.ItemID] {
				return ErrItemNotOwned
			}
			if item.Placement == models.PlacementNone {
				return ErrNotPlaceable
			}
			p.X = clamp(p.X, roomMinX, roomMaxX)
			if item.Placement == models.PlacementWall {
				p.Y = clamp(p.Y, roomWallMinY, roomWallMaxY)
			} else {
				p.Y = clamp(p.Y, roomFloorMinY, roomFloorMaxY)
			}
			clamped = append(clamped, p)
		}
		save.RoomPlacements = clamped
		return nil
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func shopCatalog() []models.ShopItem {
	accessory := func(id, name string, price, level int, icon string) models.ShopItem {
		return models.ShopItem{ID: id, Name: name, Category: models.CategoryAvatarAccessory, Price: price, UnlockLevel: level, Icon: icon}
	}
	furniture := func(id, name string, price, level int, icon string) models.ShopItem {
		return models.ShopItem{ID: id, Name: name, Category: models.CategoryRoomFurniture, Price: price, UnlockLevel: level, Icon: icon, Placement: models.PlacementFloor}
	}
	decor := func(id, name string, price, level int, icon string) models.ShopItem {
		return models.ShopItem{ID: id, Name: name, Category: models.CategoryRoomDecor, Price: price, UnlockLevel: level, Icon: icon, Placement: models.PlacementFloor}
	}
	wall := func(id, name string, price, level int, icon string) models.ShopItem {
		return models.ShopItem{ID: id, Name: name, Category: models.CategoryRoomWall, Price: price, UnlockLevel: level, Icon: icon, Placement: models.PlacementWall}
	}

	return []models.ShopItem{
		accessory("glasses", "Cool Glasses", 50, 1, "👓"),
		accessory("bow", "Hair Bow", 40, 1, "🎀"),
		accessory("bandana", "Bandana", 45, 1, "🧣"),
		accessory("hat", "Party Hat", 75, 2, "🎩"),
		accessory("headphones", "Headphones", 80, 2, "🎧"),
		accessory("necklace", "Gold Necklace", 65, 2, "📿"),
		accessory("crown", "Royal Crown", 150, 3, "👑"),
		accessory("sunglasses", "Sunglasses", 90, 3, "🕶️"),
		accessory("watch", "Cool Watch", 85, 3, "⌚"),
		accessory("earrings", "Star Earrings", 100, 4, "✨"),
		accessory("cape", "Super Cape", 120, 4, "🦸"),
		accessory("tiara", "Princess Tiara", 130, 4, "👸"),
		accessory("wizard-hat", "Wizard Hat", 160, 5, "🧙"),
		accessory("pirate-hat", "Pirate Hat", 140, 5, "🏴‍☠️"),
		accessory("cowboy-hat", "Cowboy Hat", 145, 5, "🤠"),
		accessory("viking-helmet", "Viking Helmet", 180, 6, "⚔️"),
		accessory("astronaut-helmet", "Space Helmet", 200, 6, "🧑‍🚀"),
		accessory("dragon-wings", "Dragon Wings", 250, 7, "🐉"),
		accessory("fairy-wings", "Fairy Wings", 220, 7, "🧚"),
		accessory("rainbow-aura", "Rainbow Aura", 300, 8, "🌈"),
		accessory("golden-crown", "Golden Crown", 400, 10, "💎"),

		furniture("desk", "Study Desk", 100, 1, "🪑"),
		furniture("bookshelf", "Bookshelf", 90, 1, "📚"),
		furniture("lamp", "Floor Lamp", 60, 1, "🪔"),
		furniture("chair", "Comfy Chair", 70, 1, "🪑"),
		furniture("bed", "Cozy Bed", 120, 2, "🛏️"),
		furniture("dresser", "Dresser", 95, 2, "🗄️"),
		furniture("nightstand", "Nightstand", 50, 2, "🪵"),
		furniture("couch", "Cozy Couch", 150, 3, "🛋️"),
		furniture("tv", "TV Stand", 180, 3, "📺"),
		furniture("gaming-chair", "Gaming Chair", 140, 3, "🎮"),
		furniture("piano", "Piano", 250, 4, "🎹"),
		furniture("fish-tank", "Fish Tank", 160, 4, "🐠"),
		furniture("bunk-bed", "Bunk Bed", 200, 5, "🛏️"),
		furniture("trampoline", "Trampoline", 180, 5, "🤸"),
		furniture("arcade-machine", "Arcade Machine", 300, 6, "👾"),
		furniture("telescope", "Telescope", 220, 6, "🔭"),
		furniture("jukebox", "Jukebox", 280, 7, "🎶"),
		furniture("pool-table", "Pool Table", 400, 10, "🎱"),
		furniture("hot-tub", "Hot Tub", 500, 10, "🛁"),

		decor("plant", "Houseplant", 40, 1, "🪴"),
		decor("rug", "Cozy Rug", 55, 1, "🟫"),
		decor("teddy", "Teddy Bear", 35, 1, "🧸"),
		decor("globe", "World Globe", 65, 2, "🌍"),
		decor("basketball", "Basketball", 45, 2, "🏀"),
		decor("guitar", "Guitar", 80, 2, "🎸"),
		decor("skateboard", "Skateboard", 70, 3, "🛹"),
		decor("robot", "Robot Toy", 90, 3, "🤖"),
		decor("rocket", "Rocket Model", 100, 3, "🚀"),
		decor("lava-lamp", "Lava Lamp", 85, 4, "🔮"),
		decor("unicorn", "Unicorn Plush", 110, 4, "🦄"),
		decor("disco-ball", "Disco Ball", 120, 5, "🪩"),
		decor("trophy", "Trophy", 150, 6, "🏆"),
		decor("dragon-statue", "Dragon Statue", 200, 7, "🐲"),

		wall("poster", "Star Poster", 30, 1, "⭐"),
		wall("clock", "Wall Clock", 45, 1, "🕐"),
		wall("mirror", "Wall Mirror", 50, 1, "🪞"),
		wall("painting", "Art Painting", 80, 2, "🖼️"),
		wall("map", "World Map", 60, 2, "🗺️"),
		wall("pennant", "Sports Pennant", 40, 2, "🚩"),
		wall("neon-sign", "Neon Sign", 100, 3, "💡"),
		wall("dart-board", "Dart Board", 75, 3, "🎯"),
		wall("dreamcatcher", "Dreamcatcher", 55, 3, "🌙"),
		wall("banner", "Cool Banner", 65, 4, "🏴"),
		wall("photo-wall", "Photo Wall", 90, 4, "📷"),
		wall("medal-display", "Medal Display", 130, 5, "🎖️"),
		wall("constellation", "Star Map", 140, 6, "✨"),
		wall("rainbow-wall", "Rainbow Art", 160, 7, "🌈"),
		wall("chandelier", "Chandelier", 350, 10, "💫"),
		wall("movie-screen", "Movie Screen", 450, 10, "🎬"),
	}
}
