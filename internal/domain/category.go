package domain

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	SortOrder int       `json:"sort_order"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryIcon is the closed set of icons the frontend can render.
type CategoryIcon string

const (
	IconHome     CategoryIcon = "Home"
	IconBuilding CategoryIcon = "Building2"
	IconMountain CategoryIcon = "Mountain"
	IconStore    CategoryIcon = "Store"
	IconTrees    CategoryIcon = "Trees"
	IconUmbrella CategoryIcon = "Umbrella"
	IconLayers   CategoryIcon = "Layers"
)

// ResolveIcon maps a stored icon key to a renderable icon,
// falling back to the house icon for unknown or empty keys.
func ResolveIcon(key string) CategoryIcon {
	switch CategoryIcon(key) {
	case IconHome, IconBuilding, IconMountain, IconStore, IconTrees, IconUmbrella, IconLayers:
		return CategoryIcon(key)
	}
	return IconHome
}
