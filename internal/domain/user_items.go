package domain

import "math"

// UserItems is the normalized view of a user's inventory payload.
type UserItems struct {
	Gear         *UserGear `json:"gear,omitempty"`
	CurrentMount *string   `json:"currentMount,omitempty"`
	CurrentPet   *string   `json:"currentPet,omitempty"`

	OwnedQuests          []OwnedItem `json:"ownedQuests"`
	OwnedFood            []OwnedItem `json:"ownedFood"`
	OwnedHatchingPotions []OwnedItem `json:"ownedHatchingPotions"`
	OwnedEggs            []OwnedItem `json:"ownedEggs"`
}

// NewUserItems returns a value with every collection empty and all optional
// fields absent.
func NewUserItems() *UserItems {
	return &UserItems{
		OwnedQuests:          []OwnedItem{},
		OwnedFood:            []OwnedItem{},
		OwnedHatchingPotions: []OwnedItem{},
		OwnedEggs:            []OwnedItem{},
	}
}

// Owned returns the collection for the given item type.
func (u *UserItems) Owned(t ItemType) []OwnedItem {
	switch t {
	case ItemTypeQuest:
		return u.OwnedQuests
	case ItemTypeFood:
		return u.OwnedFood
	case ItemTypeHatchingPotion:
		return u.OwnedHatchingPotions
	case ItemTypeEgg:
		return u.OwnedEggs
	}
	return nil
}

// SetOwned replaces the collection for the given item type.
func (u *UserItems) SetOwned(t ItemType, items []OwnedItem) {
	switch t {
	case ItemTypeQuest:
		u.OwnedQuests = items
	case ItemTypeFood:
		u.OwnedFood = items
	case ItemTypeHatchingPotion:
		u.OwnedHatchingPotions = items
	case ItemTypeEgg:
		u.OwnedEggs = items
	}
}

// Counts returns the number of distinct keys held per item type.
func (u *UserItems) Counts() map[ItemType]int {
	counts := make(map[ItemType]int, len(ItemTypes))
	for _, t := range ItemTypes {
		counts[t] = len(u.Owned(t))
	}
	return counts
}

// Totals returns the summed quantity held per item type. A sum that would
// exceed math.MaxInt is reported as math.MaxInt.
func (u *UserItems) Totals() map[ItemType]int {
	totals := make(map[ItemType]int, len(ItemTypes))
	for _, t := range ItemTypes {
		sum := 0
		for _, item := range u.Owned(t) {
			sum = saturatingAdd(sum, item.NumberOwned())
		}
		totals[t] = sum
	}
	return totals
}

// saturatingAdd adds two non-negative counts, clamping at math.MaxInt.
func saturatingAdd(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}
