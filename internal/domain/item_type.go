package domain

import (
	"encoding/json"
	"fmt"
)

// ItemType tags an owned item with the inventory category it was decoded from.
type ItemType string

const (
	ItemTypeQuest          ItemType = "quests"
	ItemTypeFood           ItemType = "food"
	ItemTypeHatchingPotion ItemType = "hatchingPotions"
	ItemTypeEgg            ItemType = "eggs"
)

// ItemTypes lists every ownership category in payload order.
var ItemTypes = []ItemType{
	ItemTypeQuest,
	ItemTypeFood,
	ItemTypeHatchingPotion,
	ItemTypeEgg,
}

// ParseItemType accepts either the payload key ("hatchingPotions") or the
// singular name ("hatchingPotion").
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case string(ItemTypeQuest), "quest":
		return ItemTypeQuest, nil
	case string(ItemTypeFood):
		return ItemTypeFood, nil
	case string(ItemTypeHatchingPotion), "hatchingPotion":
		return ItemTypeHatchingPotion, nil
	case string(ItemTypeEgg), "egg":
		return ItemTypeEgg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItemType, s)
}

// Valid reports whether t is one of the four ownership categories.
func (t ItemType) Valid() bool {
	_, err := ParseItemType(string(t))
	return err == nil
}

func (t ItemType) String() string {
	return string(t)
}

// UnmarshalJSON rejects item types outside the closed set.
func (t *ItemType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseItemType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
