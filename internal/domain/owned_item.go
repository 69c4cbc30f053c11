package domain

import "encoding/json"

// OwnedItem pairs a catalog item key with the quantity a user holds.
// Values are immutable once built; use NewOwnedItem.
type OwnedItem struct {
	key         string
	numberOwned int
	itemType    ItemType
}

// NewOwnedItem builds an owned item record.
func NewOwnedItem(key string, numberOwned int, itemType ItemType) OwnedItem {
	return OwnedItem{key: key, numberOwned: numberOwned, itemType: itemType}
}

// Key returns the catalog key of the item.
func (o OwnedItem) Key() string { return o.key }

// NumberOwned returns how many of the item the user holds.
func (o OwnedItem) NumberOwned() int { return o.numberOwned }

// ItemType returns the ownership category.
func (o OwnedItem) ItemType() ItemType { return o.itemType }

type ownedItemJSON struct {
	Key         string   `json:"key"`
	NumberOwned int      `json:"numberOwned"`
	ItemType    ItemType `json:"itemType"`
}

// MarshalJSON exposes the unexported fields for API responses and snapshots.
func (o OwnedItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(ownedItemJSON{Key: o.key, NumberOwned: o.numberOwned, ItemType: o.itemType})
}

// UnmarshalJSON restores a stored snapshot record.
func (o *OwnedItem) UnmarshalJSON(data []byte) error {
	var v ownedItemJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = NewOwnedItem(v.Key, v.NumberOwned, v.ItemType)
	return nil
}
