package domain

// Outfit is a set of equipped gear keys, one per slot. Empty slots are nil.
type Outfit struct {
	Armor         *string `json:"armor,omitempty"`
	Back          *string `json:"back,omitempty"`
	Body          *string `json:"body,omitempty"`
	Eyewear       *string `json:"eyewear,omitempty"`
	Head          *string `json:"head,omitempty"`
	HeadAccessory *string `json:"headAccessory,omitempty"`
	Shield        *string `json:"shield,omitempty"`
	Weapon        *string `json:"weapon,omitempty"`
}

// UserGear describes the battle gear, the costume shown on the avatar, and the
// gear keys the user has ever owned.
type UserGear struct {
	Equipped Outfit          `json:"equipped"`
	Costume  Outfit          `json:"costume"`
	Owned    map[string]bool `json:"owned,omitempty"`
}
