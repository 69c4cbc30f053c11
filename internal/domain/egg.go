package domain

// EggDefinition is static catalog metadata for an egg. It is loaded once and
// shared read-only; it is not a per-user ownership record.
type EggDefinition struct {
	Key       string  `json:"key" jsonschema:"minLength=1"`
	Text      string  `json:"text"`
	Notes     string  `json:"notes"`
	Value     float64 `json:"value" jsonschema:"minimum=0"`
	Adjective string  `json:"adjective"`
	ItemType  string  `json:"itemType"`
}

// OwnedItemType maps the catalog item type onto an ownership category.
func (e *EggDefinition) OwnedItemType() (ItemType, bool) {
	if e.ItemType == "" {
		return ItemTypeEgg, true
	}
	t, err := ParseItemType(e.ItemType)
	if err != nil {
		return "", false
	}
	return t, true
}
