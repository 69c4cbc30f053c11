package payload

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// DecodeEgg maps a content-catalog egg object onto an EggDefinition. Fields
// missing from the input keep their zero values. Unlike user items, a field
// of the wrong type fails the whole egg with a StructuralError.
func DecodeEgg(data []byte) (*domain.EggDefinition, error) {
	if _, err := decodeObject(data); err != nil {
		return nil, err
	}

	var egg domain.EggDefinition
	if err := json.Unmarshal(data, &egg); err != nil {
		return nil, &StructuralError{Err: err}
	}
	return &egg, nil
}

// DecodeEggs decodes the content-API shape {"<key>": {egg}, ...} and returns
// the definitions sorted by key. An entry without a key inherits its map key.
func DecodeEggs(data []byte) ([]*domain.EggDefinition, error) {
	entries, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	eggs := make([]*domain.EggDefinition, 0, len(keys))
	for _, key := range keys {
		egg, err := DecodeEgg(entries[key])
		if err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeEggFailed, key, err)
		}
		if egg.Key == "" {
			egg.Key = key
		}
		if egg.Key != key {
			return nil, &StructuralError{Err: fmt.Errorf(ErrMsgEggKeyMismatch, key, egg.Key)}
		}
		eggs = append(eggs, egg)
	}
	return eggs, nil
}
