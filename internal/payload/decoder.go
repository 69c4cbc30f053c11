// Package payload turns raw user-inventory JSON into domain values.
//
// Decoding is best effort at the field level: a field with the wrong shape is
// dropped to its empty value and noted in the Report, and only a payload that
// is not a JSON object at all fails.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"sort"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// ownedFields binds each dynamic key->count mapping to its item type.
var ownedFields = []struct {
	name     string
	itemType domain.ItemType
}{
	{FieldQuests, domain.ItemTypeQuest},
	{FieldFood, domain.ItemTypeFood},
	{FieldHatchingPotions, domain.ItemTypeHatchingPotion},
	{FieldEggs, domain.ItemTypeEgg},
}

var nullLiteral = []byte("null")

// Decoder decodes user-inventory payloads. The zero value is ready to use and
// it holds no state, so one Decoder may be shared between goroutines.
type Decoder struct{}

// NewDecoder creates a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeUserItems decodes a payload with a shared Decoder and drops the report.
func DecodeUserItems(data []byte) (*domain.UserItems, error) {
	items, _, err := NewDecoder().Decode(data)
	return items, err
}

// Decode converts a user-inventory object into UserItems.
func (d *Decoder) Decode(data []byte) (*domain.UserItems, Report, error) {
	var report Report

	fields, err := decodeObject(data)
	if err != nil {
		return nil, report, err
	}

	items := domain.NewUserItems()
	items.Gear = attempt(fields, FieldGear, decodeGear, &report)
	items.CurrentMount = attempt(fields, FieldCurrentMount, decodeOptionalString, &report)
	items.CurrentPet = attempt(fields, FieldCurrentPet, decodeOptionalString, &report)

	for _, f := range ownedFields {
		counts := attempt(fields, f.name, decodeCounts, &report)
		items.SetOwned(f.itemType, toOwnedItems(counts, f.itemType))
	}

	return items, report, nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &StructuralError{Err: err}
	}
	if fields == nil {
		return nil, &StructuralError{}
	}
	return fields, nil
}

// attempt decodes one optional field. Absent and null fields yield the zero
// value silently; decode failures yield the zero value and a report entry.
func attempt[T any](fields map[string]json.RawMessage, name string, decode func(json.RawMessage) (T, error), report *Report) T {
	var zero T

	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), nullLiteral) {
		return zero
	}

	v, err := decode(raw)
	if err != nil {
		report.add(name, reasonFor(err))
		return zero
	}
	return v
}

func decodeGear(raw json.RawMessage) (*domain.UserGear, error) {
	var gear domain.UserGear
	if err := json.Unmarshal(raw, &gear); err != nil {
		return nil, err
	}
	return &gear, nil
}

// decodeOptionalString treats the empty string as "nothing equipped".
func decodeOptionalString(raw json.RawMessage) (*string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// countPrecision keeps every int64 exact when parsing a count.
const countPrecision = 256

var (
	errNotInteger    = errors.New(ReasonNotInteger)
	errNegativeCount = errors.New(ReasonNegativeCount)
)

// decodeCounts decodes an object of key -> non-negative integer. Integral
// floats such as 3.0 are accepted; one bad entry invalidates the mapping.
func decodeCounts(raw json.RawMessage) (map[string]int, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(entries))
	for key, value := range entries {
		n, err := parseCount(value)
		if err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, nil
}

func parseCount(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, errNotInteger
	}

	// Integer, fraction and exponent forms share one exact range check.
	f, _, err := big.ParseFloat(num.String(), 10, countPrecision, big.ToNearestEven)
	if err != nil || !f.IsInt() {
		return 0, errNotInteger
	}
	n64, acc := f.Int64()
	if acc != big.Exact {
		return 0, errNotInteger
	}
	n := int(n64)
	if n < 0 {
		return 0, errNegativeCount
	}
	return n, nil
}

// toOwnedItems builds one record per key, sorted by key for stable output.
func toOwnedItems(counts map[string]int, itemType domain.ItemType) []domain.OwnedItem {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	items := make([]domain.OwnedItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, domain.NewOwnedItem(key, counts[key], itemType))
	}
	return items
}

func reasonFor(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return ReasonTypeMismatch
	case errors.Is(err, errNotInteger):
		return ReasonNotInteger
	case errors.Is(err, errNegativeCount):
		return ReasonNegativeCount
	}
	return ReasonInvalidPayload
}
