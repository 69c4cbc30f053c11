package payload

// Top-level payload field names
const (
	FieldGear            = "gear"
	FieldCurrentMount    = "currentMount"
	FieldCurrentPet      = "currentPet"
	FieldQuests          = "quests"
	FieldFood            = "food"
	FieldHatchingPotions = "hatchingPotions"
	FieldEggs            = "eggs"
)

// Degradation reasons
const (
	ReasonTypeMismatch   = "type mismatch"
	ReasonNotInteger     = "count is not an integer"
	ReasonNegativeCount  = "count is negative"
	ReasonInvalidPayload = "invalid field payload"
)

// Error messages
const (
	ErrMsgDecodeEggFailed = "failed to decode egg %q: %w"
	ErrMsgEggKeyMismatch  = "egg %q declares key %q"
)
