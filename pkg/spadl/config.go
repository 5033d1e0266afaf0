package spadl

// Pitch holds the dimensions of the playing field in SPADL coordinates
type Pitch struct {
	Length float64 `json:"length" mapstructure:"length"` // x axis
	Width  float64 `json:"width" mapstructure:"width"`   // y axis
}

// Default pitch dimensions
const (
	FieldLength = 105.0
	FieldWidth  = 68.0
)

// DefaultPitch returns the standard 105x68 pitch
func DefaultPitch() Pitch {
	return Pitch{Length: FieldLength, Width: FieldWidth}
}

// GoalCenter returns the center of the goal a left-to-right team attacks
func (p Pitch) GoalCenter() (x, y float64) {
	return p.Length, p.Width / 2
}

var spadlActionTypes = []string{
	"pass",
	"cross",
	"throw_in",
	"freekick_crossed",
	"freekick_short",
	"corner_crossed",
	"corner_short",
	"take_on",
	"foul",
	"tackle",
	"interception",
	"shot",
	"shot_penalty",
	"shot_freekick",
	"keeper_save",
	"keeper_claim",
	"keeper_punch",
	"keeper_pick_up",
	"clearance",
	"bad_touch",
	"non_action",
	"dribble",
	"goalkick",
}

// atomic actions that only exist as point events
var atomicActionTypes = []string{
	"receival",
	"out",
	"offside",
	"goal",
	"owngoal",
	"yellow_card",
	"red_card",
	"corner",
	"freekick",
}

var bodyParts = []string{
	"foot",
	"head",
	"other",
	"head/other",
	"foot_left",
	"foot_right",
}

// Vocabulary is the fixed, ordered set of categories the feature functions
// encode against. Index in a slice is the category id.
type Vocabulary struct {
	Pitch       Pitch
	actionTypes []string
	bodyParts   []string
}

// DefaultVocabulary returns the atomic-SPADL vocabulary on a default pitch
func DefaultVocabulary() *Vocabulary {
	types := make([]string, 0, len(spadlActionTypes)+len(atomicActionTypes))
	types = append(types, spadlActionTypes...)
	types = append(types, atomicActionTypes...)
	return NewVocabulary(DefaultPitch(), types, bodyParts)
}

// NewVocabulary creates a vocabulary from explicit category lists.
// The lists are copied.
func NewVocabulary(pitch Pitch, actionTypes, bodyParts []string) *Vocabulary {
	return &Vocabulary{
		Pitch:       pitch,
		actionTypes: append([]string(nil), actionTypes...),
		bodyParts:   append([]string(nil), bodyParts...),
	}
}

// ActionTypes returns a copy of the action type names in id order
func (v *Vocabulary) ActionTypes() []string {
	return append([]string(nil), v.actionTypes...)
}

// BodyParts returns a copy of the body part names in id order
func (v *Vocabulary) BodyParts() []string {
	return append([]string(nil), v.bodyParts...)
}

// ActionTypeID returns the id of an action type name
func (v *Vocabulary) ActionTypeID(name string) (int, bool) {
	return indexOf(v.actionTypes, name)
}

// ActionTypeName returns the name for an action type id
func (v *Vocabulary) ActionTypeName(id int) (string, bool) {
	if id < 0 || id >= len(v.actionTypes) {
		return "", false
	}
	return v.actionTypes[id], true
}

// BodyPartID returns the id of a body part name
func (v *Vocabulary) BodyPartID(name string) (int, bool) {
	return indexOf(v.bodyParts, name)
}

// BodyPartName returns the name for a body part id
func (v *Vocabulary) BodyPartName(id int) (string, bool) {
	if id < 0 || id >= len(v.bodyParts) {
		return "", false
	}
	return v.bodyParts[id], true
}

func indexOf(values []string, name string) (int, bool) {
	for i, v := range values {
		if v == name {
			return i, true
		}
	}
	return -1, false
}
