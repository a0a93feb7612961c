package table

// PlayState is the projected outcome for a roster slot this gameweek.
type PlayState string

const (
	PlayStateUnknown   PlayState = "unknown"
	PlayStatePlaying   PlayState = "playing"
	PlayStateBenched   PlayState = "benched"
	PlayStateSubbedIn  PlayState = "subbed_in"
	PlayStateSubbedOff PlayState = "subbed_off"
)

// PlayStatus pairs the state with the substitution partner when one exists:
// for subbed_in the player replaced, for subbed_off the replacement.
type PlayStatus struct {
	State      PlayState `json:"state"`
	SubbedWith int       `json:"subbed_with,omitempty"`
}

func Playing() PlayStatus { return PlayStatus{State: PlayStatePlaying} }

func Benched() PlayStatus { return PlayStatus{State: PlayStateBenched} }

func UnknownPlay() PlayStatus { return PlayStatus{State: PlayStateUnknown} }

func SubbedIn(replaces int) PlayStatus {
	return PlayStatus{State: PlayStateSubbedIn, SubbedWith: replaces}
}

func SubbedOff(replacedBy int) PlayStatus {
	return PlayStatus{State: PlayStateSubbedOff, SubbedWith: replacedBy}
}

// Counted reports whether the slot contributes to projected team points.
func (s PlayStatus) Counted() bool {
	return s.State == PlayStatePlaying || s.State == PlayStateSubbedIn
}
