package model

// TimedStatus identifies a timed affliction counter on a player.
type TimedStatus int

const (
	TimedPoisoned TimedStatus = iota
	TimedBlind
	TimedConfused
	TimedAfraid
	TimedParalyzed
	TimedHallu

	NumTimedStatuses
)

var timedNames = [NumTimedStatuses]string{
	"poisoned", "blind", "confused", "afraid", "paralyzed", "hallucinating",
}

func (t TimedStatus) String() string {
	if t < 0 || t >= NumTimedStatuses {
		return "unknown"
	}
	return timedNames[t]
}
