package model

// StreakTier grades the celebration intensity for a recurring completion.
type StreakTier int

const (
	TierSpark StreakTier = iota // streak below 5
	TierSurge                   // streak 5-9
	TierBlaze                   // streak 10 and up
)

// TierFor maps a streak count to its celebration tier.
func TierFor(streak int) StreakTier {
	switch {
	case streak >= 10:
		return TierBlaze
	case streak >= 5:
		return TierSurge
	default:
		return TierSpark
	}
}

// Icon returns the glyph shown with a streak notification for this tier.
func (t StreakTier) Icon() string {
	switch t {
	case TierBlaze:
		return "🔥"
	case TierSurge:
		return "⚡"
	default:
		return "✨"
	}
}

// NotificationAction is the optional follow-up offered with a notification.
type NotificationAction struct {
	// Label is the short button text, e.g. "Add Post".
	Label string `json:"label"`

	// TaskID identifies the task the action applies to.
	TaskID string `json:"task_id"`
}

// NotificationSpec is a transient user-facing message produced as the
// structured result of a store mutation. The store never displays it;
// surfacing is the dispatcher's job.
type NotificationSpec struct {
	Message string              `json:"message"`
	Action  *NotificationAction `json:"action,omitempty"`
}
