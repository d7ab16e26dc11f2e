package timeinterval

type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftNight     ShiftType = "night"
)

// Classify derives the shift type from its start: 06:00-13:59 morning,
// 14:00-21:59 afternoon, anything else night.
func Classify(start int) ShiftType {
	hour := start / 60
	switch {
	case hour >= 6 && hour < 14:
		return ShiftMorning
	case hour >= 14 && hour < 22:
		return ShiftAfternoon
	default:
		return ShiftNight
	}
}

// ClassifyClock is Classify for an HH:MM value.
func ClassifyClock(start string) (ShiftType, error) {
	minutes, err := TimeToMinutes(start)
	if err != nil {
		return "", err
	}
	return Classify(minutes), nil
}
