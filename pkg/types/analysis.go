package types

// Density buckets the fraction of a standard 8-hour workday spent in
// non-private meetings.
type Density string

const (
	DensityLight    Density = "light"
	DensityModerate Density = "moderate"
	DensityHeavy    Density = "heavy"
)

// Activity is what the user is doing right now, derived from whichever
// visible event contains the analysis time.
type Activity string

const (
	ActivityWorking Activity = "working"
	ActivityFocus   Activity = "focus"
	ActivityDesign  Activity = "design"
	ActivityCoding  Activity = "coding"
	ActivityMeeting Activity = "meeting"
)

// Flags are the special-condition markers detected across the day's
// visible events. Each flag accumulates independently: one matching
// event sets it for the whole analysis.
type Flags struct {
	OOO                bool `json:"ooo"`
	FocusTime          bool `json:"focusTime"`
	Traveling          bool `json:"traveling"`
	HasPrivateMeetings bool `json:"hasPrivateMeetings"`
}

// CalendarAnalysis is the derived summary of a day's calendar. It is
// created fresh per run and never mutated after being returned.
//
// Nothing in here may be derived from a private event's text: private
// events contribute only to TotalEvents and Flags.HasPrivateMeetings.
type CalendarAnalysis struct {
	TotalEvents     int      `json:"totalEvents"`
	MeetingMinutes  int      `json:"meetingMinutes"`
	Density         Density  `json:"meetingDensity"`
	Flags           Flags    `json:"flags"`
	CurrentActivity Activity `json:"currentActivity"`
}
