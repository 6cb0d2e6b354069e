package models

// ScheduleRecord is a validated suguan submission draft.
type ScheduleRecord struct {
	Day      string
	DayFull  string
	Time     string
	Lokal    string
	Gampanin string
	Language string
}

// PersonalInfoRecord holds a validated /info submission.
// Uri keeps the spelling accepted from the user (e.g. "Min"),
// UriDisplay is always the full tier name shown in confirmations.
type PersonalInfoRecord struct {
	FirstName       string
	LastName        string
	Uri             string
	UriDisplay      string
	Lokal           string
	District        string
	Housing         string
	CompanionChatID string
	CompanionName   string
}

// ConcernRecord is a free-text message for the bot owner.
type ConcernRecord struct {
	Message  string
	UserName string
}
