// Package sheets is the submission gateway: it appends rows to the
// organization's spreadsheet over the Google Sheets REST API. Every
// failure here is transient by contract; rejected rows do not exist.
package sheets

// Worksheet names, one per submission category.
const (
	SuguanSheet       = "Suguan Logs"
	PersonalInfoSheet = "Per Info DB Logs"
	InboxSheet        = "Inbox Message"
	ReviewSheet       = "Review Request"
	RegistrationSheet = "Registration"
	StatsSheet        = "Stats Request"
	YesSheet          = "Yes Log"
)

// TimestampLayout is the second column of every row, rendered in the
// organization's local timezone.
const TimestampLayout = "2006-01-02 15:04:05"

// Scope required on the service-account token.
const SpreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"
