// Package parser turns a single delimited line of user text into a
// validated record. Fields are checked in a fixed order and the first
// failing field wins; the returned error identifies that field.
package parser

import (
	"strings"
	"unicode"

	"github.com/r507/suguan-bot/internal/domain/errors"
	"github.com/r507/suguan-bot/internal/domain/format"
	"github.com/r507/suguan-bot/internal/domain/models"
)

const (
	scheduleFieldCount     = 5
	personalInfoFieldCount = 8
)

// ParseSchedule parses "Day, Time, Lokal, Gampanin, Language".
func ParseSchedule(text string) (*models.ScheduleRecord, error) {
	parts := splitAndTrim(text, ",")
	if len(parts) != scheduleFieldCount {
		return nil, &errors.ErrWrongValueCount{Got: len(parts), Expected: scheduleFieldCount}
	}

	day := format.Day(parts[0])
	dayFull, ok := format.DayFullNames[day]
	if !ok {
		return nil, &errors.ErrInvalidDay{Value: parts[0]}
	}

	clock, ok := format.Time(parts[1])
	if !ok {
		return nil, &errors.ErrInvalidTime{Value: parts[1]}
	}

	gampanin, ok := format.Gampanin(parts[3])
	if !ok {
		return nil, &errors.ErrInvalidGampanin{Value: parts[3]}
	}

	language, ok := format.Language(parts[4])
	if !ok {
		return nil, &errors.ErrInvalidLanguage{Value: parts[4]}
	}

	return &models.ScheduleRecord{
		Day:      day,
		DayFull:  dayFull,
		Time:     clock,
		Lokal:    format.Name(parts[2]),
		Gampanin: gampanin,
		Language: language,
	}, nil
}

// ParsePersonalInfo parses "First Name. Last Name. Uri. Assigned Lokal.
// District. Housing Address. Companion Chat ID. Companion Name". Splitting
// on periods is tried first; if that does not yield exactly 8 segments the
// line is re-split on commas (the older accepted delimiter).
//
// Uri is validated before the companion chat ID so that when both are
// wrong only the uri error is reported.
func ParsePersonalInfo(text string) (*models.PersonalInfoRecord, error) {
	parts := splitAndTrim(text, ".")
	if len(parts) != personalInfoFieldCount {
		parts = splitAndTrim(text, ",")
	}

	if len(parts) != personalInfoFieldCount {
		return nil, &errors.ErrWrongValueCount{Got: len(parts), Expected: personalInfoFieldCount}
	}

	uri, ok := format.Uri(parts[2])
	if !ok {
		return nil, &errors.ErrInvalidUri{Value: parts[2]}
	}

	companionID := parts[6]
	if !isDigits(companionID) {
		return nil, &errors.ErrInvalidCompanionID{Value: companionID}
	}

	return &models.PersonalInfoRecord{
		FirstName:       format.Name(parts[0]),
		LastName:        format.Name(parts[1]),
		Uri:             uri,
		UriDisplay:      format.UriDisplay(uri),
		Lokal:           format.Name(parts[3]),
		District:        format.Name(parts[4]),
		Housing:         format.Name(parts[5]),
		CompanionChatID: companionID,
		CompanionName:   format.Name(parts[7]),
	}, nil
}

// ParseConcern accepts any text as-is; there is nothing to validate.
func ParseConcern(text, userName string) *models.ConcernRecord {
	return &models.ConcernRecord{
		Message:  text,
		UserName: userName,
	}
}

func splitAndTrim(text, sep string) []string {
	parts := strings.Split(text, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
