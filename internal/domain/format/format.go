// Package format holds the pure field normalizers used by the record
// parsers. Each function trims and canonicalizes a single raw field;
// validating functions additionally report whether the value belongs
// to the accepted set.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var ValidGampanin = map[string]struct{}{
	"S1": {}, "S2": {}, "R1": {}, "R2": {}, "S": {}, "R": {},
	"SL1": {}, "SL2": {}, "SLR1": {}, "SLR2": {},
}

var ValidLanguages = map[string]struct{}{
	"Tag": {}, "Eng": {}, "Spa": {}, "Por": {}, "Ita": {}, "Ger": {},
	"Fre": {}, "Jap": {}, "Kor": {}, "Man": {}, "Can": {}, "Ind": {},
	"Mal": {}, "Hin": {}, "Ara": {}, "Tha": {}, "Vie": {}, "Bur": {},
	"Rus": {}, "Swa": {}, "Tam": {}, "Ben": {}, "Tel": {}, "Tur": {},
	"Cam": {},
}

var validUri = map[string]struct{}{
	"Minister": {}, "Min": {}, "M": {},
	"Regular": {}, "Reg": {}, "R": {},
	"Student": {}, "Stu": {}, "S": {},
}

var dayNames = map[string]string{
	"mon": "Mon", "monday": "Mon",
	"tue": "Tue", "tuesday": "Tue",
	"wed": "Wed", "wednesday": "Wed",
	"thu": "Thu", "thursday": "Thu",
	"fri": "Fri", "friday": "Fri",
	"sat": "Sat", "saturday": "Sat",
	"sun": "Sun", "sunday": "Sun",
}

var DayFullNames = map[string]string{
	"Mon": "Monday",
	"Tue": "Tuesday",
	"Wed": "Wednesday",
	"Thu": "Thursday",
	"Fri": "Friday",
	"Sat": "Saturday",
	"Sun": "Sunday",
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Day normalizes a weekday to its 3-letter abbreviation. Unknown input
// is capitalized and truncated best-effort; callers check membership in
// DayFullNames to decide validity.
func Day(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if day, ok := dayNames[s]; ok {
		return day
	}

	capitalized := capitalize(s)
	if len(capitalized) > 3 {
		return capitalized[:3]
	}

	return capitalized
}

// Time normalizes a clock time to "H:MM AM"/"H:MM PM". The AM/PM suffix
// is optional; without one, hour >= 12 reads as PM (subtracting 12 when
// above 12) and hour 0 reads as 12 AM. A digits-only core longer than
// two characters is split as HHMM, otherwise it is a bare hour.
func Time(s string) (string, bool) {
	s = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "")

	var period string

	switch {
	case strings.Contains(s, "AM"):
		period = "AM"
	case strings.Contains(s, "PM"):
		period = "PM"
	}

	digits := nonDigits.ReplaceAllString(s, "")
	if digits == "" {
		return "", false
	}

	var hours, minutes int

	var err error

	if len(digits) <= 2 {
		hours, err = strconv.Atoi(digits)
		if err != nil {
			return "", false
		}
	} else {
		hours, err = strconv.Atoi(digits[:len(digits)-2])
		if err != nil {
			return "", false
		}

		minutes, err = strconv.Atoi(digits[len(digits)-2:])
		if err != nil {
			return "", false
		}
	}

	if period == "" {
		if hours >= 12 {
			period = "PM"
			if hours > 12 {
				hours -= 12
			}
		} else {
			period = "AM"
			if hours == 0 {
				hours = 12
			}
		}
	}

	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return "", false
	}

	return fmt.Sprintf("%d:%02d %s", hours, minutes, period), true
}

// Gampanin validates a duty code against the closed set, case-insensitively.
func Gampanin(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	_, ok := ValidGampanin[code]

	return code, ok
}

// Language reduces the input to its title-cased first three letters and
// checks it against the closed language set.
func Language(s string) (string, bool) {
	lang := Name(s)
	if len(lang) > 3 {
		lang = lang[:3]
	}

	_, ok := ValidLanguages[lang]

	return lang, ok
}

// Uri normalizes a residency tier. Exact (title-cased) spellings from
// the accepted set pass through unchanged; anything else falls back to
// a first-letter match, checked in the order m, r, s.
func Uri(s string) (string, bool) {
	uri := Name(s)
	if _, ok := validUri[uri]; ok {
		return uri, true
	}

	switch lower := strings.ToLower(uri); {
	case strings.HasPrefix(lower, "m"):
		return "Minister", true
	case strings.HasPrefix(lower, "r"):
		return "Regular", true
	case strings.HasPrefix(lower, "s"):
		return "Student", true
	}

	return "", false
}

// UriDisplay expands an accepted tier spelling to the full tier name.
func UriDisplay(uri string) string {
	switch uri {
	case "Min", "M":
		return "Minister"
	case "Reg", "R":
		return "Regular"
	case "Stu", "S":
		return "Student"
	default:
		return uri
	}
}

// Name trims the input and capitalizes every whitespace-separated word.
// Also used for lokal, district and housing free text.
func Name(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}

	return strings.Join(words, " ")
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return ""
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
