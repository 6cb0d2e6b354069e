package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r507/suguan-bot/internal/domain/errors"
	"github.com/r507/suguan-bot/internal/domain/parser"
)

func TestParseSchedule(t *testing.T) {
	record, err := parser.ParseSchedule("Thu, 5:45AM, Green Condo, R1, Tag")
	require.NoError(t, err)

	assert.Equal(t, "Thu", record.Day)
	assert.Equal(t, "Thursday", record.DayFull)
	assert.Equal(t, "5:45 AM", record.Time)
	assert.Equal(t, "Green Condo", record.Lokal)
	assert.Equal(t, "R1", record.Gampanin)
	assert.Equal(t, "Tag", record.Language)
}

func TestParseSchedule_NormalizesFields(t *testing.T) {
	record, err := parser.ParseSchedule("thursday, 1345, green condo, slr2, tagalog")
	require.NoError(t, err)

	assert.Equal(t, "Thu", record.Day)
	assert.Equal(t, "1:45 PM", record.Time)
	assert.Equal(t, "Green Condo", record.Lokal)
	assert.Equal(t, "SLR2", record.Gampanin)
	assert.Equal(t, "Tag", record.Language)
}

func TestParseSchedule_WrongValueCount(t *testing.T) {
	_, err := parser.ParseSchedule("Thu, 5:45AM, Green Condo, R1")

	var countErr *errors.ErrWrongValueCount

	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 5, countErr.Expected)
	assert.Equal(t, 4, countErr.Got)
}

func TestParseSchedule_FirstFailingFieldWins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "invalid day reported before invalid time",
			input:    "Someday, 99:99, Green Condo, X9, Xx",
			expected: &errors.ErrInvalidDay{},
		},
		{
			name:     "invalid time reported before invalid gampanin",
			input:    "Thu, 99:99, Green Condo, X9, Xx",
			expected: &errors.ErrInvalidTime{},
		},
		{
			name:     "invalid gampanin reported before invalid language",
			input:    "Thu, 5:45AM, Green Condo, X9, Xx",
			expected: &errors.ErrInvalidGampanin{},
		},
		{
			name:     "invalid language reported last",
			input:    "Thu, 5:45AM, Green Condo, R1, Xx",
			expected: &errors.ErrInvalidLanguage{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseSchedule(tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParseSchedule_LocationIsNotValidated(t *testing.T) {
	record, err := parser.ParseSchedule("Thu, 5AM, anything at all goes here, R1, Tag")
	require.NoError(t, err)
	assert.Equal(t, "Anything At All Goes Here", record.Lokal)
}

func TestParsePersonalInfo_PeriodDelimited(t *testing.T) {
	record, err := parser.ParsePersonalInfo(
		"Juan. Dela Cruz. Minister. V Luna. District 1. Green Condo Unit#. 55247753. Maria Dela Cruz")
	require.NoError(t, err)

	assert.Equal(t, "Juan", record.FirstName)
	assert.Equal(t, "Dela Cruz", record.LastName)
	assert.Equal(t, "Minister", record.Uri)
	assert.Equal(t, "Minister", record.UriDisplay)
	assert.Equal(t, "V Luna", record.Lokal)
	assert.Equal(t, "District 1", record.District)
	assert.Equal(t, "Green Condo Unit#", record.Housing)
	assert.Equal(t, "55247753", record.CompanionChatID)
	assert.Equal(t, "Maria Dela Cruz", record.CompanionName)
}

func TestParsePersonalInfo_CommaFallback(t *testing.T) {
	// A period inside the address breaks the period split, so the comma
	// delimiter takes over.
	record, err := parser.ParsePersonalInfo(
		"Juan, Dela Cruz, Min, V Luna, Central, St. Peter Housing, 0, None")
	require.NoError(t, err)

	assert.Equal(t, "Min", record.Uri)
	assert.Equal(t, "Minister", record.UriDisplay)
	assert.Equal(t, "St. Peter Housing", record.Housing)
	assert.Equal(t, "0", record.CompanionChatID)
	assert.Equal(t, "None", record.CompanionName)
}

func TestParsePersonalInfo_BothDelimitersFail(t *testing.T) {
	_, err := parser.ParsePersonalInfo("Juan. Dela Cruz. Minister")

	var countErr *errors.ErrWrongValueCount

	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 8, countErr.Expected)
}

func TestParsePersonalInfo_UriCheckedBeforeCompanionID(t *testing.T) {
	// Both fields are invalid; only the uri error is reported.
	_, err := parser.ParsePersonalInfo(
		"Juan. Dela Cruz. Worker. V Luna. Central. Green Condo. not-a-number. Maria")

	assert.ErrorIs(t, err, &errors.ErrInvalidUri{})
}

func TestParsePersonalInfo_CompanionIDMustBeDigits(t *testing.T) {
	_, err := parser.ParsePersonalInfo(
		"Juan. Dela Cruz. Minister. V Luna. Central. Green Condo. 55a247. Maria")

	assert.ErrorIs(t, err, &errors.ErrInvalidCompanionID{})
}

func TestParsePersonalInfo_ZerosMeanNoCompanion(t *testing.T) {
	record, err := parser.ParsePersonalInfo(
		"Juan. Dela Cruz. Minister. V Luna. Central. Green Condo. 000. None")
	require.NoError(t, err)
	assert.Equal(t, "000", record.CompanionChatID)
}

func TestParseConcern(t *testing.T) {
	record := parser.ParseConcern("the reminders arrive twice po", "Juan Dela Cruz")

	assert.Equal(t, "the reminders arrive twice po", record.Message)
	assert.Equal(t, "Juan Dela Cruz", record.UserName)
}
