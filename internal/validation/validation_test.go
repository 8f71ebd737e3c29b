package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredLength(t *testing.T) {
	var errs Errors
	errs.RequiredLength("Title", "", 4, 50)
	errs.RequiredLength("Name", "abc", 4, 30)
	errs.RequiredLength("Director", "Anna", 4, 30)
	assert.Len(t, errs, 2)
	assert.Equal(t, "Title", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "Name", errs[1].Field)
}

func TestLengthCountsRunes(t *testing.T) {
	var errs Errors
	errs.Length("Name", "Ñoño", 4, 4)
	assert.Empty(t, errs)
}

func TestRanges(t *testing.T) {
	var errs Errors
	errs.IntRange("NumberOfHalls", 0, 1, 10)
	errs.IntRange("NumberOfHalls", 10, 1, 10)
	errs.FloatRange("Rating", 10.01, 0, 10)
	errs.FloatRange("Rating", 0, 0, 10)
	assert.Len(t, errs, 2)
	assert.Equal(t, "NumberOfHalls: must be between 1 and 10", errs[0].Error())
}

func TestMatchAndPresent(t *testing.T) {
	re := regexp.MustCompile(`^\d{3}$`)
	var errs Errors
	errs.Match("Code", "123", re)
	errs.Match("Code", "12a", re)
	assert.False(t, errs.Present("PlayId", false))
	assert.Len(t, errs, 2)
}
