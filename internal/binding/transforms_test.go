package binding

import (
	"testing"

	"github.com/jonathan/resume-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Senior Software Engineer", titleCase("senior software engineer"))
	assert.Equal(t, "Go Developer", titleCase("GO DEVELOPER"))
	assert.Equal(t, "", titleCase(""))
}

func TestFormatPhone_TenDigits(t *testing.T) {
	assert.Equal(t, "(415) 555-0142", formatPhone("415-555-0142"))
	assert.Equal(t, "(415) 555-0142", formatPhone("4155550142"))
}

func TestFormatPhone_InternationalPrefix(t *testing.T) {
	assert.Equal(t, "+1 (415) 555-0142", formatPhone("+1 415 555 0142"))
	assert.Equal(t, "+44 (207) 946-0958", formatPhone("442079460958"))
}

func TestFormatPhone_TooShortPassesThrough(t *testing.T) {
	assert.Equal(t, "555-0142", formatPhone("555-0142"))
}

func TestFormatDate_ReparsesAcceptedLayouts(t *testing.T) {
	assert.Equal(t, "Mar 2021", formatDate("2021-03", "Jan 2006"))
	assert.Equal(t, "Mar 2021", formatDate("2021-03-15", "Jan 2006"))
	assert.Equal(t, "2021", formatDate("March 2021", "2006"))
}

func TestFormatDate_UnparseablePassesThrough(t *testing.T) {
	assert.Equal(t, "sometime", formatDate("sometime", "Jan 2006"))
}

func TestApplyTransform_RecordsOnlyActualChanges(t *testing.T) {
	_, applied := applyTransform(TransformUppercase, "GO", nil)
	assert.False(t, applied)

	out, applied := applyTransform(TransformUppercase, "go", nil)
	assert.True(t, applied)
	assert.Equal(t, "GO", out)
}

func TestApplyTransform_FanOutSlice(t *testing.T) {
	out, applied := applyTransform(TransformTitleCase, []any{"staff engineer", "tech lead"}, nil)

	assert.True(t, applied)
	assert.Equal(t, []any{"Staff Engineer", "Tech Lead"}, out)
}

func TestApplyTransform_DateFormatUsesRules(t *testing.T) {
	rules := &types.FieldRules{DateFormat: "01/2006"}

	out, applied := applyTransform(TransformDateFormat, "2021-03", rules)

	assert.True(t, applied)
	assert.Equal(t, "03/2021", out)
}

func TestApplyTransform_UnknownNamePassesThrough(t *testing.T) {
	out, applied := applyTransform("reverse", "abc", nil)

	assert.False(t, applied)
	assert.Equal(t, "abc", out)
}
