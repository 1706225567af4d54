package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func validInput() CreateReportInput {
	return CreateReportInput{
		IssueType: "pothole",
		Latitude:  floatPtr(40.7128),
		Longitude: floatPtr(-74.006),
	}
}

func TestValidateReportInputAcceptsMinimalSubmission(t *testing.T) {
	assert.NoError(t, validateReportInput(validInput()))
}

func TestValidateReportInputRequiresIssueType(t *testing.T) {
	in := validInput()
	in.IssueType = ""

	err := validateReportInput(in)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateReportInputRequiresCoordinates(t *testing.T) {
	in := validInput()
	in.Latitude = nil
	assert.ErrorIs(t, validateReportInput(in), ErrValidation)

	in = validInput()
	in.Longitude = nil
	assert.ErrorIs(t, validateReportInput(in), ErrValidation)
}

func TestValidateReportInputZeroCoordinatesAreValid(t *testing.T) {
	in := validInput()
	in.Latitude = floatPtr(0)
	in.Longitude = floatPtr(0)

	assert.NoError(t, validateReportInput(in))
}

func TestValidateReportInputSeverityBounds(t *testing.T) {
	for _, severity := range []int{1, 3, 5} {
		in := validInput()
		in.Severity = intPtr(severity)
		assert.NoError(t, validateReportInput(in), "severity %d", severity)
	}
	for _, severity := range []int{0, -1, 6} {
		in := validInput()
		in.Severity = intPtr(severity)
		assert.ErrorIs(t, validateReportInput(in), ErrValidation, "severity %d", severity)
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, clampLimit(0))
	assert.Equal(t, DefaultListLimit, clampLimit(-5))
	assert.Equal(t, 42, clampLimit(42))
	assert.Equal(t, MaxListLimit, clampLimit(MaxListLimit))
	assert.Equal(t, MaxListLimit, clampLimit(5000))
}
