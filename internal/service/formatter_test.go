package service

import (
	"testing"

	"campusbot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseFormatter_CategoryResponse(t *testing.T) {
	f := NewResponseFormatter()
	kb := &models.KnowledgeBase{Placements: []string{"95% placement rate", "Top recruiter: Infosys"}}

	assert.Equal(t, "**Placements:**\n\n• 95% placement rate\n• Top recruiter: Infosys\n",
		f.CategoryResponse(kb, models.CategoryPlacements))
	assert.Equal(t, "❌ No information available about fee structure.",
		f.CategoryResponse(kb, models.CategoryFeeStructure))
}

func TestResponseFormatter_StudentRecord_ComputesCGPAAndBacklogs(t *testing.T) {
	f := NewResponseFormatter()

	card, err := f.StudentRecord(rahul())

	require.NoError(t, err)
	assert.Contains(t, card, `<span class="stat-value">9.00</span>`)
	assert.Contains(t, card, `<span class="stat-value">0</span>`)
	assert.Contains(t, card, `<span class="stat-value">92%</span>`)
	assert.Contains(t, card, `<div class="semester-item success">`)
	assert.NotContains(t, card, `semester-item warning`)
	assert.Contains(t, card, `<span class="semester-name">Semester 1</span>`)
	assert.Contains(t, card, "SGPA: 9.2")
	assert.Contains(t, card, "SGPA: 9.0")
	assert.Contains(t, card, `fee-status paid`)
	assert.Contains(t, card, "NSS Volunteer: Yes")
	assert.Contains(t, card, "Clubs: Coding Club, Robotics Club")
	assert.Contains(t, card, "Computer Science &amp; Engineering")
}

func TestResponseFormatter_StudentRecord_BacklogsMarkWarning(t *testing.T) {
	f := NewResponseFormatter()
	student := &models.Student{
		Name: "Amit Kumar",
		Marks: models.SemesterMarks{
			{Semester: "semester_1", SGPA: 8.0},
			{Semester: "semester_2", SGPA: 7.5, Backlogs: 1},
		},
	}

	card, err := f.StudentRecord(student)

	require.NoError(t, err)
	assert.Contains(t, card, `<div class="semester-item warning">`)
	assert.Contains(t, card, `<span class="stat-value">7.75</span>`)
	assert.Contains(t, card, `<span class="stat-value">1</span>`)
}

func TestResponseFormatter_StudentRecord_MissingFieldsShowNA(t *testing.T) {
	f := NewResponseFormatter()

	card, err := f.StudentRecord(&models.Student{})

	require.NoError(t, err)
	assert.Contains(t, card, "<h3>N/A</h3>")
	assert.Contains(t, card, `<span class="stat-value">0.00</span>`)
	assert.Contains(t, card, "No marks data available")
	assert.Contains(t, card, "Library ID: N/A")
	assert.Contains(t, card, "NSS Volunteer: No")
}

func TestResponseFormatter_StudentRecord_Nil(t *testing.T) {
	card, err := NewResponseFormatter().StudentRecord(nil)

	require.NoError(t, err)
	assert.Equal(t, NoStudentRecord, card)
}
