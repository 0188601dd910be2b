package service

import (
	"context"

	"campusbot/internal/models"
)

func testKnowledgeBase() *models.KnowledgeBase {
	return &models.KnowledgeBase{
		Admissions: []string{
			"Admission through KCET and COMEDK counselling for B.E. programs",
			"Lateral entry admission for diploma holders",
		},
		Courses: []string{"B.E. in eight engineering disciplines"},
		FeeStructure: []string{
			"Tuition fee for KCET students is ₹85,000 per year",
			"Hostel fee is ₹60,000 per year including mess",
		},
		Placements:  []string{"Top recruiters include Infosys, Wipro and TCS"},
		Facilities:  []string{"Central library with over 1,00,000 volumes", "Wi-Fi"},
		Departments: []string{"Computer Science and Engineering"},
		QAPairs: []models.QAPair{
			{Question: "What is the admission process?", Answer: "Admissions are through KCET and COMEDK."},
			{Question: "Who is the principal?", Answer: "Dr. H B Aravinda is the principal."},
		},
		Greetings: []string{"Hello! Welcome to BIET."},
		Fallbacks: []string{"Sorry, I did not get that."},
	}
}

type fixedPicker struct {
	idx int
}

func (p fixedPicker) Intn(n int) int {
	if p.idx >= n {
		return n - 1
	}
	return p.idx
}

type fakeMatcher struct {
	answer string
	score  float64
	calls  int
}

func (m *fakeMatcher) Query(string) (string, float64, bool) {
	m.calls++
	return m.answer, m.score, true
}

type fakeRecognizer struct {
	student *models.Student
	err     error
	calls   int
}

func (r *fakeRecognizer) Recognize(context.Context, []byte) (*models.Student, error) {
	r.calls++
	return r.student, r.err
}

type fakeStore struct {
	students []*models.Student
	err      error
}

func (s *fakeStore) ListStudents(context.Context) ([]*models.Student, error) {
	return s.students, s.err
}

func rahul() *models.Student {
	return &models.Student{
		ID:         "1BI20CS001",
		Name:       "Rahul Sharma",
		USN:        "1BI20CS001",
		Department: "Computer Science & Engineering",
		Email:      "rahul.sharma@bietdvg.edu",
		Phone:      "+91-9876543210",
		Attendance: "92%",
		Marks: models.SemesterMarks{
			{Semester: "semester_1", SGPA: 9.2},
			{Semester: "semester_2", SGPA: 9.0},
			{Semester: "semester_3", SGPA: 8.8},
			{Semester: "semester_4", SGPA: 9.1},
			{Semester: "semester_5", SGPA: 8.9},
		},
		Fees: &models.FeeInfo{
			Status:      "Paid",
			Amount:      "₹85,000",
			DueDate:     "31-03-2024",
			Scholarship: "Merit Scholarship",
		},
		AdditionalInfo: &models.AdditionalInfo{
			Hostel:         "Boys Hostel - Block A",
			LibraryID:      "LIB2020CS001",
			NSSVolunteer:   true,
			ClubMembership: []string{"Coding Club", "Robotics Club"},
		},
	}
}
