package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"campusbot/internal/models"
)

const notAvailable = "N/A"

const studentCardTemplate = `
<div class="student-record-card">
    <div class="student-header">
        <div class="student-basic-info">
            <div class="student-avatar">
                <i class="fas fa-user-graduate"></i>
            </div>
            <div class="student-details">
                <h3>{{.Name}}</h3>
                <p class="usn">{{.USN}}</p>
                <p class="department">{{.Department}}</p>
            </div>
        </div>
        <div class="student-stats">
            <div class="stat-item">
                <span class="stat-label">CGPA</span>
                <span class="stat-value">{{.CGPA}}</span>
            </div>
            <div class="stat-item">
                <span class="stat-label">Attendance</span>
                <span class="stat-value">{{.Attendance}}</span>
            </div>
            <div class="stat-item">
                <span class="stat-label">Backlogs</span>
                <span class="stat-value">{{.Backlogs}}</span>
            </div>
        </div>
    </div>

    <div class="student-contact-info">
        <div class="contact-item"><i class="fas fa-envelope"></i><span>{{.Email}}</span></div>
        <div class="contact-item"><i class="fas fa-phone"></i><span>{{.Phone}}</span></div>
        <div class="contact-item"><i class="fas fa-map-marker-alt"></i><span>{{.Address}}</span></div>
    </div>

    <div class="academic-performance">
        <h4>Academic Performance</h4>
        <div class="semester-marks">
        {{- if .Semesters}}
            <div class="semester-grid">
            {{- range .Semesters}}
                <div class="semester-item {{.Class}}">
                    <span class="semester-name">{{.Name}}</span>
                    <span class="semester-sgpa">SGPA: {{.SGPA}}</span>
                    <span class="semester-backlogs">Backlogs: {{.Backlogs}}</span>
                </div>
            {{- end}}
            </div>
        {{- else}}
            <p>{{.NoMarks}}</p>
        {{- end}}
        </div>
    </div>

    <div class="fee-info">
        <h4>Fee Information</h4>
        <div class="fee-details">
            <div class="fee-item"><span>Status:</span><span class="fee-status {{.FeeStatusClass}}">{{.FeeStatus}}</span></div>
            <div class="fee-item"><span>Amount:</span><span>{{.FeeAmount}}</span></div>
            <div class="fee-item"><span>Due Date:</span><span>{{.FeeDueDate}}</span></div>
            <div class="fee-item"><span>Scholarship:</span><span>{{.Scholarship}}</span></div>
        </div>
    </div>

    <div class="additional-info">
        <h4>Additional Information</h4>
        <div class="info-grid">
            <div class="info-item"><i class="fas fa-home"></i><span>{{.Hostel}}</span></div>
            <div class="info-item"><i class="fas fa-book"></i><span>Library ID: {{.LibraryID}}</span></div>
            <div class="info-item"><i class="fas fa-hands-helping"></i><span>NSS Volunteer: {{.NSS}}</span></div>
            <div class="info-item"><i class="fas fa-users"></i><span>Clubs: {{.Clubs}}</span></div>
        </div>
    </div>
</div>
`

type semesterRow struct {
	Name     string
	Class    string
	SGPA     string
	Backlogs int
}

type studentCard struct {
	Name       string
	USN        string
	Department string
	CGPA       string
	Attendance string
	Backlogs   int

	Email   string
	Phone   string
	Address string

	Semesters []semesterRow
	NoMarks   string

	FeeStatus      string
	FeeStatusClass string
	FeeAmount      string
	FeeDueDate     string
	Scholarship    string

	Hostel    string
	LibraryID string
	NSS       string
	Clubs     string
}

// ResponseFormatter renders category listings and student record cards.
type ResponseFormatter struct {
	card *template.Template
}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{
		card: template.Must(template.New("student-card").Parse(studentCardTemplate)),
	}
}

// CategoryResponse lists every fact of category as a bullet under a bold heading.
func (f *ResponseFormatter) CategoryResponse(kb *models.KnowledgeBase, category models.Category) string {
	facts := kb.Facts(category)
	if len(facts) == 0 {
		return fmt.Sprintf(noCategoryInfoMessage, strings.ReplaceAll(string(category), "_", " "))
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("**%s:**\n\n", categoryLabel(category)))
	for _, fact := range facts {
		builder.WriteString("• ")
		builder.WriteString(fact)
		builder.WriteString("\n")
	}
	return builder.String()
}

// StudentRecord renders the HTML card for student. Missing fields show as N/A.
func (f *ResponseFormatter) StudentRecord(student *models.Student) (string, error) {
	if student == nil {
		return NoStudentRecord, nil
	}

	var buf bytes.Buffer
	if err := f.card.Execute(&buf, newStudentCard(student)); err != nil {
		return "", fmt.Errorf("failed to render student record: %w", err)
	}
	return buf.String(), nil
}

func newStudentCard(s *models.Student) studentCard {
	card := studentCard{
		Name:       orNA(s.Name),
		USN:        orNA(s.USN),
		Department: orNA(s.Department),
		CGPA:       fmt.Sprintf("%.2f", s.CGPA()),
		Attendance: orNA(s.Attendance),
		Backlogs:   s.TotalBacklogs(),
		Email:      orNA(s.Email),
		Phone:      orNA(s.Phone),
		Address:    orNA(s.Address),
		NoMarks:    semesterMarksEmptyLabel,
		FeeStatus:  notAvailable,
		FeeAmount:  notAvailable,
		FeeDueDate: notAvailable,

		Scholarship: notAvailable,
		Hostel:      notAvailable,
		LibraryID:   notAvailable,
		NSS:         "No",
	}

	for _, m := range s.Marks {
		class := "success"
		if m.Backlogs != 0 {
			class = "warning"
		}
		card.Semesters = append(card.Semesters, semesterRow{
			Name:     titleCase(m.Semester),
			Class:    class,
			SGPA:     formatSGPA(m.SGPA),
			Backlogs: m.Backlogs,
		})
	}

	if fees := s.Fees; fees != nil {
		card.FeeStatus = orNA(fees.Status)
		card.FeeStatusClass = strings.ToLower(fees.Status)
		card.FeeAmount = orNA(fees.Amount)
		card.FeeDueDate = orNA(fees.DueDate)
		card.Scholarship = orNA(fees.Scholarship)
	}

	if info := s.AdditionalInfo; info != nil {
		card.Hostel = orNA(info.Hostel)
		card.LibraryID = orNA(info.LibraryID)
		if info.NSSVolunteer {
			card.NSS = "Yes"
		}
		card.Clubs = strings.Join(info.ClubMembership, ", ")
	}

	return card
}

// formatSGPA prints whole numbers with one decimal place (9 -> "9.0").
func formatSGPA(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
