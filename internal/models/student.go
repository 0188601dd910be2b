package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidMarks = errors.New("marks must be an object or an array")

// Student is an external read-only record. Any field may be absent; renderers substitute defaults.
type Student struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	USN         string  `json:"usn" db:"usn"`
	Department  string  `json:"department" db:"department"`
	Semester    string  `json:"semester" db:"semester"`
	Email       string  `json:"email" db:"email"`
	Phone       string  `json:"phone" db:"phone"`
	Address     string  `json:"address" db:"address"`
	DOB         string  `json:"dob" db:"dob"`
	BloodGroup  string  `json:"blood_group" db:"blood_group"`
	Attendance  string  `json:"attendance" db:"attendance"`
	Grades      string  `json:"grades" db:"grades"`
	CurrentCGPA float64 `json:"current_cgpa" db:"current_cgpa"`

	Marks          SemesterMarks   `json:"marks" db:"marks"`
	Fees           *FeeInfo        `json:"fees,omitempty" db:"fees"`
	AdditionalInfo *AdditionalInfo `json:"additional_info,omitempty" db:"additional_info"`
}

type SemesterMark struct {
	Semester string  `json:"semester"`
	SGPA     float64 `json:"sgpa"`
	Backlogs int     `json:"backlogs"`
}

// SemesterMarks keeps semesters in the order they were declared.
type SemesterMarks []SemesterMark

type FeeInfo struct {
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	DueDate     string `json:"due_date"`
	Scholarship string `json:"scholarship"`
}

type AdditionalInfo struct {
	Hostel         string   `json:"hostel"`
	LibraryID      string   `json:"library_id"`
	NSSVolunteer   bool     `json:"nss_volunteer"`
	ClubMembership []string `json:"club_membership"`
}

// CGPA is the plain mean of the semester SGPAs, 0 without marks.
func (s *Student) CGPA() float64 {
	if len(s.Marks) == 0 {
		return 0
	}
	var sum float64
	for _, m := range s.Marks {
		sum += m.SGPA
	}
	return sum / float64(len(s.Marks))
}

func (s *Student) TotalBacklogs() int {
	total := 0
	for _, m := range s.Marks {
		total += m.Backlogs
	}
	return total
}

// UnmarshalJSON accepts either an ordered list of marks or an object keyed
// by semester name ({"semester_1": {"sgpa": 9.2, "backlogs": 0}}), keeping key order.
func (m *SemesterMarks) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}

	if data[0] == '[' {
		var list []SemesterMark
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*m = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidMarks
	}

	var marks SemesterMarks
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return ErrInvalidMarks
		}

		var mark SemesterMark
		if err := dec.Decode(&mark); err != nil {
			return fmt.Errorf("failed to decode marks for %s: %w", key, err)
		}
		mark.Semester = key
		marks = append(marks, mark)
	}

	*m = marks
	return nil
}
