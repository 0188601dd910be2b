package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"campusbot/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const studentsSchema = `
CREATE TABLE IF NOT EXISTS students (
    id              TEXT PRIMARY KEY,
    name            TEXT,
    usn             TEXT,
    department      TEXT,
    semester        TEXT,
    email           TEXT,
    phone           TEXT,
    address         TEXT,
    dob             TEXT,
    blood_group     TEXT,
    attendance      TEXT,
    grades          TEXT,
    current_cgpa    DOUBLE PRECISION,
    marks           JSONB,
    fees            JSONB,
    additional_info JSONB
)`

var studentColumns = []string{
	"id",
	"COALESCE(name, '')",
	"COALESCE(usn, '')",
	"COALESCE(department, '')",
	"COALESCE(semester, '')",
	"COALESCE(email, '')",
	"COALESCE(phone, '')",
	"COALESCE(address, '')",
	"COALESCE(dob, '')",
	"COALESCE(blood_group, '')",
	"COALESCE(attendance, '')",
	"COALESCE(grades, '')",
	"COALESCE(current_cgpa, 0)",
	"marks",
	"fees",
	"additional_info",
}

// PostgresStudentRepository reads student records from the students table.
// Marks are stored as a JSON array so semester order survives JSONB key sorting.
type PostgresStudentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresStudentRepository(db *pgxpool.Pool, logger *zap.Logger) *PostgresStudentRepository {
	return &PostgresStudentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PostgresStudentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, studentsSchema); err != nil {
		return fmt.Errorf("failed to create students table: %w", err)
	}
	return nil
}

func listStudentsQuery() squirrel.SelectBuilder {
	return squirrel.Select(studentColumns...).
		From("students").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *PostgresStudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := listStudentsQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var (
			s                          models.Student
			marks, fees, additionalRaw []byte
		)
		if err := rows.Scan(
			&s.ID, &s.Name, &s.USN, &s.Department, &s.Semester, &s.Email, &s.Phone,
			&s.Address, &s.DOB, &s.BloodGroup, &s.Attendance, &s.Grades, &s.CurrentCGPA,
			&marks, &fees, &additionalRaw,
		); err != nil {
			return nil, err
		}

		if err := decodeStudentDocuments(&s, marks, fees, additionalRaw); err != nil {
			r.logger.Warn("Skipping student with malformed JSON columns", zap.String("id", s.ID), zap.Error(err))
			continue
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read students: %w", err)
	}

	return students, nil
}

// Upsert inserts or replaces a student record. Only the seeding command writes.
func (r *PostgresStudentRepository) Upsert(ctx context.Context, s *models.Student) error {
	sql, args, err := upsertStudentQuery(s)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func upsertStudentQuery(s *models.Student) (string, []interface{}, error) {
	marks, err := json.Marshal(s.Marks)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode marks: %w", err)
	}
	fees, err := json.Marshal(s.Fees)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode fees: %w", err)
	}
	additional, err := json.Marshal(s.AdditionalInfo)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode additional info: %w", err)
	}

	return squirrel.Insert("students").
		Columns("id", "name", "usn", "department", "semester", "email", "phone", "address",
			"dob", "blood_group", "attendance", "grades", "current_cgpa", "marks", "fees", "additional_info").
		Values(s.ID, s.Name, s.USN, s.Department, s.Semester, s.Email, s.Phone, s.Address,
			s.DOB, s.BloodGroup, s.Attendance, s.Grades, s.CurrentCGPA, string(marks), string(fees), string(additional)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, usn = EXCLUDED.usn, department = EXCLUDED.department,
			semester = EXCLUDED.semester, email = EXCLUDED.email, phone = EXCLUDED.phone,
			address = EXCLUDED.address, dob = EXCLUDED.dob, blood_group = EXCLUDED.blood_group,
			attendance = EXCLUDED.attendance, grades = EXCLUDED.grades,
			current_cgpa = EXCLUDED.current_cgpa, marks = EXCLUDED.marks,
			fees = EXCLUDED.fees, additional_info = EXCLUDED.additional_info`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func decodeStudentDocuments(s *models.Student, marks, fees, additional []byte) error {
	if len(marks) > 0 {
		if err := json.Unmarshal(marks, &s.Marks); err != nil {
			return fmt.Errorf("marks: %w", err)
		}
	}
	if len(fees) > 0 {
		if err := json.Unmarshal(fees, &s.Fees); err != nil {
			return fmt.Errorf("fees: %w", err)
		}
	}
	if len(additional) > 0 {
		if err := json.Unmarshal(additional, &s.AdditionalInfo); err != nil {
			return fmt.Errorf("additional_info: %w", err)
		}
	}
	return nil
}
