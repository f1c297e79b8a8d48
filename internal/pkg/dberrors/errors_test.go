package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "registrations_student_id_course_id_key"}

	if !IsDuplicateConstraintError(dup, "registrations_student_id_course_id_key") {
		t.Fatal("expected match for the named constraint")
	}
	if IsDuplicateConstraintError(dup, "students_email_key") {
		t.Fatal("must not match a different constraint")
	}
	if !IsDuplicateConstraintError(fmt.Errorf("insert failed: %w", dup), "registrations_student_id_course_id_key") {
		t.Fatal("expected match through wrapping")
	}
	if IsDuplicateConstraintError(errors.New("plain error"), "registrations_student_id_course_id_key") {
		t.Fatal("must not match a non-pg error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected 23505 to classify as unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("23503 is not a unique violation")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "students_department_id_fkey"}

	if !IsForeignKeyViolation(fk) {
		t.Fatal("expected 23503 to classify as foreign key violation")
	}
	if !IsForeignKeyViolation(fmt.Errorf("delete failed: %w", fk)) {
		t.Fatal("expected match through wrapping")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("23505 is not a foreign key violation")
	}
	if IsForeignKeyViolation(nil) {
		t.Fatal("nil must not classify")
	}
}
