// Package customer implements the customer-record module: an in-memory store
// of customer records with draft validation, case-insensitive name
// deduplication, debounced incremental search, and the add/edit session
// controller that the presentation layer drives.
package customer

import (
	"strings"
	"time"
)

// Record is a single customer entry.
type Record struct {
	ID        string
	Name      string
	Phone     string // Empty means absent.
	Email     string // Empty means absent.
	CreatedAt time.Time
}

// CreatedAtMillis returns the creation time in milliseconds since the epoch.
func (r Record) CreatedAtMillis() int64 {
	return r.CreatedAt.UnixMilli()
}

// Fields returns the editable fields of the record.
func (r Record) Fields() Fields {
	return Fields{Name: r.Name, Phone: r.Phone, Email: r.Email}
}

// Field identifies one of the editable draft fields.
type Field int

const (
	FieldName Field = iota
	FieldPhone
	FieldEmail
)

// String returns the lower-case field name.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldPhone:
		return "phone"
	case FieldEmail:
		return "email"
	default:
		return "unknown"
	}
}

// Fields holds working copies of the editable record fields.
type Fields struct {
	Name  string
	Phone string
	Email string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f Fields) Trimmed() Fields {
	return Fields{
		Name:  strings.TrimSpace(f.Name),
		Phone: strings.TrimSpace(f.Phone),
		Email: strings.TrimSpace(f.Email),
	}
}

// Get returns the value of the given field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldPhone:
		return f.Phone
	case FieldEmail:
		return f.Email
	default:
		return ""
	}
}

// set stores text into the given field.
func (f *Fields) set(field Field, text string) {
	switch field {
	case FieldName:
		f.Name = text
	case FieldPhone:
		f.Phone = text
	case FieldEmail:
		f.Email = text
	}
}

// FieldErrors holds the inline error message for each draft field.
// An empty string means the field has no error.
type FieldErrors struct {
	Name  string
	Phone string
	Email string
}

// Empty reports whether no field has an error.
func (e FieldErrors) Empty() bool {
	return e.Name == "" && e.Phone == "" && e.Email == ""
}

// Get returns the error message for the given field.
func (e FieldErrors) Get(field Field) string {
	switch field {
	case FieldName:
		return e.Name
	case FieldPhone:
		return e.Phone
	case FieldEmail:
		return e.Email
	default:
		return ""
	}
}

// Clear removes the error message for the given field.
func (e *FieldErrors) Clear(field Field) {
	switch field {
	case FieldName:
		e.Name = ""
	case FieldPhone:
		e.Phone = ""
	case FieldEmail:
		e.Email = ""
	}
}
