package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the user account entity
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an ID when the caller did not set one
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UpdateUserInput carries the optional fields of a partial update.
// Absent fields leave the stored value untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

// Empty reports whether no field is present
func (in *UpdateUserInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Password == nil
}

// Pagination bounds for list queries
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListFilter holds the optional filter and pagination fields of a list
// request. Filter values are always bound as query parameters, never
// interpolated into SQL text.
type ListFilter struct {
	Name   *string `form:"name" binding:"omitempty,min=4,max=10"`
	Email  *string `form:"email" binding:"omitempty,email"`
	Limit  *int    `form:"limit" binding:"omitempty,gte=0"`
	Offset *int    `form:"offset" binding:"omitempty,gte=0"`
}

// Normalize applies the pagination defaults and clamps: limit defaults to 20
// and is capped at 100, offset defaults to 0 and is never negative.
func (f *ListFilter) Normalize() {
	switch {
	case f.Limit == nil || *f.Limit <= 0:
		f.Limit = intPtr(DefaultListLimit)
	case *f.Limit > MaxListLimit:
		f.Limit = intPtr(MaxListLimit)
	}

	if f.Offset == nil || *f.Offset < 0 {
		f.Offset = intPtr(0)
	}
}

// Fragment renders the WHERE/LIMIT/OFFSET portion of the list query,
// returning the SQL text and the values to bind. Only present fields emit a
// predicate; with no fields present the WHERE clause is omitted entirely.
// Column names are fixed here, the client never supplies them. LIMIT comes
// before OFFSET so the fragment is valid on both PostgreSQL and SQLite.
func (f *ListFilter) Fragment() (string, []any) {
	f.Normalize()

	var (
		predicates []string
		args       []any
	)

	if f.Name != nil {
		predicates = append(predicates, "name = ?")
		args = append(args, *f.Name)
	}
	if f.Email != nil {
		predicates = append(predicates, "email = ?")
		args = append(args, *f.Email)
	}

	var sb strings.Builder
	if len(predicates) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(predicates, " AND "))
	}
	fmt.Fprintf(&sb, " LIMIT %d OFFSET %d", *f.Limit, *f.Offset)

	return sb.String(), args
}

func intPtr(n int) *int {
	return &n
}
