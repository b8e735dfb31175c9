package util

import (
	"database/sql"
)

// StringToNullString converts a string to sql.NullString.
// An empty string is treated as NULL.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullStringToPtr returns nil for NULL.
func NullStringToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// NullInt64ToIntPtr returns nil for NULL.
func NullInt64ToIntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

// BoolToNumber maps a bool to the NUMBER(1) encoding used for flags.
func BoolToNumber(b bool) int {
	if b {
		return 1
	}
	return 0
}
