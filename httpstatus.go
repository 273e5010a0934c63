// Package httpstatus provides a CLI-based lookup of HTTP status codes.
// It loads a dataset of status records (code, phrase, description and the
// defining specification) and answers exact-code and keyword queries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, http/).
package httpstatus
