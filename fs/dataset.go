// Package fs provides file-based loading and storage of status datasets.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/httpstatus"
)

// record is the on-disk shape of a status. Pointer fields tell a missing
// or null key apart from an empty string.
type record struct {
	Code        *string `json:"code"`
	Phrase      *string `json:"phrase"`
	Description *string `json:"description"`
	SpecTitle   *string `json:"spec_title"`
	SpecHref    *string `json:"spec_href"`
}

func (r record) status() (httpstatus.Status, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"code", r.Code},
		{"phrase", r.Phrase},
		{"description", r.Description},
		{"spec_title", r.SpecTitle},
		{"spec_href", r.SpecHref},
	}
	for _, f := range fields {
		if f.value == nil {
			return httpstatus.Status{}, httpstatus.Errorf(httpstatus.EINVALID, "missing field %q", f.name)
		}
	}
	return httpstatus.Status{
		Code:        *r.Code,
		Phrase:      *r.Phrase,
		Description: *r.Description,
		SpecTitle:   *r.SpecTitle,
		SpecHref:    *r.SpecHref,
	}, nil
}

// DecodeStatuses decodes a JSON array of status records.
// Every record must carry all five string fields; empty strings are allowed.
func DecodeStatuses(r io.Reader) ([]httpstatus.Status, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, httpstatus.Errorf(httpstatus.EINVALID, "error while reading json: %s", err)
	}

	statuses := make([]httpstatus.Status, 0, len(records))
	for i, rec := range records {
		s, err := rec.status()
		if err != nil {
			return nil, httpstatus.Errorf(httpstatus.EINVALID, "record %d: %s", i, httpstatus.ErrorMessage(err))
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

// Ensure Loader implements httpstatus.StatusLoader at compile time.
var _ httpstatus.StatusLoader = (*Loader)(nil)

// Loader reads the status dataset from a JSON file.
// An empty Path loads the dataset bundled with the binary.
type Loader struct {
	Path string
}

// NewLoader creates a new Loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// LoadStatuses reads and decodes the dataset.
// Returns ENOTFOUND if the file does not exist.
func (l *Loader) LoadStatuses(ctx context.Context) ([]httpstatus.Status, error) {
	if l.Path == "" {
		return DecodeStatuses(bytes.NewReader(httpstatus.Dataset))
	}

	f, err := os.Open(l.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, httpstatus.Errorf(httpstatus.ENOTFOUND, "dataset %q not found", l.Path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeStatuses(f)
}
