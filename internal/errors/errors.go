package errors

import (
	"encoding/json"
	"fmt"
)

// BusinessErr is raised when request breaks domain rule, target names offending field
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// Target returns name of the field which caused error
func (e *BusinessErr) Target() string {
	return e.target
}

// MarshalJSON implements json.Marshaler
func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewBusinessErr builds BusinessErr
func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr is raised when requested entry doesn't exist or isn't visible to user
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(entity string, id string) error {
	return &EntryNotFoundErr{message: fmt.Sprintf("%s %s not found", entity, id)}
}
