package services

import (
	"errors"
	"strings"
	"time"

	"github.com/molarhq/molarlog/internal/models"
)

const MaxLogTextLength = 2000

var (
	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrInvalidLogDuration  = errors.New("invalid log duration")
	ErrInvalidLogDate      = errors.New("invalid log date")
)

type LogEntryInput struct {
	ClinicID       *uint
	Date           time.Time
	Duration       float64
	Type           string
	Supervisor     string
	Procedures     string
	Notes          string
	AttachmentName string
	Attachment     []byte
}

func NormalizeLogEntryInput(input LogEntryInput) (LogEntryInput, error) {
	if !models.IsValidActivityType(input.Type) {
		return input, ErrInvalidActivityType
	}
	if input.Duration < 0 {
		return input, ErrInvalidLogDuration
	}
	if input.Date.IsZero() {
		return input, ErrInvalidLogDate
	}

	input.Supervisor = trimLogText(input.Supervisor)
	input.Procedures = trimLogText(input.Procedures)
	input.Notes = trimLogText(input.Notes)
	input.AttachmentName = strings.TrimSpace(input.AttachmentName)
	return input, nil
}

// trimLogText truncates on rune boundaries so a multi-byte character is
// never split in half.
func trimLogText(value string) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if len(runes) <= MaxLogTextLength {
		return value
	}
	return string(runes[:MaxLogTextLength])
}
