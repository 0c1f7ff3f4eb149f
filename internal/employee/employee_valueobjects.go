package employee

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// DocumentPattern is the canonical document number format, XXX.XXX.XXX-XX.
var DocumentPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

var (
	documentDigits = regexp.MustCompile(`^\d{11}$`)
	phonePattern   = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// Email wraps an address. Construction never rejects input; the validator does.
type Email struct {
	Address string
}

func NewEmail(address string) Email {
	return Email{Address: address}
}

func (e Email) String() string { return e.Address }

type Document struct {
	Number string
}

func NewDocument(number string) Document {
	return Document{Number: number}
}

func (d Document) String() string { return d.Number }

// NormalizeDocument reformats exactly eleven digits into the canonical
// pattern. Any other input is only trimmed.
func NormalizeDocument(raw string) string {
	raw = strings.TrimSpace(raw)
	if !documentDigits.MatchString(raw) {
		return raw
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// Phone carries its own identity: two phones with the same digits are
// different phones.
type Phone struct {
	ID     uuid.UUID
	Number string
}

func NewPhone(number string) Phone {
	return Phone{ID: uuid.New(), Number: number}
}

func (p Phone) String() string { return p.Number }
