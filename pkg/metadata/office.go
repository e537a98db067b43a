package metadata

import (
	"fmt"
	"strings"
)

// Office is one of the regional branches. Stock and bookings are always
// scoped to a single office.
type Office string

const (
	OfficeDallas      Office = "dallas"
	OfficeMiami       Office = "miami"
	OfficePhoenix     Office = "phoenix"
	OfficeMinneapolis Office = "minneapolis"
)

var Offices = []Office{OfficeDallas, OfficeMiami, OfficePhoenix, OfficeMinneapolis}

func NewOffice(value string) (Office, error) {
	office := Office(strings.ToLower(strings.TrimSpace(value)))
	if !office.IsValid() {
		return "", fmt.Errorf(
			"invalid office %q, only valid values are: %s, %s, %s, %s",
			value, OfficeDallas, OfficeMiami, OfficePhoenix, OfficeMinneapolis,
		)
	}
	return office, nil
}

func (o Office) IsValid() bool {
	switch o {
	case OfficeDallas, OfficeMiami, OfficePhoenix, OfficeMinneapolis:
		return true
	default:
		return false
	}
}

func (o Office) Label() string {
	if o == "" {
		return ""
	}
	return strings.ToUpper(string(o[:1])) + string(o[1:])
}

func (o Office) String() string {
	return string(o)
}
