package model

import "strings"

type ContactKind string

const (
	ContactPerson  ContactKind = "person"
	ContactCompany ContactKind = "company"
)

// Contact is a phonebook entry.
type Contact struct {
	ID        int64  `json:"id"`
	Owner     string `json:"owner_id,omitempty"`
	Type      string `json:"type,omitempty"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Extension string `json:"extension"`
	WorkPhone string `json:"workphone"`
	CellPhone string `json:"cellphone"`
	HomePhone string `json:"homephone,omitempty"`
	WorkEmail string `json:"workemail,omitempty"`
	HomeEmail string `json:"homeemail,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Source    string `json:"source,omitempty"`
}

func (c Contact) Kind() ContactKind {
	if strings.TrimSpace(c.Name) != "" {
		return ContactPerson
	}
	return ContactCompany
}

func (c Contact) DisplayName() string {
	if n := strings.TrimSpace(c.Name); n != "" {
		return n
	}
	if n := strings.TrimSpace(c.Company); n != "" {
		return n
	}
	return "-"
}

// Numbers returns the contact's extension, work phone and cell phone in
// that order, skipping empty values.
func (c Contact) Numbers() []string {
	var out []string
	for _, n := range []string{c.Extension, c.WorkPhone, c.CellPhone} {
		if strings.TrimSpace(n) != "" {
			out = append(out, n)
		}
	}
	return out
}

// PrimaryNumber is the first dialable number, or "".
func (c Contact) PrimaryNumber() string {
	if n := c.Numbers(); len(n) > 0 {
		return n[0]
	}
	return ""
}

func (c Contact) Email() string {
	if c.WorkEmail != "" {
		return c.WorkEmail
	}
	return c.HomeEmail
}

type PhonebookPage struct {
	Count      int       `json:"count"`
	Rows       []Contact `json:"rows"`
	TotalPages int       `json:"-"`
}

// NewContact is the payload for creating a phonebook entry.
type NewContact struct {
	Type      string `json:"type"`
	Name      string `json:"name,omitempty"`
	Company   string `json:"company,omitempty"`
	WorkPhone string `json:"workphone,omitempty"`
	CellPhone string `json:"cellphone,omitempty"`
	WorkEmail string `json:"workemail,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
