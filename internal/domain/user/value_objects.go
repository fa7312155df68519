package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidDocument = errors.New("document must have 11 (CPF) or 14 (CNPJ) digits")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, pass string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(pass)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}

const (
	cpfLength  = 11
	cnpjLength = 14
)

// Document is the purchaser's identity document with formatting stripped.
// An 11-digit document (CPF) identifies an individual; a 14-digit one
// (CNPJ) identifies an organization.
type Document struct {
	digits string
}

func NewDocument(s string) (Document, error) {
	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) != cpfLength && len(digits) != cnpjLength {
		return Document{}, ErrInvalidDocument
	}
	return Document{digits: digits}, nil
}

func (d Document) Value() string {
	return d.digits
}

func (d Document) IsIndividual() bool {
	return len(d.digits) == cpfLength
}
