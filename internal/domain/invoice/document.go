package invoice

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Environment selects the external issuer's target environment.
const (
	EnvironmentProduction = "P"
	EnvironmentStaging    = "H"
)

// Document is the payload the external tax-document API accepts. JSON tags
// follow the external API's field names.
type Document struct {
	Environment       string          `json:"ambiente"`
	TaxID             string          `json:"cpfcnpj"`
	CorporateName     string          `json:"razaosocial"`
	StateRegistration string          `json:"inscricaoestadual,omitempty"`
	CityRegistration  string          `json:"inscricaomunicipal,omitempty"`
	PublicBody        string          `json:"orgaopublico"`
	Email             string          `json:"email,omitempty"`
	AreaCode          string          `json:"ddd,omitempty"`
	Phone             string          `json:"fone,omitempty"`
	Street            string          `json:"enderecorua"`
	Number            string          `json:"endereconum"`
	Complement        string          `json:"enderecocompl,omitempty"`
	District          string          `json:"enderecobairro"`
	City              string          `json:"enderecocidade"`
	State             string          `json:"enderecouf"`
	PostalCode        string          `json:"enderecocep"`
	ServiceValue      decimal.Decimal `json:"servicovalor"`
	ServiceDesc       string          `json:"servicodescricao"`
}

// FieldError is one structured validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	taxIDRegex      = regexp.MustCompile(`^\d{11}$|^\d{14}$`)
	stateRegRegex   = regexp.MustCompile(`^(?i:isento|branco)$|^\d+$`)
	areaCodeRegex   = regexp.MustCompile(`^\d{2}$`)
	phoneRegex      = regexp.MustCompile(`^\d{8,10}$`)
	ufRegex         = regexp.MustCompile(`^[A-Z]{2}$`)
	postalCodeRegex = regexp.MustCompile(`^\d{8}$`)
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var maxServiceValue = decimal.NewFromInt(100000)

// Validate checks every field of the outgoing document and returns the full
// list of violations, one entry per offending field. An empty result means
// the document can be submitted.
func Validate(d Document) []FieldError {
	var errs []FieldError

	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if d.Environment != EnvironmentProduction && d.Environment != EnvironmentStaging {
		add("ambiente", `must be "P" (production) or "H" (staging)`)
	}

	if !taxIDRegex.MatchString(d.TaxID) {
		add("cpfcnpj", "must be a CPF (11 digits) or CNPJ (14 digits), digits only")
	}

	requiredMax(&errs, "razaosocial", d.CorporateName, 80)

	if d.StateRegistration != "" {
		if len(d.StateRegistration) > 20 {
			add("inscricaoestadual", "must have at most 20 characters")
		} else if !stateRegRegex.MatchString(d.StateRegistration) {
			add("inscricaoestadual", `must be "isento", "branco" or a number`)
		}
	}
	if len(d.CityRegistration) > 20 {
		add("inscricaomunicipal", "must have at most 20 characters")
	}

	if d.PublicBody != "S" && d.PublicBody != "N" {
		add("orgaopublico", `must be "S" or "N"`)
	}

	if d.Email != "" {
		if len(d.Email) > 80 {
			add("email", "must have at most 80 characters")
		} else if !emailRegex.MatchString(d.Email) {
			add("email", "must be a valid email address")
		}
	}

	if d.AreaCode != "" && !areaCodeRegex.MatchString(d.AreaCode) {
		add("ddd", "must have exactly 2 digits")
	}
	if d.Phone != "" && !phoneRegex.MatchString(d.Phone) {
		add("fone", "must have 8 to 10 digits")
	}

	requiredMax(&errs, "enderecorua", d.Street, 60)
	requiredMax(&errs, "endereconum", d.Number, 10)
	if len(d.Complement) > 40 {
		add("enderecocompl", "must have at most 40 characters")
	}
	requiredMax(&errs, "enderecobairro", d.District, 40)
	requiredMax(&errs, "enderecocidade", d.City, 40)

	if !ufRegex.MatchString(d.State) {
		add("enderecouf", "must be a two-letter state code (e.g. SP)")
	}
	if !postalCodeRegex.MatchString(d.PostalCode) {
		add("enderecocep", "must have exactly 8 digits")
	}

	switch {
	case !d.ServiceValue.IsPositive():
		add("servicovalor", "must be greater than zero")
	case d.ServiceValue.GreaterThan(maxServiceValue):
		add("servicovalor", "must not exceed 100000")
	case d.ServiceValue.Exponent() < -2:
		add("servicovalor", "must have at most 2 decimal places")
	}

	requiredMax(&errs, "servicodescricao", d.ServiceDesc, 512)

	return errs
}

func requiredMax(errs *[]FieldError, field, value string, maxLen int) {
	if value == "" {
		*errs = append(*errs, FieldError{Field: field, Message: "is required"})
		return
	}
	if len(value) > maxLen {
		*errs = append(*errs, FieldError{Field: field, Message: "exceeds maximum length"})
	}
}
