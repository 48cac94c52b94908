package models

// PrincipalKind identifies which kind of account a session belongs to.
// The set is closed; the token service dispatches on it with an exhaustive
// switch rather than a runtime registry.
type PrincipalKind string

const (
	KindStudent    PrincipalKind = "student"
	KindInstructor PrincipalKind = "instructor"
)

// Valid reports whether k is one of the known principal kinds.
func (k PrincipalKind) Valid() bool {
	switch k {
	case KindStudent, KindInstructor:
		return true
	}
	return false
}

// Principal is the authenticated identity a token is issued for, as supplied
// by the login flow. DomainID is the aggregate id of the student or
// instructor, not the underlying account id; the token service resolves the
// latter itself.
type Principal struct {
	DomainID string
	Kind     PrincipalKind
}
