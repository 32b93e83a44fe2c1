package forms

// FieldKind identifies the input widget a field renders as.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindPassword FieldKind = "password"
	KindDropdown FieldKind = "dropdown"
)

// FieldDescriptor describes one field of a form type. Descriptors are
// static; the catalog below is the only place they are defined.
type FieldDescriptor struct {
	Name     string
	Kind     FieldKind
	Label    string
	Required bool
	Options  []string // populated only for KindDropdown
}

// FormType selects one of the predefined field sets.
type FormType string

const (
	TypeNone               FormType = ""
	TypeUserInformation    FormType = "userInformation"
	TypeAddressInformation FormType = "addressInformation"
	TypePaymentInformation FormType = "paymentInformation"
)

var countryOptions = []string{
	"United States", "Canada", "United Kingdom", "Australia",
	"India", "Germany", "France", "Japan", "Brazil", "Other",
}

// catalog maps each form type to its ordered field set.
var catalog = map[FormType][]FieldDescriptor{
	TypeUserInformation: {
		{Name: "firstName", Kind: KindText, Label: "First Name", Required: true},
		{Name: "lastName", Kind: KindText, Label: "Last Name", Required: true},
		{Name: "age", Kind: KindNumber, Label: "Age"},
	},
	TypeAddressInformation: {
		{Name: "street", Kind: KindText, Label: "Street Address", Required: true},
		{Name: "city", Kind: KindText, Label: "City", Required: true},
		{Name: "state", Kind: KindText, Label: "State / Province"},
		{Name: "zipCode", Kind: KindNumber, Label: "ZIP Code", Required: true},
		{Name: "country", Kind: KindDropdown, Label: "Country", Required: true, Options: countryOptions},
	},
	TypePaymentInformation: {
		{Name: "cardNumber", Kind: KindNumber, Label: "Card Number", Required: true},
		{Name: "expiryDate", Kind: KindDate, Label: "Expiry Date", Required: true},
		{Name: "cvv", Kind: KindPassword, Label: "CVV", Required: true},
		{Name: "cardholderName", Kind: KindText, Label: "Cardholder Name", Required: true},
	},
}

// displayNames gives the human-facing name for each form type.
var displayNames = map[FormType]string{
	TypeUserInformation:    "User Information",
	TypeAddressInformation: "Address Information",
	TypePaymentInformation: "Payment Information",
}

// AllTypes returns the recognized form types in presentation order.
func AllTypes() []FormType {
	return []FormType{TypeUserInformation, TypeAddressInformation, TypePaymentInformation}
}

// FieldSet returns a copy of the field set for the given type, or nil if
// the type is unknown. Callers own the returned slice.
func FieldSet(t FormType) []FieldDescriptor {
	set, ok := catalog[t]
	if !ok {
		return nil
	}
	out := make([]FieldDescriptor, len(set))
	copy(out, set)
	return out
}

// IsKnown reports whether t is one of the catalog's form types.
func IsKnown(t FormType) bool {
	_, ok := catalog[t]
	return ok
}

// DisplayName returns the human-facing name for a form type.
func (t FormType) DisplayName() string {
	if n, ok := displayNames[t]; ok {
		return n
	}
	return string(t)
}

// ParseType resolves a string to a FormType. Unknown strings map to TypeNone.
func ParseType(s string) FormType {
	t := FormType(s)
	if IsKnown(t) {
		return t
	}
	return TypeNone
}
