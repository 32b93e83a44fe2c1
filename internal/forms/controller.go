package forms

import "github.com/google/uuid"

// Status messages shown after a submission attempt.
const (
	StatusSuccess = "Form submitted successfully!"
	StatusMissing = "Please fill out all required fields."
)

// Controller owns all form state: the active field set, entered values,
// validation errors, completion progress, and the submission status line.
// It has no UI dependency; screens call its operations from event handlers
// and re-render from its accessors.
type Controller struct {
	formType FormType
	fields   []FieldDescriptor
	values   map[string]string
	errors   map[string]string
	progress float64
	status   string
	success  bool
	receipt  string
}

// NewController creates a controller with no form selected.
func NewController() *Controller {
	return &Controller{
		values: make(map[string]string),
		errors: make(map[string]string),
	}
}

// SelectFormType replaces the active field set with the catalog entry for t
// and resets values, errors, progress, and status. An unknown or empty type
// clears the controller back to the no-selection state rather than leaving
// the previous field set in place.
func (c *Controller) SelectFormType(t FormType) {
	if IsKnown(t) {
		c.formType = t
		c.fields = FieldSet(t)
	} else {
		c.formType = TypeNone
		c.fields = nil
	}
	c.values = make(map[string]string)
	c.errors = make(map[string]string)
	c.progress = 0
	c.status = ""
	c.success = false
	c.receipt = ""
}

// SetFieldValue stores a raw value for the named field and revalidates it.
// Names outside the active field set are ignored, so values and errors stay
// keyed by the active set only.
func (c *Controller) SetFieldValue(name, value string) {
	if c.descriptor(name) == nil {
		return
	}
	c.values[name] = value
	c.validateField(name, value)
}

// validateField applies the required-field rule for one field, then
// recomputes progress from the updated error map.
func (c *Controller) validateField(name, value string) {
	desc := c.descriptor(name)
	if desc == nil {
		return
	}
	if desc.Required && value == "" {
		c.errors[name] = desc.Label + " is required"
	} else {
		delete(c.errors, name)
	}
	c.recomputeProgress()
}

// Submit checks every required field in the active set. On success it sets
// the success status, issues a receipt ID, and clears values and errors so
// the form is ready for a fresh entry. On failure it records an error for
// each missing required field and leaves entered values untouched.
// Returns true on success. With no active field set it is a no-op.
func (c *Controller) Submit() bool {
	if len(c.fields) == 0 {
		return false
	}

	valid := true
	for _, f := range c.fields {
		if !f.Required {
			continue
		}
		if v, ok := c.values[f.Name]; !ok || v == "" {
			c.errors[f.Name] = f.Label + " is required"
			valid = false
		}
	}

	if valid {
		c.status = StatusSuccess
		c.success = true
		c.receipt = uuid.NewString()
		c.values = make(map[string]string)
		c.errors = make(map[string]string)
	} else {
		c.status = StatusMissing
		c.success = false
		c.receipt = ""
	}
	c.recomputeProgress()
	return valid
}

// recomputeProgress derives the completion percentage: the share of required
// fields that have been touched (present in values) and carry no error.
// A field set with no required fields is vacuously 100% complete.
func (c *Controller) recomputeProgress() {
	var total, done int
	for _, f := range c.fields {
		if !f.Required {
			continue
		}
		total++
		if _, touched := c.values[f.Name]; !touched {
			continue
		}
		if _, bad := c.errors[f.Name]; !bad {
			done++
		}
	}
	if total == 0 {
		if len(c.fields) > 0 {
			c.progress = 100
		} else {
			c.progress = 0
		}
		return
	}
	c.progress = 100 * float64(done) / float64(total)
}

// FormType returns the active form type (TypeNone when nothing is selected).
func (c *Controller) FormType() FormType { return c.formType }

// Fields returns the active field set in catalog order.
func (c *Controller) Fields() []FieldDescriptor { return c.fields }

// Value returns the entered value for a field and whether one exists.
func (c *Controller) Value(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Error returns the validation error for a field, or "" if the field is valid.
func (c *Controller) Error(name string) string { return c.errors[name] }

// ErrorCount returns the number of fields currently invalid.
func (c *Controller) ErrorCount() int { return len(c.errors) }

// Progress returns the completion percentage in [0, 100].
func (c *Controller) Progress() float64 { return c.progress }

// Status returns the submission status line ("" before any attempt).
func (c *Controller) Status() string { return c.status }

// Succeeded reports whether the last submission attempt succeeded.
func (c *Controller) Succeeded() bool { return c.success }

// Receipt returns the ID issued by the last successful submission.
func (c *Controller) Receipt() string { return c.receipt }

func (c *Controller) descriptor(name string) *FieldDescriptor {
	for i := range c.fields {
		if c.fields[i].Name == name {
			return &c.fields[i]
		}
	}
	return nil
}
