package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFormTypePopulatesFieldSet(t *testing.T) {
	for _, ft := range AllTypes() {
		c := NewController()
		c.SelectFormType(ft)

		want := FieldSet(ft)
		require.Equal(t, want, c.Fields(), "field set for %s", ft)
		assert.Equal(t, ft, c.FormType())
		assert.Zero(t, c.Progress())
		assert.Zero(t, c.ErrorCount())
		assert.Empty(t, c.Status())
	}
}

func TestSelectFormTypeResetsPriorState(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)
	c.SetFieldValue("firstName", "Ann")
	c.SetFieldValue("lastName", "")
	require.NotZero(t, c.ErrorCount())

	c.SelectFormType(TypePaymentInformation)

	_, ok := c.Value("firstName")
	assert.False(t, ok, "values should be cleared on type change")
	assert.Zero(t, c.ErrorCount())
	assert.Zero(t, c.Progress())
}

func TestSelectUnknownTypeClears(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)
	c.SetFieldValue("firstName", "Ann")

	c.SelectFormType(FormType("orderInformation"))

	assert.Equal(t, TypeNone, c.FormType())
	assert.Empty(t, c.Fields())
	_, ok := c.Value("firstName")
	assert.False(t, ok)
	assert.Zero(t, c.Progress())
}

func TestRequiredFieldValidation(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)

	c.SetFieldValue("firstName", "")
	assert.Equal(t, "First Name is required", c.Error("firstName"))

	c.SetFieldValue("firstName", "Ann")
	assert.Empty(t, c.Error("firstName"))
}

func TestOptionalFieldNeverErrors(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)

	c.SetFieldValue("age", "")
	assert.Empty(t, c.Error("age"))
}

func TestSetFieldValueOutsideFieldSetIgnored(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)

	c.SetFieldValue("cardNumber", "4111")

	_, ok := c.Value("cardNumber")
	assert.False(t, ok)
	assert.Empty(t, c.Error("cardNumber"))
}

func TestUserInformationScenario(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)

	names := make([]string, 0, 3)
	for _, f := range c.Fields() {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"firstName", "lastName", "age"}, names)

	c.SetFieldValue("firstName", "Ann")
	assert.Empty(t, c.Error("firstName"))
	assert.InDelta(t, 50, c.Progress(), 0.001, "1 of 2 required fields satisfied")

	c.SetFieldValue("lastName", "Lee")
	assert.InDelta(t, 100, c.Progress(), 0.001)

	ok := c.Submit()
	require.True(t, ok)
	assert.Equal(t, StatusSuccess, c.Status())
	_, present := c.Value("firstName")
	assert.False(t, present, "values cleared after successful submit")
	assert.Zero(t, c.ErrorCount())
	assert.NotEmpty(t, c.Receipt())
}

func TestPaymentSubmitAllMissing(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypePaymentInformation)

	ok := c.Submit()
	require.False(t, ok)
	assert.Equal(t, StatusMissing, c.Status())
	for _, name := range []string{"cardNumber", "expiryDate", "cvv", "cardholderName"} {
		assert.NotEmpty(t, c.Error(name), "expected error for %s", name)
	}
	assert.Empty(t, c.Receipt())
}

func TestFailedSubmitKeepsEnteredValues(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypePaymentInformation)
	c.SetFieldValue("cardNumber", "4111111111111111")

	ok := c.Submit()
	require.False(t, ok)

	v, present := c.Value("cardNumber")
	assert.True(t, present)
	assert.Equal(t, "4111111111111111", v)
	assert.Empty(t, c.Error("cardNumber"))
	assert.NotEmpty(t, c.Error("cvv"))
}

func TestSubmitAfterCorrection(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)
	c.SetFieldValue("firstName", "Ann")

	require.False(t, c.Submit())
	assert.NotEmpty(t, c.Error("lastName"))

	c.SetFieldValue("lastName", "Lee")
	require.True(t, c.Submit())
	assert.Equal(t, StatusSuccess, c.Status())
}

func TestProgressMonotonicWhileFilling(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypePaymentInformation)

	prev := c.Progress()
	steps := []struct{ name, value string }{
		{"cardNumber", "4111111111111111"},
		{"expiryDate", "2027-09"},
		{"cvv", "123"},
		{"cardholderName", "Ann Lee"},
	}
	for _, s := range steps {
		c.SetFieldValue(s.name, s.value)
		assert.GreaterOrEqual(t, c.Progress(), prev, "progress after %s", s.name)
		prev = c.Progress()
	}
	assert.InDelta(t, 100, c.Progress(), 0.001)
}

func TestProgressCountsOnlyTouchedFields(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypePaymentInformation)

	// Clearing a touched field errors it; progress stays at the share of
	// touched, error-free required fields.
	c.SetFieldValue("cvv", "123")
	assert.InDelta(t, 25, c.Progress(), 0.001)

	c.SetFieldValue("cvv", "")
	assert.InDelta(t, 0, c.Progress(), 0.001)
	assert.NotEmpty(t, c.Error("cvv"))
}

func TestProgressResetsAfterSuccessfulSubmit(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)
	c.SetFieldValue("firstName", "Ann")
	c.SetFieldValue("lastName", "Lee")
	require.True(t, c.Submit())

	assert.Zero(t, c.Progress(), "cleared values leave no touched required fields")
}

func TestSubmitWithoutSelectionIsNoop(t *testing.T) {
	c := NewController()

	ok := c.Submit()
	assert.False(t, ok)
	assert.Empty(t, c.Status())
	assert.Zero(t, c.ErrorCount())
}

func TestReceiptChangesPerSubmission(t *testing.T) {
	c := NewController()
	c.SelectFormType(TypeUserInformation)
	c.SetFieldValue("firstName", "Ann")
	c.SetFieldValue("lastName", "Lee")
	require.True(t, c.Submit())
	first := c.Receipt()

	c.SetFieldValue("firstName", "Bea")
	c.SetFieldValue("lastName", "Cho")
	require.True(t, c.Submit())

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, c.Receipt())
}
