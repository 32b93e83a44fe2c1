package catalog

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestShowsFirstTypeInitially(t *testing.T) {
	c := New()

	v := c.View(80, 24)
	if !strings.Contains(v, "First Name") {
		t.Error("expected the user information fields on the first tab")
	}
	if !strings.Contains(v, "* required field") {
		t.Error("expected the required-field legend")
	}
}

func TestSwitchingTypes(t *testing.T) {
	c := New()

	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if v := c.View(80, 24); !strings.Contains(v, "Street Address") {
		t.Error("expected address fields after one step right")
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	v := c.View(80, 24)
	if !strings.Contains(v, "Card Number") {
		t.Error("expected payment fields after two steps right")
	}

	// Right edge clamps.
	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if v2 := c.View(80, 24); v2 != v {
		t.Error("expected the selection to clamp at the last type")
	}
}

func TestDropdownOptionsListed(t *testing.T) {
	c := New()
	c.Update(tea.KeyPressMsg{Code: tea.KeyRight}) // addressInformation

	if !strings.Contains(c.View(80, 24), "United States") {
		t.Error("expected dropdown options to be listed")
	}
}
