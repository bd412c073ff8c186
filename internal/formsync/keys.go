// Package formsync binds form controls to paths in the document model and
// applies input events to it.
package formsync

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ControlName renders the composite "section-index-field" key used as the
// name attribute of a dynamic list control.
func ControlName(section types.Section, index int, field string) string {
	return string(section) + "-" + strconv.Itoa(index) + "-" + field
}

// ParseControlName splits a composite key on its first two dashes. Field
// names therefore must not contain dashes themselves.
func ParseControlName(name string) (section types.Section, index int, field string, ok bool) {
	parts := strings.SplitN(name, "-", 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return "", 0, "", false
	}
	if !allDigits(parts[1]) {
		return "", 0, "", false
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, "", false
	}
	return types.Section(parts[0]), index, parts[2], true
}

// allDigits reports whether s is a non-empty run of ASCII digits. Atoi alone
// would also accept a sign.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
