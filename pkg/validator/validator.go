package validator

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minEmailLength  = 3
	maxEmailLength  = 255
	maxTitleLength  = 255
	maxSlugLength   = 255
	maxNameLength   = 255
	maxLabelLength  = 255
	maxHrefLength   = 2048
	minTokenByteLen = 16

	asciiControlStart = 32
	asciiDelete       = 127

	errEmailEmptyFmt        = "email cannot be empty"
	errEmailLengthFmt       = "email must be between %d and %d characters"
	errEmailInvalidFmt      = "invalid email format"
	errSlugEmptyFmt         = "slug cannot be empty"
	errSlugMaxLengthFmt     = "slug must not exceed %d characters"
	errSlugInvalidFmt       = "slug must be lowercase alphanumeric segments joined by single hyphens"
	errTitleEmptyFmt        = "title cannot be empty"
	errTitleMaxLengthFmt    = "title must not exceed %d characters"
	errNameEmptyFmt         = "name cannot be empty"
	errNameMaxLengthFmt     = "name must not exceed %d characters"
	errNameControlCharsFmt  = "name cannot contain control characters"
	errLabelEmptyFmt        = "label cannot be empty"
	errLabelMaxLengthFmt    = "label must not exceed %d characters"
	errHrefEmptyFmt         = "href cannot be empty"
	errHrefMaxLengthFmt     = "href must not exceed %d characters"
	errRoleInvalidFmt       = "role must be one of: %s"
	errVariableNameFmt      = "variable name must be uppercase letters, digits and underscores"
	errPositionNegativeFmt  = "position cannot be negative"
	errTokenLengthFmt       = "token byte length must be at least %d"
	errVariableNameEmptyFmt = "variable name cannot be empty"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	varRegex   = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// Roles accepted by the role field of users and menu items.
var ValidRoles = []string{"admin", "editor", "user"}

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

// Slug enforces the URL-safe kebab-case form: lowercase alphanumeric
// segments joined by single hyphens, no leading or trailing hyphen.
func Slug(slug string) error {
	if slug == "" {
		return fmt.Errorf(errSlugEmptyFmt)
	}

	if len(slug) > maxSlugLength {
		return fmt.Errorf(errSlugMaxLengthFmt, maxSlugLength)
	}

	if !slugRegex.MatchString(slug) {
		return fmt.Errorf(errSlugInvalidFmt)
	}

	return nil
}

func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf(errTitleEmptyFmt)
	}

	if len(title) > maxTitleLength {
		return fmt.Errorf(errTitleMaxLengthFmt, maxTitleLength)
	}

	return nil
}

func Name(name string) error {
	if name == "" {
		return fmt.Errorf(errNameEmptyFmt)
	}

	if len(name) > maxNameLength {
		return fmt.Errorf(errNameMaxLengthFmt, maxNameLength)
	}

	for _, char := range name {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errNameControlCharsFmt)
		}
	}

	return nil
}

func Role(role string) error {
	for _, valid := range ValidRoles {
		if role == valid {
			return nil
		}
	}
	return fmt.Errorf(errRoleInvalidFmt, strings.Join(ValidRoles, ", "))
}

// VariableName enforces the SCREAMING_SNAKE_CASE convention used by the
// configuration store (e.g. SHOW_DEBUG_CONTROLS).
func VariableName(name string) error {
	if name == "" {
		return fmt.Errorf(errVariableNameEmptyFmt)
	}

	if !varRegex.MatchString(name) {
		return fmt.Errorf(errVariableNameFmt)
	}

	return nil
}

func MenuLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf(errLabelEmptyFmt)
	}

	if len(label) > maxLabelLength {
		return fmt.Errorf(errLabelMaxLengthFmt, maxLabelLength)
	}

	return nil
}

func MenuHref(href string) error {
	if href == "" {
		return fmt.Errorf(errHrefEmptyFmt)
	}

	if len(href) > maxHrefLength {
		return fmt.Errorf(errHrefMaxLengthFmt, maxHrefLength)
	}

	return nil
}

func Position(position int) error {
	if position < 0 {
		return fmt.Errorf(errPositionNegativeFmt)
	}
	return nil
}

func TokenByteLength(length int) error {
	if length < minTokenByteLen {
		return fmt.Errorf(errTokenLengthFmt, minTokenByteLen)
	}
	return nil
}
