package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength             = 2
	MaxNameLength             = 100
	MaxEmailLocalLength       = 64
	MaxEmailDomainLength      = 255
	MaxCategoryNameLength     = 100
	MaxClothingDescriptionLen = 2000
	MaxReportFieldLength      = 100
	MaxCommentLength          = 1000
)

var (
	emailLocalRegex  = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	emailDomainRegex = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	telephoneRegex   = regexp.MustCompile(`^\+?[0-9 ()-]{8,20}$`)
)

// ValidateLength checks the rune length of value; zero bounds are ignored.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}

// ValidateEmail checks the e-mail format after trimming and lower-casing.
func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email is required")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("email must contain exactly one @")
	}
	local, domain := parts[0], parts[1]

	if len(local) == 0 || len(local) > MaxEmailLocalLength {
		return fmt.Errorf("email local part must be 1 to %d characters", MaxEmailLocalLength)
	}
	if len(domain) == 0 || len(domain) > MaxEmailDomainLength {
		return fmt.Errorf("email domain must be 1 to %d characters", MaxEmailDomainLength)
	}
	if !emailLocalRegex.MatchString(local) {
		return fmt.Errorf("email local part contains invalid characters")
	}
	if !emailDomainRegex.MatchString(domain) {
		return fmt.Errorf("email domain is malformed")
	}
	return nil
}

// ValidateNonEmpty rejects blank strings.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return ValidateLength("name", name, MinNameLength, MaxNameLength)
}

// ValidateTelephone accepts nil; otherwise digits with optional +, spaces,
// dashes and parentheses.
func ValidateTelephone(phone *string) error {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return nil
	}
	if !telephoneRegex.MatchString(strings.TrimSpace(*phone)) {
		return fmt.Errorf("telephone is malformed")
	}
	return nil
}

func ValidateCategoryName(name string) error {
	if err := ValidateNonEmpty("category name", name); err != nil {
		return err
	}
	return ValidateLength("category name", strings.TrimSpace(name), 0, MaxCategoryNameLength)
}

func ValidateClothingDescription(description string) error {
	if err := ValidateNonEmpty("description", description); err != nil {
		return err
	}
	return ValidateLength("description", description, 0, MaxClothingDescriptionLen)
}

// ValidateComment accepts nil.
func ValidateComment(comment *string) error {
	if comment == nil {
		return nil
	}
	return ValidateLength("comment", *comment, 0, MaxCommentLength)
}
