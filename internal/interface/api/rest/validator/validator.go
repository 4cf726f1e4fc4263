package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"realty-office-api/internal/interface/api/rest/dto/auth"
	"realty-office-api/internal/interface/api/rest/dto/inquiry"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

// listing categories as the admin UI submits them
var propertyCategories = map[string]struct{}{
	"주거용":   {},
	"상업용":   {},
	"공장/지산": {},
}

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}
	return p, nil
}

func ValidateID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("must be a positive integer id")
	}
	return id, nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidatePropertyForm(category, title string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(title) == "" {
		errs["title"] = "title is required"
	}
	if category == "" {
		errs["category"] = "category is required"
	} else if _, ok := propertyCategories[category]; !ok {
		errs["category"] = "unknown category"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidatePostForm(title string) map[string]string {
	if strings.TrimSpace(title) == "" {
		return map[string]string{"title": "title is required"}
	}
	return nil
}

func ValidateInquiry(r inquiry.Request) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.CustomerName)
	info := strings.TrimSpace(r.ContactInfo)

	if name == "" {
		errs["customer_name"] = "customer_name is required"
	}
	switch r.ContactMethod {
	case "email":
		if _, err := mail.ParseAddress(info); err != nil {
			errs["contact_info"] = "invalid email format"
		}
	case "phone":
		if info == "" {
			errs["contact_info"] = "contact_info is required"
		}
	default:
		errs["contact_method"] = "contact_method must be email or phone"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FloatPtr parses an optional numeric form field. Empty means absent, not
// zero.
func FloatPtr(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func IntPtr(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
