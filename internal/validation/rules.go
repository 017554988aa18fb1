// Package validation provides custom validation rules for request payloads.
package validation

import (
	"encoding/base64"
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/tracktainment/duxmanager/internal/errors"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	uuidPattern  = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`
	idRegex      = regexp.MustCompile(`^` + uuidPattern + `$`)
	idListRegex  = regexp.MustCompile(`^` + uuidPattern + `(\s*,\s*` + uuidPattern + `)*$`)
	groupIDRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{1,50}$`)
	// artifact ids share the group id alphabet
	artifactIDRegex = groupIDRegex
	versionRegex    = regexp.MustCompile(`^[a-zA-Z0-9._\-]{1,30}$`)
	typeRegex       = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,30}$`)

	subjectRegex  = regexp.MustCompile(`^[a-zA-Z0-9|_\-]{1,100}$`)
	tenantIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,50}$`)

	fullNameRegex   = regexp.MustCompile(`^[\p{L}'\-]+( [\p{L}'\-]+)+$`)
	singleNameRegex = regexp.MustCompile(`^[\p{L}'\-]{1,50}$`)

	countryCodeRegex = regexp.MustCompile(`^\+[0-9]{1,4}$`)
	phoneNumberRegex = regexp.MustCompile(`^[0-9()\- ]{4,20}$`)
	addressRegex     = regexp.MustCompile(`^[\p{L}0-9 .,'#/\-]{1,100}$`)
	postalCodeRegex  = regexp.MustCompile(`^[a-zA-Z0-9 \-]{1,10}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

func pattern(re *regexp.Regexp, code, message string) validation.StringRule {
	return validation.NewStringRuleWithError(
		re.MatchString,
		validation.NewError(code, message),
	)
}

// Email validates email format using regex
var Email = pattern(emailRegex, "validation_email_format", "must be a valid email address")

// Identifier rules. Empty values pass; combine with validation.Required.
var (
	ID         = pattern(idRegex, "validation_id", "must match UUID format")
	IDList     = pattern(idListRegex, "validation_id_list", "must be a comma-separated list of UUIDs")
	GroupID    = pattern(groupIDRegex, "validation_group_id", "must match [a-zA-Z0-9._-] and be at most 50 characters")
	ArtifactID = pattern(
		artifactIDRegex,
		"validation_artifact_id",
		"must match [a-zA-Z0-9._-] and be at most 50 characters",
	)
	Version   = pattern(versionRegex, "validation_version", "must match [a-zA-Z0-9._-] and be at most 30 characters")
	AssetType = pattern(typeRegex, "validation_asset_type", "must match [a-zA-Z0-9_-] and be at most 30 characters")
	Subject   = pattern(subjectRegex, "validation_subject", "must match [a-zA-Z0-9|_-] and be at most 100 characters")
	TenantID  = pattern(tenantIDRegex, "validation_tenant_id", "must match [a-zA-Z0-9_-] and be at most 50 characters")
)

// Personal information rules.
var (
	FullName   = pattern(fullNameRegex, "validation_full_name", "must contain at least two names separated by a space")
	SingleName = pattern(singleNameRegex, "validation_single_name", "must be a single name of at most 50 letters")
)

// Contact medium rules.
var (
	CountryCode = pattern(countryCodeRegex, "validation_country_code", "must be + followed by 1 to 4 digits")
	PhoneNumber = pattern(phoneNumberRegex, "validation_phone_number", "must be 4 to 20 digits, spaces, dashes or parentheses")
	Address     = pattern(addressRegex, "validation_address", "must be at most 100 letters, digits or .,'#/- characters")
	PostalCode  = pattern(postalCodeRegex, "validation_postal_code", "must be at most 10 letters, digits, spaces or dashes")
)

// ISODate validates a YYYY-MM-DD calendar date.
var ISODate = validation.Date("2006-01-02").Error("must be a date in YYYY-MM-DD format")

// Base64 validates standard base64 text, such as a KMS-wrapped secret.
var Base64 = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	},
	validation.NewError("validation_base64", "must be valid base64-encoded data"),
)
