// Package domain defines the digital user aggregate: identity provider
// descriptor, personal information, contact media and the embedded asset list.
package domain

import (
	"time"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
)

// IdentityProvider names the identity provider that issued the user's subject.
type IdentityProvider string

const (
	AmazonCognito          IdentityProvider = "amazonCognito"
	AppleID                IdentityProvider = "appleId"
	GoogleIdentityPlatform IdentityProvider = "googleIdentityPlatform"
	KeyCloak               IdentityProvider = "keyCloak"
	MicrosoftEntraID       IdentityProvider = "microsoftEntraId"
)

// IdentityProviders lists every supported identity provider.
var IdentityProviders = []IdentityProvider{
	AmazonCognito, AppleID, GoogleIdentityPlatform, KeyCloak, MicrosoftEntraID,
}

// ParseIdentityProvider maps a wire value to an IdentityProvider.
func ParseIdentityProvider(value string) (IdentityProvider, error) {
	for _, idp := range IdentityProviders {
		if string(idp) == value {
			return idp, nil
		}
	}
	return "", ErrUnknownIdentityProvider
}

// ContactMediumType is the kind of a contact medium.
type ContactMediumType string

const (
	ContactPhone             ContactMediumType = "phone"
	ContactEmail             ContactMediumType = "email"
	ContactGeographicAddress ContactMediumType = "geographicAddress"
)

// ParseContactMediumType maps a wire value to a ContactMediumType.
func ParseContactMediumType(value string) (ContactMediumType, error) {
	switch ContactMediumType(value) {
	case ContactPhone, ContactEmail, ContactGeographicAddress:
		return ContactMediumType(value), nil
	default:
		return "", ErrUnknownContactMediumType
	}
}

// IdentityProviderInformation is the composite key of a digital user.
// The (Subject, IdentityProvider, TenantID) triple is unique.
type IdentityProviderInformation struct {
	Subject          string
	IdentityProvider IdentityProvider
	TenantID         string
}

// PersonalInformation holds the user's names and birth date. Every field is
// encrypted at rest; nil means absent.
type PersonalInformation struct {
	FullName   *string
	FirstName  *string
	MiddleName *string
	LastName   *string
	Nickname   *string
	// BirthDate is an ISO calendar date (YYYY-MM-DD).
	BirthDate *string
}

// Characteristic holds the contact details of a contact medium. Only the
// fields relevant to the medium type are set. Every field is encrypted at rest.
type Characteristic struct {
	CountryCode     *string
	PhoneNumber     *string
	EmailAddress    *string
	Country         *string
	City            *string
	StateOrProvince *string
	PostalCode      *string
	Street1         *string
	Street2         *string
}

// ContactMedium is a value object in the user's contact list.
type ContactMedium struct {
	Preferred      bool
	Type           ContactMediumType
	Characteristic *Characteristic
	ExpiresAt      *time.Time
}

// DigitalUser is the aggregate root. It exclusively owns its contact media and assets.
type DigitalUser struct {
	ID                          string
	IdentityProviderInformation IdentityProviderInformation
	PersonalInformation         *PersonalInformation
	ContactMediumList           []ContactMedium
	Assets                      []assetDomain.Asset
	CreatedAt                   time.Time
	UpdatedAt                   *time.Time
}

// DigitalUserCreate carries the caller-supplied fields of a new digital user.
type DigitalUserCreate struct {
	IdentityProviderInformation IdentityProviderInformation
	PersonalInformation         *PersonalInformation
	ContactMediumList           []ContactMedium
}
