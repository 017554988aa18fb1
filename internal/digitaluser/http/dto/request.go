// Package dto provides data transfer objects for digital user HTTP requests and responses.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
	customValidation "github.com/tracktainment/duxmanager/internal/validation"
)

func identityProviderValues() []interface{} {
	values := make([]interface{}, 0, len(userDomain.IdentityProviders))
	for _, idp := range userDomain.IdentityProviders {
		values = append(values, string(idp))
	}
	return values
}

// IdentityProviderInformationRequest is the composite key of a digital user.
type IdentityProviderInformationRequest struct {
	Subject          string `json:"subject"          form:"identityProviderInformation.subject"`
	IdentityProvider string `json:"identityProvider" form:"identityProviderInformation.identityProvider"`
	TenantID         string `json:"tenantId"         form:"identityProviderInformation.tenantId"`
}

// Validate requires all three parts of the key.
func (r IdentityProviderInformationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Subject, validation.Required, customValidation.Subject),
		validation.Field(&r.IdentityProvider, validation.Required, validation.In(identityProviderValues()...)),
		validation.Field(&r.TenantID, validation.Required, customValidation.TenantID),
	)
}

// ToDomain converts the request to the domain key.
func (r IdentityProviderInformationRequest) ToDomain() (userDomain.IdentityProviderInformation, error) {
	idp, err := userDomain.ParseIdentityProvider(r.IdentityProvider)
	if err != nil {
		return userDomain.IdentityProviderInformation{}, err
	}
	return userDomain.IdentityProviderInformation{
		Subject:          r.Subject,
		IdentityProvider: idp,
		TenantID:         r.TenantID,
	}, nil
}

// PersonalInformationRequest holds optional names and an ISO birth date.
type PersonalInformationRequest struct {
	FullName   *string `json:"fullName"`
	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
	LastName   *string `json:"lastName"`
	Nickname   *string `json:"nickname"`
	BirthDate  *string `json:"birthDate"`
}

// Validate checks the format of every present field.
func (r PersonalInformationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, customValidation.FullName),
		validation.Field(&r.FirstName, customValidation.SingleName),
		validation.Field(&r.MiddleName, customValidation.SingleName),
		validation.Field(&r.LastName, customValidation.SingleName),
		validation.Field(&r.Nickname, customValidation.SingleName),
		validation.Field(&r.BirthDate, customValidation.ISODate),
	)
}

// CharacteristicRequest holds the details of a contact medium.
type CharacteristicRequest struct {
	CountryCode     *string `json:"countryCode"`
	PhoneNumber     *string `json:"phoneNumber"`
	EmailAddress    *string `json:"emailAddress"`
	Country         *string `json:"country"`
	City            *string `json:"city"`
	StateOrProvince *string `json:"stateOrProvince"`
	PostalCode      *string `json:"postalCode"`
	Street1         *string `json:"street1"`
	Street2         *string `json:"street2"`
}

// Validate checks the format of every present field.
func (r CharacteristicRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CountryCode, customValidation.CountryCode),
		validation.Field(&r.PhoneNumber, customValidation.PhoneNumber),
		validation.Field(&r.EmailAddress, customValidation.Email),
		validation.Field(&r.Country, customValidation.Address),
		validation.Field(&r.City, customValidation.Address),
		validation.Field(&r.StateOrProvince, customValidation.Address),
		validation.Field(&r.PostalCode, customValidation.PostalCode),
		validation.Field(&r.Street1, customValidation.Address),
		validation.Field(&r.Street2, customValidation.Address),
	)
}

// ContactMediumRequest is one element of the contact medium list.
type ContactMediumRequest struct {
	Preferred      bool                   `json:"preferred"`
	Type           string                 `json:"type"`
	Characteristic *CharacteristicRequest `json:"characteristic"`
	ExpiresAt      *time.Time             `json:"expiresAt"`
}

// Validate requires the type and the characteristic fields that type needs.
func (r ContactMediumRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(
			string(userDomain.ContactPhone),
			string(userDomain.ContactEmail),
			string(userDomain.ContactGeographicAddress),
		)),
		validation.Field(&r.Characteristic, validation.Required),
	)
	if err != nil || r.Characteristic == nil {
		return err
	}

	ch := r.Characteristic
	return validation.Errors{
		"characteristic.countryCode": validation.Validate(ch.CountryCode,
			validation.When(r.Type == string(userDomain.ContactPhone), validation.Required)),
		"characteristic.phoneNumber": validation.Validate(ch.PhoneNumber,
			validation.When(r.Type == string(userDomain.ContactPhone), validation.Required)),
		"characteristic.emailAddress": validation.Validate(ch.EmailAddress,
			validation.When(r.Type == string(userDomain.ContactEmail), validation.Required)),
		"characteristic.country": validation.Validate(ch.Country,
			validation.When(r.Type == string(userDomain.ContactGeographicAddress), validation.Required)),
		"characteristic.street1": validation.Validate(ch.Street1,
			validation.When(r.Type == string(userDomain.ContactGeographicAddress), validation.Required)),
	}.Filter()
}

func (r ContactMediumRequest) toDomain() (userDomain.ContactMedium, error) {
	mediumType, err := userDomain.ParseContactMediumType(r.Type)
	if err != nil {
		return userDomain.ContactMedium{}, err
	}

	medium := userDomain.ContactMedium{
		Preferred: r.Preferred,
		Type:      mediumType,
		ExpiresAt: r.ExpiresAt,
	}
	if ch := r.Characteristic; ch != nil {
		medium.Characteristic = &userDomain.Characteristic{
			CountryCode:     ch.CountryCode,
			PhoneNumber:     ch.PhoneNumber,
			EmailAddress:    ch.EmailAddress,
			Country:         ch.Country,
			City:            ch.City,
			StateOrProvince: ch.StateOrProvince,
			PostalCode:      ch.PostalCode,
			Street1:         ch.Street1,
			Street2:         ch.Street2,
		}
	}
	return medium, nil
}

// CreateDigitalUserRequest is the body of POST /api/v1/digitalUsers.
type CreateDigitalUserRequest struct {
	IdentityProviderInformation *IdentityProviderInformationRequest `json:"identityProviderInformation"`
	PersonalInformation         *PersonalInformationRequest         `json:"personalInformation"`
	ContactMediumList           []ContactMediumRequest              `json:"contactMediumList"`
}

// Validate checks if the create digital user request is valid.
func (r *CreateDigitalUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IdentityProviderInformation, validation.Required),
		validation.Field(&r.PersonalInformation),
		validation.Field(&r.ContactMediumList),
	)
}

// ToDomain converts a validated request to the domain creation shape.
func (r *CreateDigitalUserRequest) ToDomain() (userDomain.DigitalUserCreate, error) {
	key, err := r.IdentityProviderInformation.ToDomain()
	if err != nil {
		return userDomain.DigitalUserCreate{}, err
	}

	in := userDomain.DigitalUserCreate{IdentityProviderInformation: key}

	if p := r.PersonalInformation; p != nil {
		in.PersonalInformation = &userDomain.PersonalInformation{
			FullName:   p.FullName,
			FirstName:  p.FirstName,
			MiddleName: p.MiddleName,
			LastName:   p.LastName,
			Nickname:   p.Nickname,
			BirthDate:  p.BirthDate,
		}
	}

	for _, medium := range r.ContactMediumList {
		cm, err := medium.toDomain()
		if err != nil {
			return userDomain.DigitalUserCreate{}, err
		}
		in.ContactMediumList = append(in.ContactMediumList, cm)
	}

	return in, nil
}
