package dto

import (
	"time"

	assetDto "github.com/tracktainment/duxmanager/internal/asset/http/dto"
	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
)

// IdentityProviderInformationResponse mirrors domain.IdentityProviderInformation.
type IdentityProviderInformationResponse struct {
	Subject          string `json:"subject"`
	IdentityProvider string `json:"identityProvider"`
	TenantID         string `json:"tenantId"`
}

// PersonalInformationResponse mirrors domain.PersonalInformation.
type PersonalInformationResponse struct {
	FullName   *string `json:"fullName,omitempty"`
	FirstName  *string `json:"firstName,omitempty"`
	MiddleName *string `json:"middleName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Nickname   *string `json:"nickname,omitempty"`
	BirthDate  *string `json:"birthDate,omitempty"`
}

// CharacteristicResponse mirrors domain.Characteristic.
type CharacteristicResponse struct {
	CountryCode     *string `json:"countryCode,omitempty"`
	PhoneNumber     *string `json:"phoneNumber,omitempty"`
	EmailAddress    *string `json:"emailAddress,omitempty"`
	Country         *string `json:"country,omitempty"`
	City            *string `json:"city,omitempty"`
	StateOrProvince *string `json:"stateOrProvince,omitempty"`
	PostalCode      *string `json:"postalCode,omitempty"`
	Street1         *string `json:"street1,omitempty"`
	Street2         *string `json:"street2,omitempty"`
}

// ContactMediumResponse mirrors domain.ContactMedium.
type ContactMediumResponse struct {
	Preferred      bool                    `json:"preferred"`
	Type           string                  `json:"type"`
	Characteristic *CharacteristicResponse `json:"characteristic,omitempty"`
	ExpiresAt      *time.Time              `json:"expiresAt,omitempty"`
}

// DigitalUserResponse represents a digital user in API responses.
type DigitalUserResponse struct {
	ID                          string                              `json:"id"`
	IdentityProviderInformation IdentityProviderInformationResponse `json:"identityProviderInformation"`
	PersonalInformation         *PersonalInformationResponse        `json:"personalInformation,omitempty"`
	ContactMediumList           []ContactMediumResponse             `json:"contactMediumList"`
	Assets                      []assetDto.AssetResponse            `json:"assets"`
	CreatedAt                   time.Time                           `json:"createdAt"`
	UpdatedAt                   *time.Time                          `json:"updatedAt,omitempty"`
}

// MapDigitalUserToResponse converts a domain digital user to an API response.
func MapDigitalUserToResponse(user userDomain.DigitalUser) DigitalUserResponse {
	response := DigitalUserResponse{
		ID: user.ID,
		IdentityProviderInformation: IdentityProviderInformationResponse{
			Subject:          user.IdentityProviderInformation.Subject,
			IdentityProvider: string(user.IdentityProviderInformation.IdentityProvider),
			TenantID:         user.IdentityProviderInformation.TenantID,
		},
		ContactMediumList: make([]ContactMediumResponse, 0, len(user.ContactMediumList)),
		Assets:            assetDto.MapAssetsToResponse(user.Assets),
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}

	if p := user.PersonalInformation; p != nil {
		response.PersonalInformation = &PersonalInformationResponse{
			FullName:   p.FullName,
			FirstName:  p.FirstName,
			MiddleName: p.MiddleName,
			LastName:   p.LastName,
			Nickname:   p.Nickname,
			BirthDate:  p.BirthDate,
		}
	}

	for _, medium := range user.ContactMediumList {
		cm := ContactMediumResponse{
			Preferred: medium.Preferred,
			Type:      string(medium.Type),
			ExpiresAt: medium.ExpiresAt,
		}
		if ch := medium.Characteristic; ch != nil {
			cm.Characteristic = &CharacteristicResponse{
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
		response.ContactMediumList = append(response.ContactMediumList, cm)
	}

	return response
}
