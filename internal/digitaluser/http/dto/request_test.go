package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
)

func ptr(s string) *string { return &s }

func validCreateRequest() *CreateDigitalUserRequest {
	return &CreateDigitalUserRequest{
		IdentityProviderInformation: &IdentityProviderInformationRequest{
			Subject:          "auth0|8c1f2e",
			IdentityProvider: "keyCloak",
			TenantID:         "tenant-1",
		},
		PersonalInformation: &PersonalInformationRequest{
			FullName:  ptr("Ada Lovelace"),
			FirstName: ptr("Ada"),
			LastName:  ptr("Lovelace"),
			BirthDate: ptr("1815-12-10"),
		},
		ContactMediumList: []ContactMediumRequest{
			{
				Preferred: true,
				Type:      "email",
				Characteristic: &CharacteristicRequest{
					EmailAddress: ptr("ada@example.com"),
				},
			},
			{
				Type: "phone",
				Characteristic: &CharacteristicRequest{
					CountryCode: ptr("+44"),
					PhoneNumber: ptr("20 7946 0958"),
				},
			},
		},
	}
}

func TestCreateDigitalUserRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		assert.NoError(t, validCreateRequest().Validate())
	})

	t.Run("Success_OnlyIdentityProviderInformation", func(t *testing.T) {
		req := &CreateDigitalUserRequest{IdentityProviderInformation: validCreateRequest().IdentityProviderInformation}
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		mutate func(r *CreateDigitalUserRequest)
	}{
		{"Error_MissingIdentityProviderInformation", func(r *CreateDigitalUserRequest) {
			r.IdentityProviderInformation = nil
		}},
		{"Error_MissingSubject", func(r *CreateDigitalUserRequest) {
			r.IdentityProviderInformation.Subject = ""
		}},
		{"Error_UnknownIdentityProvider", func(r *CreateDigitalUserRequest) {
			r.IdentityProviderInformation.IdentityProvider = "okta"
		}},
		{"Error_InvalidTenantID", func(r *CreateDigitalUserRequest) {
			r.IdentityProviderInformation.TenantID = "tenant 1"
		}},
		{"Error_FullNameSingleWord", func(r *CreateDigitalUserRequest) {
			r.PersonalInformation.FullName = ptr("Ada")
		}},
		{"Error_BirthDateFormat", func(r *CreateDigitalUserRequest) {
			r.PersonalInformation.BirthDate = ptr("10/12/1815")
		}},
		{"Error_UnknownContactType", func(r *CreateDigitalUserRequest) {
			r.ContactMediumList[0].Type = "fax"
		}},
		{"Error_MissingCharacteristic", func(r *CreateDigitalUserRequest) {
			r.ContactMediumList[0].Characteristic = nil
		}},
		{"Error_InvalidEmail", func(r *CreateDigitalUserRequest) {
			r.ContactMediumList[0].Characteristic.EmailAddress = ptr("not-an-email")
		}},
		{"Error_PhoneWithoutNumber", func(r *CreateDigitalUserRequest) {
			r.ContactMediumList[1].Characteristic.PhoneNumber = nil
		}},
		{"Error_AddressWithoutStreet", func(r *CreateDigitalUserRequest) {
			r.ContactMediumList[1] = ContactMediumRequest{
				Type:           "geographicAddress",
				Characteristic: &CharacteristicRequest{Country: ptr("Portugal")},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateDigitalUserRequest_ToDomain(t *testing.T) {
	in, err := validCreateRequest().ToDomain()
	require.NoError(t, err)

	assert.Equal(t, userDomain.KeyCloak, in.IdentityProviderInformation.IdentityProvider)
	assert.Equal(t, "tenant-1", in.IdentityProviderInformation.TenantID)
	require.NotNil(t, in.PersonalInformation)
	assert.Equal(t, "Ada Lovelace", *in.PersonalInformation.FullName)
	assert.Nil(t, in.PersonalInformation.Nickname)
	require.Len(t, in.ContactMediumList, 2)
	assert.True(t, in.ContactMediumList[0].Preferred)
	assert.Equal(t, userDomain.ContactEmail, in.ContactMediumList[0].Type)
	assert.Equal(t, "+44", *in.ContactMediumList[1].Characteristic.CountryCode)
}

func TestCreateDigitalUserRequest_ToDomain_UnknownEnums(t *testing.T) {
	t.Run("Error_IdentityProvider", func(t *testing.T) {
		req := validCreateRequest()
		req.IdentityProviderInformation.IdentityProvider = "AMAZON_COGNITO"

		_, err := req.ToDomain()
		assert.ErrorIs(t, err, userDomain.ErrUnknownIdentityProvider)
	})

	t.Run("Error_ContactMediumType", func(t *testing.T) {
		req := validCreateRequest()
		req.ContactMediumList[0].Type = "fax"

		_, err := req.ToDomain()
		assert.ErrorIs(t, err, userDomain.ErrUnknownContactMediumType)
	})
}

func TestMapDigitalUserToResponse(t *testing.T) {
	in, err := validCreateRequest().ToDomain()
	require.NoError(t, err)

	user := userDomain.DigitalUser{
		ID:                          "0190f2a4-7b5e-7c1d-9a3e-5f6b7c8d9e0f",
		IdentityProviderInformation: in.IdentityProviderInformation,
		PersonalInformation:         in.PersonalInformation,
		ContactMediumList:           in.ContactMediumList,
	}

	response := MapDigitalUserToResponse(user)

	assert.Equal(t, user.ID, response.ID)
	assert.Equal(t, "keyCloak", response.IdentityProviderInformation.IdentityProvider)
	assert.Len(t, response.ContactMediumList, 2)
	assert.NotNil(t, response.Assets)
	assert.Empty(t, response.Assets)
}
