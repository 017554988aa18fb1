package repository

import (
	"time"

	"github.com/tracktainment/duxmanager/internal/crypto/fieldcrypt"
)

// BaseDocument holds the identifier and timestamps shared by persisted documents.
type BaseDocument struct {
	ID        string     `bson:"id"`
	CreatedAt time.Time  `bson:"createdAt"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

// WalkSensitive declares no sensitive fields. Embedding documents call it so
// that fields added here are picked up by every descendant.
func (b *BaseDocument) WalkSensitive(w *fieldcrypt.Walker) error {
	return nil
}

// DigitalUserDocument is the persisted digital user, assets embedded.
// Its identifier is the collection primary key "_id".
type DigitalUserDocument struct {
	ID                          string                              `bson:"_id"`
	CreatedAt                   time.Time                           `bson:"createdAt"`
	UpdatedAt                   *time.Time                          `bson:"updatedAt,omitempty"`
	IdentityProviderInformation IdentityProviderInformationDocument `bson:"identityProviderInformation"`
	PersonalInformation         *PersonalInformationDocument        `bson:"personalInformation,omitempty"`
	ContactMediumList           []ContactMediumDocument             `bson:"contactMediumList"`
	Assets                      []AssetDocument                     `bson:"assets"`
}

// WalkSensitive visits personal information, contact media and assets.
func (d *DigitalUserDocument) WalkSensitive(w *fieldcrypt.Walker) error {
	if d == nil {
		return nil
	}
	if err := w.Walk(d.PersonalInformation); err != nil {
		return err
	}
	if err := fieldcrypt.WalkSlice(w, d.ContactMediumList); err != nil {
		return err
	}
	return fieldcrypt.WalkSlice(w, d.Assets)
}

// IdentityProviderInformationDocument is stored in plaintext; it is the lookup key.
type IdentityProviderInformationDocument struct {
	Subject          string `bson:"subject"`
	IdentityProvider string `bson:"identityProvider"`
	TenantID         string `bson:"tenantId"`
}

// PersonalInformationDocument fields are all sensitive.
type PersonalInformationDocument struct {
	FullName   *string `bson:"fullName,omitempty"`
	FirstName  *string `bson:"firstName,omitempty"`
	MiddleName *string `bson:"middleName,omitempty"`
	LastName   *string `bson:"lastName,omitempty"`
	Nickname   *string `bson:"nickname,omitempty"`
	BirthDate  *string `bson:"birthDate,omitempty"`
}

func (p *PersonalInformationDocument) WalkSensitive(w *fieldcrypt.Walker) error {
	if p == nil {
		return nil
	}
	fields := []struct {
		name  string
		value **string
	}{
		{"fullName", &p.FullName},
		{"firstName", &p.FirstName},
		{"middleName", &p.MiddleName},
		{"lastName", &p.LastName},
		{"nickname", &p.Nickname},
		{"birthDate", &p.BirthDate},
	}
	for _, f := range fields {
		if err := w.Field(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// ContactMediumDocument is an element of the contact list.
type ContactMediumDocument struct {
	Preferred      bool                    `bson:"preferred"`
	Type           string                  `bson:"type"`
	Characteristic *CharacteristicDocument `bson:"characteristic,omitempty"`
	ExpiresAt      *time.Time              `bson:"expiresAt,omitempty"`
}

func (c *ContactMediumDocument) WalkSensitive(w *fieldcrypt.Walker) error {
	if c == nil {
		return nil
	}
	return w.Walk(c.Characteristic)
}

// CharacteristicDocument fields are all sensitive.
type CharacteristicDocument struct {
	CountryCode     *string `bson:"countryCode,omitempty"`
	PhoneNumber     *string `bson:"phoneNumber,omitempty"`
	EmailAddress    *string `bson:"emailAddress,omitempty"`
	Country         *string `bson:"country,omitempty"`
	City            *string `bson:"city,omitempty"`
	StateOrProvince *string `bson:"stateOrProvince,omitempty"`
	PostalCode      *string `bson:"postalCode,omitempty"`
	Street1         *string `bson:"street1,omitempty"`
	Street2         *string `bson:"street2,omitempty"`
}

func (c *CharacteristicDocument) WalkSensitive(w *fieldcrypt.Walker) error {
	if c == nil {
		return nil
	}
	fields := []struct {
		name  string
		value **string
	}{
		{"countryCode", &c.CountryCode},
		{"phoneNumber", &c.PhoneNumber},
		{"emailAddress", &c.EmailAddress},
		{"country", &c.Country},
		{"city", &c.City},
		{"stateOrProvince", &c.StateOrProvince},
		{"postalCode", &c.PostalCode},
		{"street1", &c.Street1},
		{"street2", &c.Street2},
	}
	for _, f := range fields {
		if err := w.Field(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// AssetDocument is an element of the embedded asset list.
type AssetDocument struct {
	BaseDocument        `bson:",inline"`
	ExternalID          string                      `bson:"externalId"`
	Type                string                      `bson:"type"`
	PermissionPolicy    string                      `bson:"permissionPolicy"`
	ArtifactInformation ArtifactInformationDocument `bson:"artifactInformation"`
}

// WalkSensitive only follows the base document; asset fields are not sensitive.
func (a *AssetDocument) WalkSensitive(w *fieldcrypt.Walker) error {
	if a == nil {
		return nil
	}
	return a.BaseDocument.WalkSensitive(w)
}

// ArtifactInformationDocument identifies the artifact of an asset.
type ArtifactInformationDocument struct {
	GroupID    string `bson:"groupId"`
	ArtifactID string `bson:"artifactId"`
	Version    string `bson:"version"`
}
