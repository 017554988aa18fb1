package repository

import (
	"time"

	"github.com/google/uuid"

	assetDomain "github.com/tracktainment/duxmanager/internal/asset/domain"
	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
)

// NewID returns a fresh time-ordered identifier.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// CreateToUserDocument builds the persisted shape of a new digital user with a
// fresh id and an empty asset list. Timestamps are left for the store to stamp.
func CreateToUserDocument(in userDomain.DigitalUserCreate) (*DigitalUserDocument, error) {
	idp, err := userDomain.ParseIdentityProvider(string(in.IdentityProviderInformation.IdentityProvider))
	if err != nil {
		return nil, err
	}

	contacts, err := contactMediaToDocuments(in.ContactMediumList)
	if err != nil {
		return nil, err
	}

	return &DigitalUserDocument{
		ID: NewID(),
		IdentityProviderInformation: IdentityProviderInformationDocument{
			Subject:          in.IdentityProviderInformation.Subject,
			IdentityProvider: string(idp),
			TenantID:         in.IdentityProviderInformation.TenantID,
		},
		PersonalInformation: personalInformationToDocument(in.PersonalInformation),
		ContactMediumList:   contacts,
		Assets:              []AssetDocument{},
	}, nil
}

// CreateToAssetDocument builds the persisted shape of a new asset with a fresh id.
func CreateToAssetDocument(in assetDomain.AssetCreate) (AssetDocument, error) {
	policy, err := assetDomain.ParsePermissionPolicy(string(in.PermissionPolicy))
	if err != nil {
		return AssetDocument{}, err
	}

	return AssetDocument{
		BaseDocument:     BaseDocument{ID: NewID()},
		ExternalID:       in.ExternalID,
		Type:             in.Type,
		PermissionPolicy: string(policy),
		ArtifactInformation: ArtifactInformationDocument{
			GroupID:    in.ArtifactInformation.GroupID,
			ArtifactID: in.ArtifactInformation.ArtifactID,
			Version:    in.ArtifactInformation.Version,
		},
	}, nil
}

// DocumentToUser converts a decrypted document to the domain aggregate.
func DocumentToUser(doc *DigitalUserDocument) (*userDomain.DigitalUser, error) {
	idp, err := userDomain.ParseIdentityProvider(doc.IdentityProviderInformation.IdentityProvider)
	if err != nil {
		return nil, err
	}

	contacts := make([]userDomain.ContactMedium, 0, len(doc.ContactMediumList))
	for _, c := range doc.ContactMediumList {
		contactType, err := userDomain.ParseContactMediumType(c.Type)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, userDomain.ContactMedium{
			Preferred:      c.Preferred,
			Type:           contactType,
			Characteristic: documentToCharacteristic(c.Characteristic),
			ExpiresAt:      c.ExpiresAt,
		})
	}

	assets, err := DocumentsToAssets(doc.Assets)
	if err != nil {
		return nil, err
	}

	return &userDomain.DigitalUser{
		ID: doc.ID,
		IdentityProviderInformation: userDomain.IdentityProviderInformation{
			Subject:          doc.IdentityProviderInformation.Subject,
			IdentityProvider: idp,
			TenantID:         doc.IdentityProviderInformation.TenantID,
		},
		PersonalInformation: documentToPersonalInformation(doc.PersonalInformation),
		ContactMediumList:   contacts,
		Assets:              assets,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}, nil
}

// DocumentToAsset converts an asset element to the domain model.
func DocumentToAsset(doc AssetDocument) (assetDomain.Asset, error) {
	policy, err := assetDomain.ParsePermissionPolicy(doc.PermissionPolicy)
	if err != nil {
		return assetDomain.Asset{}, err
	}

	return assetDomain.Asset{
		ID:               doc.ID,
		ExternalID:       doc.ExternalID,
		Type:             doc.Type,
		PermissionPolicy: policy,
		ArtifactInformation: assetDomain.ArtifactInformation{
			GroupID:    doc.ArtifactInformation.GroupID,
			ArtifactID: doc.ArtifactInformation.ArtifactID,
			Version:    doc.ArtifactInformation.Version,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// DocumentsToAssets converts an asset list, preserving order. Never returns nil on success.
func DocumentsToAssets(docs []AssetDocument) ([]assetDomain.Asset, error) {
	assets := make([]assetDomain.Asset, 0, len(docs))
	for _, doc := range docs {
		asset, err := DocumentToAsset(doc)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func contactMediaToDocuments(in []userDomain.ContactMedium) ([]ContactMediumDocument, error) {
	docs := make([]ContactMediumDocument, 0, len(in))
	for _, c := range in {
		contactType, err := userDomain.ParseContactMediumType(string(c.Type))
		if err != nil {
			return nil, err
		}
		docs = append(docs, ContactMediumDocument{
			Preferred:      c.Preferred,
			Type:           string(contactType),
			Characteristic: characteristicToDocument(c.Characteristic),
			ExpiresAt:      utcPtr(c.ExpiresAt),
		})
	}
	return docs, nil
}

func personalInformationToDocument(in *userDomain.PersonalInformation) *PersonalInformationDocument {
	if in == nil {
		return nil
	}
	return &PersonalInformationDocument{
		FullName:   clone(in.FullName),
		FirstName:  clone(in.FirstName),
		MiddleName: clone(in.MiddleName),
		LastName:   clone(in.LastName),
		Nickname:   clone(in.Nickname),
		BirthDate:  clone(in.BirthDate),
	}
}

func documentToPersonalInformation(doc *PersonalInformationDocument) *userDomain.PersonalInformation {
	if doc == nil {
		return nil
	}
	return &userDomain.PersonalInformation{
		FullName:   clone(doc.FullName),
		FirstName:  clone(doc.FirstName),
		MiddleName: clone(doc.MiddleName),
		LastName:   clone(doc.LastName),
		Nickname:   clone(doc.Nickname),
		BirthDate:  clone(doc.BirthDate),
	}
}

func characteristicToDocument(in *userDomain.Characteristic) *CharacteristicDocument {
	if in == nil {
		return nil
	}
	return &CharacteristicDocument{
		CountryCode:     clone(in.CountryCode),
		PhoneNumber:     clone(in.PhoneNumber),
		EmailAddress:    clone(in.EmailAddress),
		Country:         clone(in.Country),
		City:            clone(in.City),
		StateOrProvince: clone(in.StateOrProvince),
		PostalCode:      clone(in.PostalCode),
		Street1:         clone(in.Street1),
		Street2:         clone(in.Street2),
	}
}

func documentToCharacteristic(doc *CharacteristicDocument) *userDomain.Characteristic {
	if doc == nil {
		return nil
	}
	return &userDomain.Characteristic{
		CountryCode:     clone(doc.CountryCode),
		PhoneNumber:     clone(doc.PhoneNumber),
		EmailAddress:    clone(doc.EmailAddress),
		Country:         clone(doc.Country),
		City:            clone(doc.City),
		StateOrProvince: clone(doc.StateOrProvince),
		PostalCode:      clone(doc.PostalCode),
		Street1:         clone(doc.Street1),
		Street2:         clone(doc.Street2),
	}
}

// clone copies the pointed-to value so encrypting a document never rewrites
// the caller's input in place.
func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
