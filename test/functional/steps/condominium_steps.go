package steps

import (
	"fmt"
	"net/http"
)

// Condominium step implementations
func (fc *FeatureContext) iCreateANewCondominiumWithNameAndEmail(name, email string) error {
	resp, err := fc.apiDriver.CreateCondominium(name, email, "Condominio de teste")
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aCondominiumExistsWithNameAndEmail(name, email string) error {
	resp, err := fc.apiDriver.CreateCondominium(name, email, "Condominio de teste")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.condominiumID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iGetTheCondominiumByItsID() error {
	resp, err := fc.apiDriver.GetCondominium(fc.condominiumID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theResponseShouldContainTheCondominiumWithName(name string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(name, data["name"])
	return nil
}

func (fc *FeatureContext) iListAllCondominiums() error {
	resp, err := fc.apiDriver.ListCondominiums()
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainTheCondominiumWithName(name string) error {
	condominiums, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, condominium := range condominiums {
		if condominium["name"] == name {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Condominium with name %s not found in list", name))
	return nil
}

func (fc *FeatureContext) iUpdateTheCondominiumWithANewName(newName string) error {
	resp, err := fc.apiDriver.UpdateCondominium(fc.condominiumID, newName)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iSoftDeleteTheCondominium() error {
	resp, err := fc.apiDriver.SoftDeleteCondominium(fc.condominiumID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theCondominiumShouldBeSoftDeleted() error {
	resp, err := fc.apiDriver.GetCondominium(fc.condominiumID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.require.NotNil(data["deleted_at"], "expected deleted_at to be set")
	return nil
}
