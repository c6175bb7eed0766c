package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateCondominium(name, email, description string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":        name,
		"email":       email,
		"description": description,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/condominios", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetCondominium(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/condominios/%s", d.baseURL, id))
}

func (d *APIDriver) ListCondominiums() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/condominios", d.baseURL))
}

func (d *APIDriver) UpdateCondominium(id, newName string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"name": newName})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/condominios/%s", d.baseURL, id), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) SoftDeleteCondominium(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/condominios/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateUser(condominiumID, name, email, role string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":  name,
		"email": email,
		"role":  role,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/condominios/%s/usuarios", d.baseURL, condominiumID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) CreateAsset(condominiumID, assetTypeSlug, name string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"tipoSlug": assetTypeSlug,
		"nome":     name,
		"torre":    "A",
		"local":    "terreo",
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/condominios/%s/ativos", d.baseURL, condominiumID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) ListPlans(condominiumID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/condominios/%s/planos", d.baseURL, condominiumID))
}

func (d *APIDriver) CreateWorkOrder(condominiumID, assetID, title, orderType string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"ativoId":         assetID,
		"titulo":          title,
		"tipoOS":          orderType,
		"prioridade":      "media",
		"tipoExecutor":    "externo",
		"executorNome":    "Thyssen Elevadores",
		"executorContato": "contato@thyssen.com.br",
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/condominios/%s/os", d.baseURL, condominiumID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) TransitionWorkOrder(workOrderID, status, note string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"status":     status,
		"observacao": note,
	})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/v1/os/%s/status", d.baseURL, workOrderID), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Name", "Sindico Teste")
	return d.client.Do(req)
}

func (d *APIDriver) GetWorkOrder(workOrderID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/os/%s", d.baseURL, workOrderID))
}

func (d *APIDriver) GetWorkOrderLogs(workOrderID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/os/%s/logs", d.baseURL, workOrderID))
}

func (d *APIDriver) ListWorkOrders(condominiumID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/condominios/%s/os", d.baseURL, condominiumID))
}

func (d *APIDriver) GetDashboard(condominiumID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/condominios/%s/dashboard", d.baseURL, condominiumID))
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}
