package clients

import (
	"fmt"
	"strings"

	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"
)

type Repository interface {
	GetClients() ([]models.Client, error)
	GetClient(id int) (*models.Client, error)
	PersistClient(client models.Client) (*models.Client, error)
	UpdateClient(client models.Client) (*models.Client, error)
	DeleteClient(id int) error
}

type ClientService struct {
	r Repository
}

func NewClientService(r Repository) *ClientService {
	return &ClientService{r: r}
}

func (s *ClientService) List() ([]models.Client, error) {
	return s.r.GetClients()
}

func (s *ClientService) Get(id int) (*models.Client, error) {
	return s.r.GetClient(id)
}

func (s *ClientService) Create(req models.ClientRequest) (*models.Client, error) {
	client, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.r.PersistClient(client)
}

func (s *ClientService) Update(id int, req models.ClientRequest) (*models.Client, error) {
	client, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	client.ID = id
	return s.r.UpdateClient(client)
}

func (s *ClientService) Delete(id int) error {
	return s.r.DeleteClient(id)
}

func fromRequest(req models.ClientRequest) (models.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Client{}, custom_error.NewValidation(fmt.Errorf("name is required"))
	}

	return models.Client{
		Name:    name,
		Company: strings.TrimSpace(req.Company),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
	}, nil
}
