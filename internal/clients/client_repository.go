package clients

import (
	"fmt"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type ClientRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *ClientRepository {
	return &ClientRepository{repository: r}
}

func (r *ClientRepository) getClientQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("clients").As("cl")).
		Select(
			goqu.I("cl.id").As("id"),
			goqu.I("cl.name").As("name"),
			goqu.I("cl.company").As("company"),
			goqu.I("cl.phone").As("phone"),
			goqu.I("cl.email").As("email"),
		)
}

func (r *ClientRepository) GetClients() ([]models.Client, error) {
	clients := []models.Client{}
	err := r.getClientQuery().
		Order(goqu.I("cl.name").Asc(), goqu.I("cl.id").Asc()).
		Executor().
		ScanStructs(&clients)
	if err != nil {
		return nil, fmt.Errorf("unable to select clients: %w", err)
	}

	return clients, nil
}

func (r *ClientRepository) GetClient(id int) (*models.Client, error) {
	var client models.Client
	found, err := r.getClientQuery().
		Where(goqu.Ex{"cl.id": id}).
		Executor().
		ScanStruct(&client)
	if err != nil {
		return nil, fmt.Errorf("unable to select client %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("client", id)
	}

	return &client, nil
}

func (r *ClientRepository) PersistClient(client models.Client) (*models.Client, error) {
	_, err := r.repository.Goqu.Insert("clients").
		Rows(record(client)).
		Returning("id").
		Executor().
		ScanVal(&client.ID)
	if err != nil {
		return nil, repository.MapPQError("client", "client insert rejected", err)
	}

	return &client, nil
}

func (r *ClientRepository) UpdateClient(client models.Client) (*models.Client, error) {
	result, err := r.repository.Goqu.Update("clients").
		Set(record(client)).
		Where(goqu.Ex{"id": client.ID}).
		Executor().
		Exec()
	if err != nil {
		return nil, repository.MapPQError("client", "client update rejected", err)
	}
	if err := repository.CheckAffected(result, "client", client.ID); err != nil {
		return nil, err
	}

	return &client, nil
}

// DeleteClient fails with a foreign key violation while quotes still point at the client.
func (r *ClientRepository) DeleteClient(id int) error {
	result, err := r.repository.Goqu.Delete("clients").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return repository.MapPQError("client", "client still has quotes", err)
	}

	return repository.CheckAffected(result, "client", id)
}

func record(client models.Client) goqu.Record {
	return goqu.Record{
		"name":    client.Name,
		"company": client.Company,
		"phone":   client.Phone,
		"email":   client.Email,
	}
}
