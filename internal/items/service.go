package items

import (
	"context"
	"errors"
	"strings"
)

// ErrorInvalidInput es el único error de dominio de esta capa (no HTTP).
// Los handlers lo traducen a 400. No confundir con la taxonomía del
// store (faults): esto es validación del caller, no falla de persistencia.
var ErrorInvalidInput = errors.New("invalid input")

// RepositoryAPI define lo que el service necesita del repo.
// Permite testear el service con un fake sin tocar DB.
type RepositoryAPI interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int) (*Item, error)
	Insert(ctx context.Context, input CreateItemInput) (Item, error)
	Update(ctx context.Context, id int, input UpdateItemInput) (*Item, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// Service contiene reglas de negocio de items.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de items.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// Create valida reglas mínimas y crea el item en DB.
func (service *Service) Create(ctx context.Context, input CreateItemInput) (Item, error) {
	// Normalización mínima.
	input.Name = strings.TrimSpace(input.Name)

	if input.Name == "" {
		return Item{}, ErrorInvalidInput
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return Item{}, ErrorInvalidInput
	}
	if input.Price != nil && *input.Price < 0 {
		return Item{}, ErrorInvalidInput
	}

	return service.repository.Insert(ctx, input)
}

// List devuelve todos los items ordenados por id.
func (service *Service) List(ctx context.Context) ([]Item, error) {
	return service.repository.List(ctx)
}

// Get obtiene un item por ID; nil si no existe.
func (service *Service) Get(ctx context.Context, id int) (*Item, error) {
	return service.repository.GetByID(ctx, id)
}

// Update valida y aplica una actualización parcial.
// Un input sin campos es válido: devuelve la fila tal como está.
func (service *Service) Update(ctx context.Context, id int, input UpdateItemInput) (*Item, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrorInvalidInput
		}
		input.Name = &name
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, ErrorInvalidInput
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrorInvalidInput
	}

	return service.repository.Update(ctx, id, input)
}

// Delete elimina un item por ID. false si no existía.
func (service *Service) Delete(ctx context.Context, id int) (bool, error) {
	return service.repository.Delete(ctx, id)
}
