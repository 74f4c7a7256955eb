package service

import (
	"context"

	"imobia/internal/dto"
	"imobia/internal/entity"
	"imobia/internal/repository"

	"github.com/google/uuid"
)

type CustomerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) List(ctx context.Context) ([]entity.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, input dto.CustomerCreateRequest) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:               uuid.New(),
		Name:             input.Name,
		Type:             entity.CustomerTypeFisica,
		Document:         input.Document,
		RG:               input.RG,
		IssuingOrgan:     input.IssuingOrgan,
		StateInscription: input.StateInscription,
		Phone:            input.Phone,
		AltPhone:         input.AltPhone,
		Email:            input.Email,
		Street:           input.Street,
		Number:           input.Number,
		Complement:       input.Complement,
		Neighborhood:     input.Neighborhood,
		City:             input.City,
		State:            input.State,
		Zip:              input.Zip,
		Interest:         input.Interest,
		PropertyType:     input.PropertyType,
		ValueRange:       input.ValueRange,
		Observations:     input.Observations,
		Status:           entity.UserStatusActive,
	}
	if input.Type != "" {
		customer.Type = entity.CustomerType(input.Type)
	}
	if input.Status != "" {
		customer.Status = entity.UserStatus(input.Status)
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update merges: fields absent from the payload keep their stored values.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input dto.CustomerUpdateRequest) (*entity.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	input.Apply(customer)
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete is idempotent; listings owned by the customer keep existing with
// owner_id set to NULL by the schema.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customers.Delete(ctx, id)
}
