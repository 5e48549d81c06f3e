package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/schooladmin/internal/app/repositories"
	"github.com/yigit/schooladmin/internal/pkg/logger"
	"github.com/yigit/schooladmin/internal/pkg/validation"
)

// Form is a typed request that knows how to copy itself onto an entity.
type Form[T any] interface {
	Apply(entity *T)
}

// CrudService implements list/add/edit/delete for one record family.
type CrudService[T any, F Form[T]] struct {
	tx       repositories.TxManager
	store    repositories.Store[T]
	resource string
	prefill  func(*T) F
	logger   zerolog.Logger
}

// NewCrudService creates a CrudService. resource is the singular name used
// in status messages, e.g. "department".
func NewCrudService[T any, F Form[T]](
	tx repositories.TxManager,
	store repositories.Store[T],
	resource string,
	prefill func(*T) F,
) *CrudService[T, F] {
	return &CrudService[T, F]{
		tx:       tx,
		store:    store,
		resource: resource,
		prefill:  prefill,
		logger:   logger.Component("service").With().Str("resource", resource).Logger(),
	}
}

// Resource returns the singular resource name.
func (s *CrudService[T, F]) Resource() string {
	return s.resource
}

// List returns every record ordered by id.
func (s *CrudService[T, F]) List(ctx context.Context) ([]*T, error) {
	return s.store.List(ctx)
}

// NewForm returns an empty form.
func (s *CrudService[T, F]) NewForm() F {
	var form F
	return form
}

// Get returns record id.
func (s *CrudService[T, F]) Get(ctx context.Context, id int64) (*T, error) {
	return s.store.Get(ctx, id)
}

// EditForm returns a form pre-populated from record id.
func (s *CrudService[T, F]) EditForm(ctx context.Context, id int64) (F, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		var zero F
		return zero, err
	}
	return s.prefill(item), nil
}

// Add validates form and creates a new record from it.
func (s *CrudService[T, F]) Add(ctx context.Context, form F) (*Result[T], error) {
	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	item := new(T)
	form.Apply(item)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.store.Create(ctx, item)
	})
	if err != nil {
		return nil, conflictError(err)
	}

	s.logger.Info().Msg("Record added")
	return &Result[T]{Item: item, Message: fmt.Sprintf("You have successfully added a new %s.", s.resource)}, nil
}

// Edit overwrites record id with the submitted form. A missing record is
// reported before the form is validated.
func (s *CrudService[T, F]) Edit(ctx context.Context, id int64, form F) (*Result[T], error) {
	var item *T
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := validation.Struct(form); err != nil {
			return err
		}
		form.Apply(item)
		return s.store.Update(ctx, item)
	})
	if err != nil {
		return nil, conflictError(err)
	}

	s.logger.Info().Int64("id", id).Msg("Record edited")
	return &Result[T]{Item: item, Message: fmt.Sprintf("You have successfully edited the %s.", s.resource)}, nil
}

// Delete removes record id. Records linking to it keep existing with the
// link cleared.
func (s *CrudService[T, F]) Delete(ctx context.Context, id int64) (*Result[T], error) {
	var item *T
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		return s.store.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Msg("Record deleted")
	return &Result[T]{Item: item, Message: fmt.Sprintf("You have successfully deleted the %s.", s.resource)}, nil
}
