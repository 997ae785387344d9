package storage

import (
	"context"
	"errors"

	"github.com/harentsoaR/dentallab-api/internal/errs"
	"github.com/harentsoaR/dentallab-api/internal/models"
)

// OrderView is an order with its clinic reference resolved into the full
// document. A dangling or absent reference resolves to null rather than an
// error. The embedded order's clinic id is shadowed by the resolved field.
type OrderView struct {
	models.Order
	Clinic *models.Clinic `json:"clinic"`
}

// Orders decorates the plain order store with clinic resolution on reads,
// the one join in the API. Writes pass through untouched.
type Orders struct {
	Store[models.Order]
	clinics Store[models.Clinic]
}

func NewOrders(orders Store[models.Order], clinics Store[models.Clinic]) *Orders {
	return &Orders{Store: orders, clinics: clinics}
}

// ListResolved returns every order with its clinic attached.
func (o *Orders) ListResolved(ctx context.Context) ([]OrderView, error) {
	orders, err := o.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		view, err := o.resolve(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// GetResolved returns one order with its clinic attached.
func (o *Orders) GetResolved(ctx context.Context, id string) (*OrderView, error) {
	order, err := o.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return o.resolve(ctx, order)
}

func (o *Orders) resolve(ctx context.Context, order *models.Order) (*OrderView, error) {
	view := &OrderView{Order: *order}
	if order.Clinic == nil {
		return view, nil
	}

	clinic, err := o.clinics.Get(ctx, order.Clinic.Hex())
	if errors.Is(err, errs.ErrNotFound) {
		// dangling reference, tolerated
		return view, nil
	}
	if err != nil {
		return nil, err
	}
	view.Clinic = clinic
	return view, nil
}
