package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wip-project/wipcli/internal/client/models"
)

func TestProducts_ListByUser_DegradesToEmpty(t *testing.T) {
	f := &fakeClient{productErr: errors.New("boom")}
	s := NewProductService(f, quietLogger())

	got := s.ListByUser(context.Background(), 1)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestProducts_GetByID_DegradesToNil(t *testing.T) {
	f := &fakeClient{products: map[int64]*models.Product{}}
	s := NewProductService(f, quietLogger())
	require.Nil(t, s.GetByID(context.Background(), 99))
}

func TestProducts_Increment(t *testing.T) {
	f := &fakeClient{}
	s := NewProductService(f, quietLogger())

	p, err := s.Increment(context.Background(), models.Product{ID: 1, Quantity: 4, UserID: 2})
	require.NoError(t, err)
	require.Equal(t, 5, p.Quantity)
	require.Equal(t, 1, f.updateN)
	require.Equal(t, 5, f.updatedP[0].Quantity, "whole record re-persisted")
}

func TestProducts_DecrementAtZeroIssuesNoRequest(t *testing.T) {
	f := &fakeClient{}
	s := NewProductService(f, quietLogger())

	p, err := s.Decrement(context.Background(), models.Product{ID: 1, Quantity: 0})
	require.NoError(t, err)
	require.Equal(t, 0, p.Quantity, "quantity stays clamped at zero")
	require.Zero(t, f.updateN, "no network request with a negative value")
}

func TestProducts_DecrementAboveZero(t *testing.T) {
	f := &fakeClient{}
	s := NewProductService(f, quietLogger())

	p, err := s.Decrement(context.Background(), models.Product{ID: 1, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, 1, p.Quantity)
	require.Equal(t, 1, f.updateN)
}

func TestProducts_LowStock(t *testing.T) {
	f := &fakeClient{products: map[int64]*models.Product{
		1: {ID: 1, UserID: 5, Name: "Flour", Quantity: 1},
		2: {ID: 2, UserID: 5, Name: "Sugar", Quantity: 50},
	}}
	s := NewProductService(f, quietLogger())

	low := s.LowStock(context.Background(), 5, 3)
	require.Len(t, low, 1)
	require.Equal(t, "Flour", low[0].Name)
}
