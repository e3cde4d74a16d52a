package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
)

func TestSupplierDelete_ConProductosAsociados(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := NewSupplierUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.SupplierCreateRequest{Name: "Distribuciones Norte"})
	require.NoError(t, err)
	repo.referenced[created.Key] = true

	err = uc.Delete(ctx, created.Key)
	assert.ErrorIs(t, err, domain.ErrReferenced)

	// El proveedor sigue existiendo.
	current, err := uc.GetByKey(ctx, created.Key)
	require.NoError(t, err)
	require.NotNil(t, current)
}

func TestSupplierDelete_SinReferencias(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := NewSupplierUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.SupplierCreateRequest{Name: "Distribuciones Norte"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.Key))

	gone, err := uc.GetByKey(ctx, created.Key)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSupplierUpdate_ConflictoDeVersion(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := NewSupplierUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.SupplierCreateRequest{Name: "Distribuciones Norte"})
	require.NoError(t, err)

	require.NoError(t, uc.Update(ctx, dto.SupplierUpdateRequest{
		Key: created.Key, Name: "Distribuciones Sur", RowVersion: 0,
	}))

	err = uc.Update(ctx, dto.SupplierUpdateRequest{
		Key: created.Key, Name: "Distribuciones Este", RowVersion: 0,
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}
