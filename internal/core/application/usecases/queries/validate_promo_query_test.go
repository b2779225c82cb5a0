package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatePromoQuery_Valid(t *testing.T) {
	total, err := kernel.NewMoney(2400)
	require.NoError(t, err)

	query, err := queries.NewValidatePromoQuery("TENOFF", kernel.NewUUID(), total)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "TENOFF", query.Code())
}

func TestNewValidatePromoQuery_EmptyCode(t *testing.T) {
	total, err := kernel.NewMoney(2400)
	require.NoError(t, err)

	_, err = queries.NewValidatePromoQuery("", kernel.NewUUID(), total)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestValidatePromoQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ValidatePromoQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrValidatePromoQueryIsNotConstructed)
}
