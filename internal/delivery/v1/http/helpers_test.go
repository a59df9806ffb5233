package http

import (
	"net/http"
	"testing"

	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"599.99", 59999},
		{"600", 60000},
		{"0", 0},
		{"0.01", 1},
		{"1000000000", 100000000000},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := parsePriceToCents(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	errCases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "   ", e.ErrInvalidPrice},
		{"not a number", "abc", e.ErrInvalidPrice},
		{"negative", "-1", e.ErrInvalidPrice},
		{"too large", "1000000001", e.ErrInvalidPrice},
		{"three decimals", "9.999", e.ErrPricePrecision},
	}
	for _, tc := range errCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parsePriceToCents(tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "599.99", formatCents(59999))
	assert.Equal(t, "600.00", formatCents(60000))
	assert.Equal(t, "0.01", formatCents(1))
	assert.Equal(t, "0.00", formatCents(0))
}

func TestToHTTPResponse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", e.Wrap("short name", e.ErrValidation), http.StatusBadRequest},
		{"insufficient stock", e.Wrap("Big Sofa", e.ErrInsufficientStock), http.StatusBadRequest},
		{"duplicate email", e.ErrEmailExists, http.StatusBadRequest},
		{"product in use", e.Wrap("op", e.ErrProductInUse), http.StatusBadRequest},
		{"not pending", e.ErrOrderNotPending, http.StatusBadRequest},
		{"bad credentials", e.ErrInvalidCredentials, http.StatusBadRequest},
		{"unauthorized", e.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", e.ErrForbidden, http.StatusForbidden},
		{"product missing", e.Wrap("op", e.ErrProductNotFound), http.StatusNotFound},
		{"order missing", e.ErrOrderNotFound, http.StatusNotFound},
		{"empty catalog", e.ErrNoProducts, http.StatusNotFound},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, msg := ToHTTPResponse(tc.err)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, msg)
		})
	}

	// Внутренние детали не утекают наружу
	_, msg := ToHTTPResponse(assert.AnError)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

func TestTrimWrap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"op tag stripped, product context kept",
			e.Wrap("OrderUseCase.PlaceOrder", e.Wrap("Big Sofa", e.ErrInsufficientStock)),
			"Big Sofa: not enough stock",
		},
		{
			"nested op tags stripped",
			e.Wrap("OrderUseCase.PlaceOrder", e.Wrap("ProductRepo.ReserveStock", e.ErrInsufficientStock)),
			"not enough stock",
		},
		{
			"source path stripped",
			e.Wrap("/app/internal/repository/pgdb/product_repo.go", e.ErrValidation),
			"validation failed",
		},
		{
			"decode detail kept",
			e.Wrap("invalid character 'x' after top-level value", e.ErrValidation),
			"invalid character 'x' after top-level value: validation failed",
		},
		{
			"bare sentinel",
			e.ErrInsufficientStock,
			"not enough stock",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, trimWrap(tc.err))
		})
	}
}
