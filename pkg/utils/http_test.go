package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	testCases := []struct {
		query string
		want  int
	}{
		{query: "", want: 7},
		{query: "page=3", want: 3},
		{query: "page=abc", want: 7},
		{query: "page=-2", want: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
			assert.Equal(t, tc.want, QueryInt(r, "page", 7))
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	type body struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(body{Email: "nope"})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"invalid request","fields":{"Email":"email"}}`, rr.Body.String())
}
