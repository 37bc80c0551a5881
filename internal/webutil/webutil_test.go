package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_titan_quest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"正常系: NotFound", model.ErrNotFound, http.StatusNotFound},
		{"正常系: PlayerNotFound", model.ErrPlayerNotFound, http.StatusNotFound},
		{"正常系: ラップされた InvalidInput", fmt.Errorf("decode: %w", model.ErrInvalidInput), http.StatusBadRequest},
		{"正常系: Conflict", model.ErrConflict, http.StatusConflict},
		{"正常系: Unauthorized", model.ErrUnauthorized, http.StatusUnauthorized},
		{"正常系: Forbidden", model.ErrForbidden, http.StatusForbidden},
		{"正常系: ContentUnavailable", model.ErrContentUnavailable, http.StatusBadGateway},
		{"異常系: 未知のエラー", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError_HidesUnexpectedErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleError(rr, nil, errors.New("dial tcp 10.0.0.1: refused"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "10.0.0.1")

	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
}

type decodeTarget struct {
	Name string `json:"name" validate:"required,max=5"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"正常系: 有効なボディ", `{"name":"Hero"}`, ""},
		{"異常系: 壊れたJSON", `{"name":`, "INVALID_REQUEST_BODY"},
		{"異常系: 未知のフィールド", `{"name":"Hero","level":99}`, "INVALID_REQUEST_BODY"},
		{"異常系: 必須項目が無い", `{}`, "VALIDATION_ERROR"},
		{"境界値: 最大長を超える", `{"name":"Heroes"}`, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst decodeTarget
			err := DecodeAndValidate(httptest.NewRecorder(), r, &dst)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "Hero", dst.Name)
				return
			}
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}
