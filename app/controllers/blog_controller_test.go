package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"codenix/app/repositories"
	"codenix/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", repositories.ErrNotFound, http.StatusNotFound},
		{"invalid id", repositories.ErrInvalidID, http.StatusBadRequest},
		{"slug taken", repositories.ErrSlugTaken, http.StatusBadRequest},
		{"validation", fmt.Errorf("%w: title", services.ErrValidation), http.StatusBadRequest},
		{"missing query", services.ErrSearchQueryRequired, http.StatusBadRequest},
		{"unknown", errors.New("store exploded"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusForError(tt.err))
		})
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"page=3", 3},
		{"page=abc", 1},
		{"page=", 1},
		{"", 1},
		{"page=-2", -2},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/blogs?"+tt.query, nil)
		assert.Equal(t, tt.want, parseIntParam(r, "page", 1), tt.query)
	}
}

func TestRespondErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/blogs/post-x", nil)

	respondError(rec, r, "Blog not found", repositories.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Blog not found", body.Message)
	assert.Equal(t, "record not found", body.Error)
	assert.Nil(t, body.Data)
}

func TestRespondDataEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	respondData(rec, http.StatusCreated, "Blog created successfully", map[string]string{"id": "post-x"})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Blog created successfully", body.Message)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Error)
}
