package types

import (
	"NoteManager/pkg/response"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *response.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Fields
}

func TestDecodeNote_Valid(t *testing.T) {
	in, err := DecodeNote([]byte(`{"id": 99, "title": "  Buy milk ", "content": "2 litres", "extra": true}`), false)
	require.NoError(t, err)
	require.NotNil(t, in.Title)
	require.NotNil(t, in.Content)
	assert.Equal(t, "Buy milk", *in.Title)
	assert.Equal(t, "2 litres", *in.Content)
}

func TestDecodeNote_ContentOptional(t *testing.T) {
	in, err := DecodeNote([]byte(`{"title": "Buy milk"}`), false)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", *in.Title)
	assert.Nil(t, in.Content)

	in, err = DecodeNote([]byte(`{"title": "Buy milk", "content": ""}`), false)
	require.NoError(t, err)
	assert.Equal(t, "", *in.Content)
}

func TestDecodeNote_NumberAsString(t *testing.T) {
	in, err := DecodeNote([]byte(`{"title": 42}`), false)
	require.NoError(t, err)
	assert.Equal(t, "42", *in.Title)
}

func TestDecodeNote_FieldErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string][]string
	}{
		{"empty object", `{}`, map[string][]string{"title": {MsgRequired}}},
		{"empty body", ``, map[string][]string{"title": {MsgRequired}}},
		{"null title", `{"title": null}`, map[string][]string{"title": {MsgNull}}},
		{"blank title", `{"title": "   "}`, map[string][]string{"title": {MsgBlank}}},
		{"bool title", `{"title": true}`, map[string][]string{"title": {MsgNotString}}},
		{"object title", `{"title": {"a": 1}}`, map[string][]string{"title": {MsgNotString}}},
		{"bad content", `{"title": "ok", "content": [1]}`, map[string][]string{"content": {MsgNotString}}},
		{"both", `{"content": null}`, map[string][]string{"title": {MsgRequired}, "content": {MsgNull}}},
		{"array body", `[{"title": "x"}]`, map[string][]string{"non_field_errors": {"Invalid data. Expected a dictionary, but got list."}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNote([]byte(tt.body), false)
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestDecodeNote_TitleTooLong(t *testing.T) {
	_, err := DecodeNote([]byte(`{"title": "`+strings.Repeat("я", TitleMaxLength+1)+`"}`), false)
	assert.Equal(t, []string{"Ensure this field has no more than 200 characters."}, fieldErrors(t, err)["title"])

	in, err := DecodeNote([]byte(`{"title": "`+strings.Repeat("я", TitleMaxLength)+`"}`), false)
	require.NoError(t, err)
	assert.Len(t, []rune(*in.Title), TitleMaxLength)
}

func TestDecodeNote_Partial(t *testing.T) {
	in, err := DecodeNote([]byte(`{}`), true)
	require.NoError(t, err)
	assert.Nil(t, in.Title)
	assert.Nil(t, in.Content)

	in, err = DecodeNote([]byte(`{"content": "only body"}`), true)
	require.NoError(t, err)
	assert.Nil(t, in.Title)
	assert.Equal(t, "only body", *in.Content)

	_, err = DecodeNote([]byte(`{"title": ""}`), true)
	assert.Equal(t, []string{MsgBlank}, fieldErrors(t, err)["title"])
}

func TestDecodeNote_MalformedJSON(t *testing.T) {
	_, err := DecodeNote([]byte(`{"title": `), false)
	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusBadRequest, be.Code)
	assert.Contains(t, be.Msg, "JSON parse error")
}

func TestDecodeNote_InvalidUTF8(t *testing.T) {
	_, err := DecodeNote([]byte("{\"title\": \"bad \xff byte\"}"), false)
	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusBadRequest, be.Code)
	assert.Contains(t, be.Msg, "JSON parse error")
}

func TestDecodeNote_DuplicateKeysLastWins(t *testing.T) {
	in, err := DecodeNote([]byte(`{"title": "first", "content": "a", "title": "second"}`), false)
	require.NoError(t, err)
	assert.Equal(t, "second", *in.Title)

	_, err = DecodeNote([]byte(`{"title": "ok", "title": null}`), false)
	assert.Equal(t, []string{MsgNull}, fieldErrors(t, err)["title"])
}
