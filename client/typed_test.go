package client

import (
	"errors"
	"testing"

	"github.com/spetersoncode/oaikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModel struct {
	ID      string `json:"id"`
	OwnedBy string `json:"owned_by"`
}

func TestDecode(t *testing.T) {
	t.Run("decodes body", func(t *testing.T) {
		resp := &oaikit.Response{Body: []byte(`{"id":"gpt-4o","owned_by":"system"}`)}

		m, err := Decode[testModel](resp, nil)
		require.NoError(t, err)
		assert.Equal(t, testModel{ID: "gpt-4o", OwnedBy: "system"}, m)
	})

	t.Run("passes error through", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Decode[testModel](nil, boom)
		assert.Equal(t, boom, err)
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := Decode[testModel](nil, nil)
		assert.Error(t, err)
	})

	t.Run("invalid body", func(t *testing.T) {
		_, err := Decode[testModel](&oaikit.Response{Body: []byte(`{"id":`)}, nil)

		var ue *UnmarshalError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "client.testModel", ue.TargetType)
		assert.Equal(t, `{"id":`, ue.Content)
	})
}

func TestUnmarshalError(t *testing.T) {
	t.Run("Error returns formatted message", func(t *testing.T) {
		err := &UnmarshalError{
			Content:    `{"invalid": json`,
			TargetType: "ModelList",
			Err:        errors.New("unexpected end of JSON input"),
		}
		expected := "failed to unmarshal response into ModelList: unexpected end of JSON input"
		assert.Equal(t, expected, err.Error())
	})

	t.Run("Unwrap returns underlying error", func(t *testing.T) {
		underlying := errors.New("parse error")
		err := &UnmarshalError{
			Content:    "invalid",
			TargetType: "TestType",
			Err:        underlying,
		}
		assert.Equal(t, underlying, err.Unwrap())
		assert.True(t, errors.Is(err, underlying))
	})
}
