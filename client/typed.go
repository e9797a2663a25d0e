package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/spetersoncode/oaikit"
)

// Decode unmarshals a successful response into T. A non-nil err is passed
// through, so calls can be chained:
//
//	type model struct {
//	    ID      string `json:"id"`
//	    OwnedBy string `json:"owned_by"`
//	}
//	m, err := client.Decode[model](c.Models().Retrieve(ctx, "gpt-4o"))
func Decode[T any](resp *oaikit.Response, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if resp == nil {
		return zero, errors.New("decode: nil response")
	}

	var result T
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return zero, &UnmarshalError{
			Content:    string(resp.Body),
			TargetType: typeName[T](),
			Err:        err,
		}
	}
	return result, nil
}

// UnmarshalError is returned when a response body cannot be unmarshaled
// into the target type.
type UnmarshalError struct {
	Content    string
	TargetType string
	Err        error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal response into %s: %v", e.TargetType, e.Err)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.String()
}
