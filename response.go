package filestation

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"github.com/KarpelesLab/pjson"
	"github.com/KarpelesLab/typutil"
	"github.com/tidwall/gjson"
)

// Response is the JSON envelope returned by the NAS. Downloads are
// rewritten into the same shape with Body and ContentType set.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`

	Body        string `json:"body,omitempty"` // base64, downloads only
	ContentType string `json:"content_type,omitempty"`

	raw []byte

	dataParsed any
	dataError  error
	dataParse  sync.Once
}

// ErrorInfo is the error object of a failed call.
type ErrorInfo struct {
	Code   int             `json:"code"`
	Errors json.RawMessage `json:"errors,omitempty"`
}

func (r *Response) parse(ctx context.Context, data []byte) error {
	if err := pjson.UnmarshalContext(ctx, data, r); err != nil {
		return err
	}
	r.raw = data
	return nil
}

// Raw returns the full JSON document the response was parsed from.
func (r *Response) Raw() []byte {
	return r.raw
}

func (r *Response) Apply(v any) error {
	return r.ApplyContext(context.Background(), v)
}

func (r *Response) ApplyContext(ctx context.Context, v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return pjson.UnmarshalContext(ctx, r.Data, v)
}

// Value returns the decoded data member.
func (r *Response) Value() (any, error) {
	r.dataParse.Do(func() {
		if len(r.Data) == 0 {
			return
		}
		r.dataError = pjson.Unmarshal(r.Data, &r.dataParsed)
	})
	return r.dataParsed, r.dataError
}

// Get looks up a gjson path in the whole document, for example
// "data.shares.0.name".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// GetString returns the string at path.
func (r *Response) GetString(path string) (string, error) {
	res := r.Get(path)
	if !res.Exists() {
		return "", fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	if res.Type != gjson.String {
		return "", fmt.Errorf("unexpected type %s for string %s", res.Type, path)
	}
	return res.Str, nil
}

// GetAs converts the value found at path to T.
func GetAs[T any](r *Response, path string) (T, error) {
	res := r.Get(path)
	if !res.Exists() {
		var zero T
		return zero, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return typutil.As[T](res.Value())
}

// GetInt returns the number at path.
func (r *Response) GetInt(path string) (int64, error) {
	return GetAs[int64](r, path)
}
