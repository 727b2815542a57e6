package filestation

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/KarpelesLab/pjson"
)

// Param holds request parameters. Scalars are sent as their text form,
// slices and maps are JSON encoded as the NAS expects for lists.
type Param map[string]any

// File is the payload of an upload, passed under the "file" parameter.
type File struct {
	Name    string
	Content []byte
}

// buildParams merges the endpoint identification with the caller's
// parameters into a fresh map. api, version and method always come from
// the endpoint.
func buildParams(ep Endpoint, param Param, sid string, useCookies bool) Param {
	res := make(Param, len(param)+4)
	for k, v := range param {
		res[k] = v
	}
	res["api"] = ep.Api
	res["version"] = ep.Version
	res["method"] = ep.Method
	if useCookies && sid != "" {
		res["_sid"] = sid
	}
	return res
}

func paramString(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return fmt.Sprintf("%d", v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		data, err := pjson.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode parameter: %w", err)
		}
		return string(data), nil
	}
}

func encodeQuery(param Param) (url.Values, error) {
	q := make(url.Values, len(param))
	for k, v := range param {
		s, err := paramString(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		q.Set(k, s)
	}
	return q, nil
}

// takeFile removes the upload payload from param.
func takeFile(param Param) (*File, error) {
	v, ok := param["file"]
	if !ok {
		return nil, ErrMissingFileContent
	}
	delete(param, "file")

	var f *File
	switch v := v.(type) {
	case File:
		f = &v
	case *File:
		f = v
	case Param:
		f = fileFromMap(v)
	case map[string]any:
		f = fileFromMap(v)
	}
	if f == nil || f.Content == nil {
		return nil, ErrMissingFileContent
	}
	return f, nil
}

func fileFromMap(m map[string]any) *File {
	f := &File{}
	f.Name, _ = m["file_name"].(string)
	switch c := m["file_content"].(type) {
	case []byte:
		f.Content = c
	case string:
		f.Content = []byte(c)
	}
	return f
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartBody renders one form part per parameter (in key order)
// followed by the file part and the closing boundary.
func multipartBody(param Param, f *File, boundary string) ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, k := range sortedKeys(param) {
		s, err := paramString(param[k])
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		fmt.Fprintf(buf, "--%s\r\n", boundary)
		fmt.Fprintf(buf, "Content-Disposition: form-data; name=\"%s\"\r\n\r\n", quoteEscaper.Replace(k))
		buf.WriteString(s)
		buf.WriteString("\r\n")
	}
	fmt.Fprintf(buf, "--%s\r\n", boundary)
	fmt.Fprintf(buf, "Content-Disposition: form-data; name=\"file\"; filename=\"%s\"\r\n", quoteEscaper.Replace(f.Name))
	buf.WriteString("Content-Type: application/octet-stream\r\n\r\n")
	buf.Write(f.Content)
	fmt.Fprintf(buf, "\r\n--%s--\r\n", boundary)
	return buf.Bytes(), nil
}

func newBoundary() string {
	return strconv.FormatUint(rand.Uint64(), 10)
}
