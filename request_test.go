package filestation

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartBody(t *testing.T) {
	body, err := multipartBody(Param{"field": "value"}, &File{Name: "a.txt", Content: []byte("hi")}, "12345")
	require.NoError(t, err)

	expected := "--12345\r\n" +
		"Content-Disposition: form-data; name=\"field\"\r\n\r\n" +
		"value\r\n" +
		"--12345\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\n" +
		"Content-Type: application/octet-stream\r\n\r\n" +
		"hi" +
		"\r\n--12345--\r\n"
	assert.Equal(t, expected, string(body))
}

func TestMultipartBodyParses(t *testing.T) {
	content := []byte{0x00, 0xff, '\r', '\n', '-', '-', 'x'}
	param := Param{"path": "/home", "overwrite": true, "api": ApiUpload, "version": 2}
	body, err := multipartBody(param, &File{Name: `we"ird.bin`, Content: content}, "987654321")
	require.NoError(t, err)

	rd := multipart.NewReader(bytes.NewReader(body), "987654321")
	fields := map[string]string{}
	var fileName string
	var fileData []byte
	for {
		part, err := rd.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FormName() == "file" {
			fileName = part.FileName()
			fileData = data
			assert.Equal(t, "application/octet-stream", part.Header.Get("Content-Type"))
			continue
		}
		fields[part.FormName()] = string(data)
	}

	assert.Equal(t, map[string]string{"path": "/home", "overwrite": "true", "api": ApiUpload, "version": "2"}, fields)
	assert.Equal(t, `we"ird.bin`, fileName)
	assert.Equal(t, content, fileData)
}

func TestBuildParams(t *testing.T) {
	ep := Endpoint{Api: ApiList, Version: 2, Method: "list", HttpMethod: "GET"}
	caller := Param{"folder_path": "/home", "api": "evil", "method": "delete"}

	p := buildParams(ep, caller, "id=abc", true)
	assert.Equal(t, ApiList, p["api"])
	assert.Equal(t, 2, p["version"])
	assert.Equal(t, "list", p["method"])
	assert.Equal(t, "/home", p["folder_path"])
	assert.Equal(t, "id=abc", p["_sid"])

	// caller map is left untouched
	assert.Equal(t, "evil", caller["api"])

	p = buildParams(ep, nil, "id=abc", false)
	assert.NotContains(t, p, "_sid")

	p = buildParams(ep, nil, "", true)
	assert.NotContains(t, p, "_sid")
}

func TestEncodeQueryStable(t *testing.T) {
	p := Param{
		"folder_path": "/home/my docs",
		"additional":  []string{"real_path", "size"},
		"limit":       10,
		"overwrite":   false,
		"ratio":       0.5,
		"pattern":     "a&b=c",
	}
	q1, err := encodeQuery(p)
	require.NoError(t, err)
	q2, err := encodeQuery(p)
	require.NoError(t, err)
	assert.Equal(t, q1.Encode(), q2.Encode())

	assert.Equal(t, `["real_path","size"]`, q1.Get("additional"))
	assert.Equal(t, "10", q1.Get("limit"))
	assert.Equal(t, "false", q1.Get("overwrite"))
	assert.Equal(t, "0.5", q1.Get("ratio"))
	assert.Contains(t, q1.Encode(), "pattern=a%26b%3Dc")
	assert.Contains(t, q1.Encode(), "folder_path=%2Fhome%2Fmy+docs")
}

func TestTakeFile(t *testing.T) {
	tests := []struct {
		name    string
		file    any
		want    *File
		wantErr bool
	}{
		{"struct", File{Name: "a", Content: []byte("x")}, &File{Name: "a", Content: []byte("x")}, false},
		{"pointer", &File{Name: "b", Content: []byte{}}, &File{Name: "b", Content: []byte{}}, false},
		{"map string", map[string]any{"file_name": "c", "file_content": "yz"}, &File{Name: "c", Content: []byte("yz")}, false},
		{"param bytes", Param{"file_name": "d", "file_content": []byte("w")}, &File{Name: "d", Content: []byte("w")}, false},
		{"nil content", File{Name: "e"}, nil, true},
		{"map without content", map[string]any{"file_name": "f"}, nil, true},
		{"wrong type", "content", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Param{"path": "/x", "file": tt.file}
			f, err := takeFile(p)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingFileContent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.NotContains(t, p, "file")
		})
	}

	_, err := takeFile(Param{"path": "/x"})
	assert.ErrorIs(t, err, ErrMissingFileContent)
}

func TestNewBoundary(t *testing.T) {
	b := newBoundary()
	require.NotEmpty(t, b)
	for _, r := range b {
		assert.True(t, r >= '0' && r <= '9', "boundary %q is not numeric", b)
	}
	_, params, err := mime.ParseMediaType("multipart/form-data; boundary=" + b)
	require.NoError(t, err)
	assert.Equal(t, b, params["boundary"])
}
