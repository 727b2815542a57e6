package filestation

import (
	"context"
	"fmt"
	"io"
	"path"
)

// Upload stores f in the folder dest on the NAS, creating missing parent
// folders.
func (c *Client) Upload(ctx context.Context, dest string, f File, overwrite bool) (*Response, error) {
	if f.Content == nil {
		return nil, ErrMissingFileContent
	}
	return c.Do(ctx, OpUpload, Param{
		"path":           dest,
		"create_parents": true,
		"overwrite":      overwrite,
		"file":           f,
	})
}

// UploadReader reads r fully and uploads it as name into dest.
func (c *Client) UploadReader(ctx context.Context, dest, name string, r io.Reader, overwrite bool) (*Response, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload payload: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return c.Upload(ctx, dest, File{Name: path.Base(name), Content: data}, overwrite)
}
