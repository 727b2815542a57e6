package filestation

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/h2non/filetype"
)

// Download fetches the file at p.
func (c *Client) Download(ctx context.Context, p string) (*Download, error) {
	res, err := c.Do(ctx, OpDownload, Param{"path": p, "mode": "download"})
	if err != nil {
		return nil, err
	}
	return DecodeDownload(res)
}

// DecodeDownload extracts the file content from a download response. When
// the NAS did not send a content type it is guessed from the data.
func DecodeDownload(res *Response) (*Download, error) {
	data, err := base64.StdEncoding.DecodeString(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode download body: %w", err)
	}
	dl := &Download{Data: data, ContentType: res.ContentType}
	if dl.ContentType == "" {
		dl.ContentType = "application/octet-stream"
		if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
			dl.ContentType = kind.MIME.Value
		}
	}
	return dl, nil
}
