package filestation

import "io"

// UploadProgressFunc is a callback function for upload progress updates.
// It receives the number of bytes of the request body consumed so far.
type UploadProgressFunc func(bytesUploaded int64)

type progressReader struct {
	r    io.Reader
	n    int64
	call UploadProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.n += int64(n)
		p.call(p.n)
	}
	return n, err
}

func (c *Client) progressReader(r io.Reader) io.Reader {
	if c.cfg.UploadProgress == nil {
		return r
	}
	return &progressReader{r: r, call: c.cfg.UploadProgress}
}
