package filestation

import "context"

// ListShares returns the shared folders visible to the session. param may
// carry offset, limit, sort_by or additional.
func (c *Client) ListShares(ctx context.Context, param Param) (*ShareList, error) {
	return As[*ShareList](ctx, c, OpListShare, param)
}

// ListFolder lists the content of folder.
func (c *Client) ListFolder(ctx context.Context, folder string, param Param) (*FileList, error) {
	p := Param{"folder_path": folder}
	for k, v := range param {
		p[k] = v
	}
	return As[*FileList](ctx, c, OpListFolder, p)
}
