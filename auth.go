package filestation

import "context"

const sessionName = "FileStation"

// Login authenticates with the configured credentials. The session cookie
// returned by the NAS is kept for subsequent calls.
func (c *Client) Login(ctx context.Context) (*Response, error) {
	if c.cfg.Username == "" {
		return nil, ErrNoCredentials
	}
	return c.Do(ctx, OpLogin, Param{
		"account": c.cfg.Username,
		"passwd":  c.cfg.Password,
		"session": sessionName,
		"format":  "cookie",
	})
}

// Logout ends the session on the NAS and forgets the held token, even if
// the call fails.
func (c *Client) Logout(ctx context.Context) error {
	defer c.sess.set("")
	_, err := c.Do(ctx, OpLogout, Param{"session": sessionName})
	return err
}
