package filestation

import (
	"net/http"
	"strings"
	"sync"
)

// session holds the token issued by the NAS. Every response carrying a
// Set-Cookie header replaces it, the raw header value is kept as is.
type session struct {
	lk  sync.RWMutex
	sid string
}

func (s *session) get() string {
	s.lk.RLock()
	defer s.lk.RUnlock()
	return s.sid
}

func (s *session) set(sid string) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.sid = sid
}

// update stores the Set-Cookie value of resp, if any. It reports whether
// the session changed.
func (s *session) update(resp *http.Response) bool {
	v := resp.Header.Values("Set-Cookie")
	if len(v) == 0 {
		return false
	}
	s.set(strings.Join(v, ", "))
	return true
}

// Session returns the token currently held by the client, or an empty
// string when not logged in.
func (c *Client) Session() string {
	return c.sess.get()
}

// SetSession replaces the held token, for instance to resume a session
// obtained elsewhere.
func (c *Client) SetSession(sid string) {
	c.sess.set(sid)
}
