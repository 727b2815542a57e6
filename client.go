package filestation

import (
	"crypto/tls"
	"net/http"
	"time"
)

var HttpTransport = &http.Transport{
	Proxy:                 http.ProxyFromEnvironment,
	MaxIdleConns:          10,
	MaxIdleConnsPerHost:   4,
	IdleConnTimeout:       90 * time.Second,
	ResponseHeaderTimeout: 90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 5 * time.Second,
}

// HttpClient has no overall timeout: uploads and downloads may take long.
var HttpClient = &http.Client{
	Transport: HttpTransport,
}

func httpClientFor(cfg Config) *http.Client {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	if cfg.UseHTTPS && cfg.InsecureSkipVerify {
		// self-signed certificates are the norm on a NAS
		tr := HttpTransport.Clone()
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		return &http.Client{Transport: tr}
	}
	return HttpClient
}
