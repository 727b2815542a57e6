package filestation

// Owner of a file or share, returned with additional=["owner"].
type Owner struct {
	User  string `json:"user"`
	Group string `json:"group"`
	UID   int    `json:"uid"`
	GID   int    `json:"gid"`
}

// FileTimes are returned with additional=["time"].
type FileTimes struct {
	Access Time `json:"atime"`
	Modify Time `json:"mtime"`
	Change Time `json:"ctime"`
	Create Time `json:"crtime"`
}

type Additional struct {
	RealPath string     `json:"real_path,omitempty"`
	Size     int64      `json:"size,omitempty"`
	Type     string     `json:"type,omitempty"`
	Owner    *Owner     `json:"owner,omitempty"`
	Time     *FileTimes `json:"time,omitempty"`
}

// FileInfo describes a file or folder.
type FileInfo struct {
	Path       string      `json:"path"`
	Name       string      `json:"name"`
	IsDir      bool        `json:"isdir"`
	Additional *Additional `json:"additional,omitempty"`
	Children   *FileList   `json:"children,omitempty"`
}

// FileList is the data of list_folder.
type FileList struct {
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Files  []FileInfo `json:"files"`
}

// Share is a shared folder.
type Share struct {
	Path       string      `json:"path"`
	Name       string      `json:"name"`
	IsDir      bool        `json:"isdir"`
	Additional *Additional `json:"additional,omitempty"`
}

// ShareList is the data of list_share.
type ShareList struct {
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
	Shares []Share `json:"shares"`
}

// Download is the decoded content of a download response.
type Download struct {
	Data        []byte
	ContentType string
}
