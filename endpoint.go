package filestation

import (
	"fmt"
	"sort"
)

// API family names as sent in the "api" parameter.
const (
	ApiAuth           = "SYNO.API.Auth"
	ApiInfo           = "SYNO.FileStation.Info"
	ApiList           = "SYNO.FileStation.List"
	ApiSearch         = "SYNO.FileStation.Search"
	ApiVirtualFolder  = "SYNO.FileStation.VirtualFolder"
	ApiFavorite       = "SYNO.FileStation.Favorite"
	ApiThumb          = "SYNO.FileStation.Thumb"
	ApiDirSize        = "SYNO.FileStation.DirSize"
	ApiMD5            = "SYNO.FileStation.MD5"
	ApiCheckPerm      = "SYNO.FileStation.CheckPermission"
	ApiUpload         = "SYNO.FileStation.Upload"
	ApiDownload       = "SYNO.FileStation.Download"
	ApiSharing        = "SYNO.FileStation.Sharing"
	ApiCreateFolder   = "SYNO.FileStation.CreateFolder"
	ApiRename         = "SYNO.FileStation.Rename"
	ApiCopyMove       = "SYNO.FileStation.CopyMove"
	ApiDelete         = "SYNO.FileStation.Delete"
	ApiExtract        = "SYNO.FileStation.Extract"
	ApiCompress       = "SYNO.FileStation.Compress"
	ApiBackgroundTask = "SYNO.FileStation.BackgroundTask"
)

// Public operation names of the default registry.
const (
	OpInfo                        = "info"
	OpLogin                       = "login"
	OpLogout                      = "logout"
	OpListShare                   = "list_share"
	OpListFolder                  = "list_folder"
	OpListGetInfo                 = "list_get_info"
	OpSearchStart                 = "search_start"
	OpSearchList                  = "search_list"
	OpSearchStop                  = "search_stop"
	OpSearchClean                 = "search_clean"
	OpListAllMountPoints          = "list_all_mount_points"
	OpFavoriteList                = "favorite_list"
	OpFavoriteAdd                 = "favorite_add"
	OpFavoriteEdit                = "favorite_edit"
	OpFavoriteDelete              = "favorite_delete"
	OpFavoriteClearBroken         = "favorite_clear_broken"
	OpGetThumbnail                = "get_thumbnail"
	OpDirStart                    = "dir_start"
	OpDirStatus                   = "dir_status"
	OpDirStop                     = "dir_stop"
	OpMD5Start                    = "md5_start"
	OpMD5Status                   = "md5_status"
	OpMD5Stop                     = "md5_stop"
	OpCheckPermission             = "check_permission"
	OpUpload                      = "upload"
	OpDownload                    = "download"
	OpSharingGetInfo              = "sharing_get_info"
	OpSharingLinksList            = "sharing_links_list"
	OpSharingLinkCreate           = "sharing_link_create"
	OpSharingLinkDelete           = "sharing_link_delete"
	OpSharingLinkEdit             = "sharing_link_edit"
	OpSharingLinkClearInvalid     = "sharing_link_clear_invalid"
	OpCreateFolder                = "create_folder"
	OpRename                      = "rename"
	OpCopyMoveStart               = "copy_move_start"
	OpCopyMoveStatus              = "copy_move_status"
	OpCopyMoveStop                = "copy_move_stop"
	OpDeleteAsyncStart            = "delete_async_start"
	OpDeleteAsyncStatus           = "delete_async_status"
	OpDeleteAsyncStop             = "delete_async_stop"
	OpDelete                      = "delete"
	OpExtractStart                = "extract_start"
	OpExtractStatus               = "extract_status"
	OpExtractStop                 = "extract_stop"
	OpExtractList                 = "extract_list"
	OpCompressStart               = "compress_start"
	OpCompressStatus              = "compress_status"
	OpCompressStop                = "compress_stop"
	OpCompressList                = "compress_list"
	OpBackgroundTaskList          = "background_task_list"
	OpBackgroundTaskClearFinished = "background_task_clear_finished"
)

// Endpoint identifies a single remote method.
type Endpoint struct {
	Api        string
	Version    int
	Method     string
	HttpMethod string // GET or POST
	Path       string // optional suffix appended to the entry path
}

// RegistryEntry is either a leaf (Api set) or a group of endpoints exposed
// as "<group>_<name>". Groups cannot be nested.
type RegistryEntry struct {
	Endpoint
	Group map[string]Endpoint
}

// IsLeaf reports whether the entry describes an endpoint rather than a group.
func (e RegistryEntry) IsLeaf() bool {
	return e.Api != ""
}

// Registry is a table of endpoints, possibly grouped one level deep.
type Registry map[string]RegistryEntry

func get(api string, version int, method string) Endpoint {
	return Endpoint{Api: api, Version: version, Method: method, HttpMethod: "GET"}
}

func leaf(ep Endpoint) RegistryEntry {
	return RegistryEntry{Endpoint: ep}
}

// DefaultRegistry returns the built-in FileStation endpoint table. A fresh
// copy is returned on each call.
func DefaultRegistry() Registry {
	return Registry{
		"info":   leaf(get(ApiInfo, 2, "get")),
		"login":  leaf(get(ApiAuth, 3, "login")),
		"logout": leaf(get(ApiAuth, 1, "logout")),
		"list": {Group: map[string]Endpoint{
			"share":    get(ApiList, 2, "list_share"),
			"folder":   get(ApiList, 2, "list"),
			"get_info": get(ApiList, 2, "getinfo"),
		}},
		"search": {Group: map[string]Endpoint{
			"start": get(ApiSearch, 2, "start"),
			"list":  get(ApiSearch, 2, "list"),
			"stop":  get(ApiSearch, 2, "stop"),
			"clean": get(ApiSearch, 2, "clean"),
		}},
		"list_all_mount_points": leaf(get(ApiVirtualFolder, 2, "list")),
		"favorite": {Group: map[string]Endpoint{
			"list":         get(ApiFavorite, 2, "list"),
			"add":          get(ApiFavorite, 2, "add"),
			"edit":         get(ApiFavorite, 2, "edit"),
			"delete":       get(ApiFavorite, 2, "delete"),
			"clear_broken": get(ApiFavorite, 2, "clear_broken"),
		}},
		"get_thumbnail": leaf(get(ApiThumb, 2, "get")),
		"dir": {Group: map[string]Endpoint{
			"start":  get(ApiDirSize, 2, "start"),
			"status": get(ApiDirSize, 2, "status"),
			"stop":   get(ApiDirSize, 2, "stop"),
		}},
		"md5": {Group: map[string]Endpoint{
			"start":  get(ApiMD5, 2, "start"),
			"status": get(ApiMD5, 2, "status"),
			"stop":   get(ApiMD5, 2, "stop"),
		}},
		"check_permission": leaf(get(ApiCheckPerm, 3, "write")),
		// only endpoint requiring a request body
		"upload":   leaf(Endpoint{Api: ApiUpload, Version: 2, Method: "upload", HttpMethod: "POST"}),
		"download": leaf(get(ApiDownload, 2, "download")),
		"sharing": {Group: map[string]Endpoint{
			"get_info":           get(ApiSharing, 3, "getinfo"),
			"links_list":         get(ApiSharing, 3, "list"),
			"link_create":        get(ApiSharing, 3, "create"),
			"link_delete":        get(ApiSharing, 3, "delete"),
			"link_edit":          get(ApiSharing, 3, "edit"),
			"link_clear_invalid": get(ApiSharing, 3, "clear_invalid"),
		}},
		"create_folder": leaf(get(ApiCreateFolder, 2, "create")),
		"rename":        leaf(get(ApiRename, 2, "rename")),
		"copy_move": {Group: map[string]Endpoint{
			"start":  get(ApiCopyMove, 3, "start"),
			"status": get(ApiCopyMove, 3, "status"),
			"stop":   get(ApiCopyMove, 3, "stop"),
		}},
		"delete_async": {Group: map[string]Endpoint{
			"start":  get(ApiDelete, 2, "start"),
			"status": get(ApiDelete, 2, "status"),
			"stop":   get(ApiDelete, 2, "stop"),
		}},
		"delete": leaf(get(ApiDelete, 2, "delete")),
		"extract": {Group: map[string]Endpoint{
			"start":  get(ApiExtract, 2, "start"),
			"status": get(ApiExtract, 2, "status"),
			"stop":   get(ApiExtract, 2, "stop"),
			"list":   get(ApiExtract, 2, "list"),
		}},
		"compress": {Group: map[string]Endpoint{
			"start":  get(ApiCompress, 3, "start"),
			"status": get(ApiCompress, 3, "status"),
			"stop":   get(ApiCompress, 3, "stop"),
			// Compress has no list method, progress is read through status
			"list": get(ApiCompress, 3, "status"),
		}},
		"background_task": {Group: map[string]Endpoint{
			"list":           get(ApiBackgroundTask, 3, "list"),
			"clear_finished": get(ApiBackgroundTask, 3, "clear_finished"),
		}},
	}
}

// Flatten turns a registry into a map from public operation name to
// endpoint. Leaves keep their own name, group children are exposed as
// "<group>_<child>".
func Flatten(reg Registry) (map[string]Endpoint, error) {
	res := make(map[string]Endpoint)

	add := func(name string, ep Endpoint) error {
		if _, found := res[name]; found {
			return fmt.Errorf("duplicate operation name %q", name)
		}
		if ep.Api == "" {
			return fmt.Errorf("operation %q has no api", name)
		}
		res[name] = ep
		return nil
	}

	// sorted so duplicate errors are reported deterministically
	for _, name := range sortedKeys(reg) {
		ent := reg[name]
		if ent.IsLeaf() {
			if err := add(name, ent.Endpoint); err != nil {
				return nil, err
			}
			continue
		}
		if len(ent.Group) == 0 {
			return nil, fmt.Errorf("registry entry %q is neither an endpoint nor a group", name)
		}
		for _, sub := range sortedKeys(ent.Group) {
			if err := add(name+"_"+sub, ent.Group[sub]); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
