package domain

const (
	// AppDirName is the directory name used under the user's data directory.
	AppDirName = "evry"

	// DataDirName is the subdirectory holding one file per tag.
	DataDirName = "data"

	// SnapshotSuffix is appended to a tag's filename for its pre-overwrite
	// snapshot, used by rollback.
	SnapshotSuffix = ".prev"

	// LockSuffix is appended to a tag's filename for its run lock file.
	LockSuffix = ".lock"

	// ConfigFileName is the optional configuration file name.
	ConfigFileName = "config.yaml"

	// EnvDir overrides the application directory; tag files live in a
	// data/ subdirectory beneath it.
	EnvDir = "EVRY_DIR"
	// EnvConfig overrides the config file location.
	EnvConfig = "EVRY_CONFIG"
	// EnvDebug enables debug output when set.
	EnvDebug = "EVRY_DEBUG"
	// EnvJSON enables JSON output when set. Implies debug.
	EnvJSON = "EVRY_JSON"
	// EnvParseErrorLog names a file to append duration parse failures to.
	EnvParseErrorLog = "EVRY_PARSE_ERROR_LOG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
