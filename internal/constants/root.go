package constants

const (
	AppName            = "jitsuna"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/jitsuna/jitsuna.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Environment variables
	EnvDBConnection = "JITSUNA_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "jitsuna-"
	BackupFileSuffix = ".db"
)
