package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultExportDir = "./patches"
	DefaultPort      = 443
)

// DBPath returns the snapshot database path from SKILLET_DB,
// falling back to $XDG_DATA_HOME/skillet/snapshots.db.
func DBPath() string {
	if env := os.Getenv("SKILLET_DB"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "snapshots.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "skillet", "snapshots.db")
}

// ExportDir returns the patch export directory from SKILLET_EXPORT_DIR,
// falling back to DefaultExportDir.
func ExportDir() string {
	if env := os.Getenv("SKILLET_EXPORT_DIR"); env != "" {
		return env
	}
	return DefaultExportDir
}

// DeviceCredentials holds connection settings for a device, read from
// PANOS_HOST, PANOS_USERNAME, PANOS_PASSWORD and PANOS_PORT.
type DeviceCredentials struct {
	Host     string
	Username string
	Password string
	Port     int
}

// Device returns credentials from the environment. Complete reports
// whether all required settings are present.
func Device() DeviceCredentials {
	creds := DeviceCredentials{
		Host:     os.Getenv("PANOS_HOST"),
		Username: os.Getenv("PANOS_USERNAME"),
		Password: os.Getenv("PANOS_PASSWORD"),
		Port:     DefaultPort,
	}
	if env := os.Getenv("PANOS_PORT"); env != "" {
		if port, err := strconv.Atoi(env); err == nil {
			creds.Port = port
		}
	}
	return creds
}

func (c DeviceCredentials) Complete() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Debug reports whether SKILLET_DEBUG is set to a truthy value.
func Debug() bool {
	v, err := strconv.ParseBool(os.Getenv("SKILLET_DEBUG"))
	return err == nil && v
}
