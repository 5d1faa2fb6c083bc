package sessionstore

import "fmt"

const schemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Session sessionSchema `toml:"session"`
}

type sessionSchema struct {
	Token    string `toml:"token"`
	UserName string `toml:"user_name"`
}

func (f fileSchema) validateVersion() error {
	if f.Version != schemaVersion {
		return fmt.Errorf("unsupported session file version %d", f.Version)
	}
	return nil
}
