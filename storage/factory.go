package storage

import (
	"fmt"
	"os"
)

// Open selects a Store implementation from environment variables.
//
//	STORE_DRIVER:      file|sqlite|memory (default file)
//	STORE_DIR:         collection directory when driver=file (default ./data)
//	STORE_SQLITE_PATH: database file when driver=sqlite (default ./data/churchpro.db)
func Open() (Store, error) {
	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = string(DriverFile)
	}
	switch Driver(driver) {
	case DriverFile:
		return NewFileStore(os.Getenv("STORE_DIR"))
	case DriverSQLite:
		return NewSQLiteStore(os.Getenv("STORE_SQLITE_PATH"))
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %s", driver)
	}
}
