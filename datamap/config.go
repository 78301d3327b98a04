package datamap

// Config holds configuration for a DataMap.
type Config struct {
	// FirstID is the first identifier handed out by the auto generator.
	// Explicit identifiers added with AddWithID advance the generator past
	// themselves regardless of this value.
	// Default: 1
	FirstID int64

	// OverwriteNames controls the (language, name) collision policy. When
	// false, adding or renaming a record to a pair claimed by a different
	// record fails with ErrNameTaken. When true, the pair is silently
	// re-pointed at the newer record, matching lenient dataset loads where
	// later entries win.
	// Default: false
	OverwriteNames bool
}

// DefaultConfig returns the defaults: identifiers from 1, name collisions
// rejected.
func DefaultConfig() Config {
	return Config{
		FirstID: 1,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.FirstID < 1 {
		c.FirstID = 1
	}
}
