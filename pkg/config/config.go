package config

// Config is the resolved specedit configuration.
type Config struct {
	Changelog Changelog `koanf:"changelog"`
	Spec      Spec      `koanf:"spec"`
	Patches   Patches   `koanf:"patches"`
	Logging   Logging   `koanf:"logging"`
}

// Changelog holds the identity used to sign new changelog entries
type Changelog struct {
	Author string `koanf:"author"`
	Email  string `koanf:"email"`
}

// Spec holds spec file settings
type Spec struct {
	// Dist is the expanded %{dist} value, e.g. ".fc40"
	Dist string `koanf:"dist"`
	// SourceID names the Source tag rewritten by set-source
	SourceID string `koanf:"source_id"`
}

// Patches holds patch discovery settings
type Patches struct {
	Pattern string `koanf:"pattern"`
}

// Logging holds log output settings
type Logging struct {
	File string `koanf:"file"`
}
