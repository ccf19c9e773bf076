package config

// File represents the structure of the .xorcrack configuration file.
// It carries defaults that would otherwise be supplied on every
// invocation: a corpus path and the key-length search parameters.
type File struct {
	// Corpus is the path to the reference text corpus.
	Corpus string `yaml:"corpus,omitempty"`

	// MinKeyLength overrides the default minimum key length.
	MinKeyLength int `yaml:"minKeyLength,omitempty"`

	// MaxKeyLength overrides the default maximum key length.
	MaxKeyLength int `yaml:"maxKeyLength,omitempty"`

	// Candidates overrides how many key-length candidates are tried.
	Candidates int `yaml:"candidates,omitempty"`

	// NoCache disables the corpus frequency cache.
	NoCache bool `yaml:"noCache,omitempty"`
}

// ApplyTo copies the file's non-zero values into c. CLI flags are bound
// after this runs, so explicit flags still win over file values.
func (f *File) ApplyTo(c *Config) {
	if f.Corpus != "" {
		c.CorpusPath = f.Corpus
	}
	if f.MinKeyLength != 0 {
		c.MinKeyLength = f.MinKeyLength
	}
	if f.MaxKeyLength != 0 {
		c.MaxKeyLength = f.MaxKeyLength
	}
	if f.Candidates != 0 {
		c.Candidates = f.Candidates
	}
	if f.NoCache {
		c.NoCache = true
	}
}
