package config

// Jobfile represents the structure of a job definition file.
type Jobfile struct {
	Version string `yaml:"version"`
	Job     JobDTO `yaml:"job"`
}

// JobDTO represents a job definition in the configuration. Source and
// SourceFile are mutually exclusive; SourceFile is resolved relative to the
// job file.
type JobDTO struct {
	EntryPoint    string `yaml:"entryPoint"`
	Source        string `yaml:"source"`
	SourceFile    string `yaml:"sourceFile"`
	Dependencies  string `yaml:"dependencies"`
	CheckAtDeploy bool   `yaml:"checkAtDeploy"`
}
