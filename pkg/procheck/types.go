package procheck

// FileStatus reports whether one required file exists as a regular file
// directly inside its folder.
type FileStatus struct {
	Name    string `json:"name" yaml:"name"`
	Present bool   `json:"present" yaml:"present"`
}

// FolderStatus reports the outcome of one requirement table entry.
// Files is nil when the folder itself is absent; file presence is only
// evaluated for folders confirmed by the scan.
type FolderStatus struct {
	Folder  string       `json:"folder" yaml:"folder"`
	Present bool         `json:"present" yaml:"present"`
	Files   []FileStatus `json:"files,omitempty" yaml:"files,omitempty"`
}

// CheckResult is the aggregate outcome of a layout check. It is a plain
// snapshot: recomputed on every run, never cached or mutated afterwards.
type CheckResult struct {
	TargetPath     string         `json:"target_path" yaml:"target_path"`
	TargetExists   bool           `json:"target_exists" yaml:"target_exists"`
	MatchedFolders []string       `json:"matched_folders" yaml:"matched_folders"`
	Required       []FolderStatus `json:"required" yaml:"required"`
	Satisfied      bool           `json:"satisfied" yaml:"satisfied"`
}

// Requirement maps one required folder name to the file names that must
// exist as regular files directly inside it.
type Requirement struct {
	Folder string
	Files  []string
}

// SequenceStats summarizes numeric values extracted from matched file
// names, e.g. the N in def_N.dat.
type SequenceStats struct {
	Min     int   `json:"min" yaml:"min"`
	Max     int   `json:"max" yaml:"max"`
	Unique  int   `json:"unique" yaml:"unique"`
	Missing []int `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// PatternStatus reports one file-pattern rule inside an audit rule.
type PatternStatus struct {
	Pattern   string         `json:"pattern" yaml:"pattern"`
	MinCount  int            `json:"min_count" yaml:"min_count"`
	Found     []string       `json:"found,omitempty" yaml:"found,omitempty"`
	Count     int            `json:"count" yaml:"count"`
	Satisfied bool           `json:"satisfied" yaml:"satisfied"`
	Sequence  *SequenceStats `json:"sequence,omitempty" yaml:"sequence,omitempty"`
}

// RuleStatus reports one audit rule: the folders its pattern matched and
// the per-pattern file requirements evaluated inside them.
type RuleStatus struct {
	FolderPattern  string          `json:"folder_pattern" yaml:"folder_pattern"`
	MatchedFolders []string        `json:"matched_folders,omitempty" yaml:"matched_folders,omitempty"`
	Present        bool            `json:"present" yaml:"present"`
	Files          []PatternStatus `json:"files,omitempty" yaml:"files,omitempty"`
	Satisfied      bool            `json:"satisfied" yaml:"satisfied"`
}

// AuditResult is the aggregate outcome of the extended pattern-based audit.
type AuditResult struct {
	TargetPath     string       `json:"target_path" yaml:"target_path"`
	TargetExists   bool         `json:"target_exists" yaml:"target_exists"`
	MatchedFolders []string     `json:"matched_folders" yaml:"matched_folders"`
	Rules          []RuleStatus `json:"rules" yaml:"rules"`
	Satisfied      bool         `json:"satisfied" yaml:"satisfied"`
}

// FilePatternRule is one fixed file requirement inside an AuditRule.
// NumberPattern, when non-empty, is a regexp with a single integer capture
// group used to extract sequence numbers from matching file names.
type FilePatternRule struct {
	Pattern       string
	MinCount      int
	NumberPattern string
}

// AuditRule is one fixed audit requirement: a folder name pattern and the
// file patterns that must be satisfied across all folders it matches.
type AuditRule struct {
	FolderPattern string
	Files         []FilePatternRule
}
