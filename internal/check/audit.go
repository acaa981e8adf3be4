package check

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/ktsuji/procheck/internal/fsys"
	"github.com/ktsuji/procheck/internal/scan"
	"github.com/ktsuji/procheck/pkg/procheck"
)

// Auditor runs the extended pattern-based rule table against a target
// directory. Like the Checker it is stateless: each Run is an independent
// best-effort snapshot of the tree.
type Auditor struct {
	fsProvider fsys.Provider
	scanner    *scan.Scanner
	rules      []procheck.AuditRule
	logger     procheck.Logger
}

// NewAuditor creates an auditor with the default rule table using the OS
// filesystem. Panics if logger is nil.
func NewAuditor(logger procheck.Logger) *Auditor {
	return NewAuditorWithFS(fsys.NewOSFileSystem(), logger)
}

// NewAuditorWithFS creates an auditor with a custom filesystem provider.
// Panics if fsProvider or logger is nil.
func NewAuditorWithFS(fsProvider fsys.Provider, logger procheck.Logger) *Auditor {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Auditor{
		fsProvider: fsProvider,
		scanner:    scan.NewWithFS(procheck.FolderPrefix, fsProvider, logger),
		rules:      procheck.DefaultAuditRules,
		logger:     logger,
	}
}

// Run produces the AuditResult for target. A missing target short-circuits
// with every rule absent, mirroring Checker.Run.
func (a *Auditor) Run(target string) procheck.AuditResult {
	result := procheck.AuditResult{
		TargetPath:     target,
		MatchedFolders: []string{},
	}

	info, err := a.fsProvider.Stat(target)
	if err != nil || !info.IsDir() {
		a.logger.Verbose("target %s is not an existing directory", target)
		for _, rule := range a.rules {
			result.Rules = append(result.Rules, procheck.RuleStatus{
				FolderPattern: rule.FolderPattern,
			})
		}
		return result
	}
	result.TargetExists = true

	result.MatchedFolders = a.scanner.MatchedFolders(target)

	satisfied := true
	for _, rule := range a.rules {
		status := a.evaluateRule(target, rule, result.MatchedFolders)
		if !status.Satisfied {
			satisfied = false
		}
		result.Rules = append(result.Rules, status)
	}

	result.Satisfied = satisfied
	return result
}

// evaluateRule checks one audit rule against the scanned folder list.
func (a *Auditor) evaluateRule(target string, rule procheck.AuditRule, folders []string) procheck.RuleStatus {
	status := procheck.RuleStatus{
		FolderPattern: rule.FolderPattern,
	}

	for _, folder := range folders {
		if ok, _ := path.Match(rule.FolderPattern, folder); ok {
			status.MatchedFolders = append(status.MatchedFolders, folder)
		}
	}
	status.Present = len(status.MatchedFolders) > 0
	if !status.Present {
		return status
	}

	status.Satisfied = true
	for _, filePattern := range rule.Files {
		// Counts are aggregated across every folder the pattern matched.
		var found []string
		for _, folder := range status.MatchedFolders {
			found = append(found, a.matchingFiles(target, folder, filePattern.Pattern)...)
		}
		sort.Strings(found)

		fileStatus := procheck.PatternStatus{
			Pattern:   filePattern.Pattern,
			MinCount:  filePattern.MinCount,
			Found:     found,
			Count:     len(found),
			Satisfied: len(found) >= filePattern.MinCount,
		}
		if filePattern.NumberPattern != "" {
			fileStatus.Sequence = sequenceStats(found, filePattern.NumberPattern)
		}
		if !fileStatus.Satisfied {
			status.Satisfied = false
		}

		status.Files = append(status.Files, fileStatus)
	}

	return status
}

// matchingFiles lists the regular files directly inside target/folder whose
// names match pattern. Unreadable folders or entries count as no matches.
func (a *Auditor) matchingFiles(target, folder, pattern string) []string {
	entries, err := a.fsProvider.ReadDir(filepath.Join(target, folder))
	if err != nil {
		a.logger.Verbose("listing %s failed, treating as no matches: %v", folder, err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if ok, _ := path.Match(pattern, name); !ok {
			continue
		}
		info, err := a.fsProvider.Stat(filepath.Join(target, folder, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, name)
	}

	return names
}
