package procheck

import "testing"

func TestDefaultRequirements(t *testing.T) {
	if len(DefaultRequirements) != 2 {
		t.Fatalf("Expected 2 requirement entries, got %d", len(DefaultRequirements))
	}

	want := map[string]string{
		"process_a": "a.out",
		"process_s": "s.out",
	}
	for _, req := range DefaultRequirements {
		file, ok := want[req.Folder]
		if !ok {
			t.Errorf("Unexpected requirement folder %s", req.Folder)
			continue
		}
		if len(req.Files) != 1 || req.Files[0] != file {
			t.Errorf("Requirement for %s = %v, want [%s]", req.Folder, req.Files, file)
		}
	}
}

func TestDefaultAuditRules(t *testing.T) {
	if len(DefaultAuditRules) != 3 {
		t.Fatalf("Expected 3 audit rules, got %d", len(DefaultAuditRules))
	}

	for _, rule := range DefaultAuditRules {
		if len(rule.Files) == 0 {
			t.Errorf("Rule %s has no file patterns", rule.FolderPattern)
		}
		for _, file := range rule.Files {
			if file.MinCount < 1 {
				t.Errorf("Rule %s pattern %s has MinCount %d", rule.FolderPattern, file.Pattern, file.MinCount)
			}
		}
	}
}

func TestExitCodes(t *testing.T) {
	// Unix convention: 0 success, 1 general, 2 usage
	if ExitSuccess != 0 || ExitGeneralError != 1 || ExitUsageError != 2 {
		t.Error("Exit codes diverge from Unix conventions")
	}
}
