package check

import (
	"reflect"
	"testing"
)

func TestSequenceStats_Contiguous(t *testing.T) {
	names := []string{"def_1.dat", "def_2.dat", "def_3.dat"}

	stats := sequenceStats(names, `^def_(\d+)\.dat$`)
	if stats == nil {
		t.Fatal("Expected stats")
	}
	if stats.Min != 1 || stats.Max != 3 || stats.Unique != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.Missing != nil {
		t.Errorf("Expected no missing numbers, got %v", stats.Missing)
	}
}

func TestSequenceStats_Gaps(t *testing.T) {
	names := []string{"def_1.dat", "def_2.dat", "def_5.dat"}

	stats := sequenceStats(names, `^def_(\d+)\.dat$`)
	if stats == nil {
		t.Fatal("Expected stats")
	}
	if !reflect.DeepEqual(stats.Missing, []int{3, 4}) {
		t.Errorf("Missing = %v, want [3 4]", stats.Missing)
	}
}

func TestSequenceStats_Duplicates(t *testing.T) {
	// Same number extracted from distinct names counts once
	names := []string{"plot_100ms.txt", "plot_0100ms.txt"}

	stats := sequenceStats(names, `^plot_0*(\d+?)ms\.txt$`)
	if stats == nil {
		t.Fatal("Expected stats")
	}
	if stats.Unique != 1 {
		t.Errorf("Unique = %d, want 1", stats.Unique)
	}
}

func TestSequenceStats_NoMatches(t *testing.T) {
	if stats := sequenceStats([]string{"readme.txt"}, `^def_(\d+)\.dat$`); stats != nil {
		t.Errorf("Expected nil stats, got %+v", stats)
	}
}

func TestSequenceStats_InvalidPattern(t *testing.T) {
	if stats := sequenceStats([]string{"def_1.dat"}, `([`); stats != nil {
		t.Errorf("Expected nil stats for invalid pattern, got %+v", stats)
	}
}
