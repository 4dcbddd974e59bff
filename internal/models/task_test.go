package models

import "testing"

func TestMatchesTeam(t *testing.T) {
	task := Task{
		CustomFields: []CustomFieldValue{
			{Name: "Severity", DisplayValue: "Low"},
			{Name: "Team", DisplayValue: "Engagement"},
		},
	}

	if !task.MatchesTeam("Engagement") {
		t.Error("expected task to match team Engagement")
	}
	if task.MatchesTeam("Platform") {
		t.Error("expected task not to match team Platform")
	}
	if task.MatchesTeam("engagement") {
		t.Error("team match must be case-sensitive")
	}
}

func TestMatchesTeamScansPastNonMatchingTeamField(t *testing.T) {
	// Duplicate "Team" fields: the first does not match but a later one does.
	task := Task{
		CustomFields: []CustomFieldValue{
			{Name: "Team", DisplayValue: "Platform"},
			{Name: "Team", DisplayValue: "Engagement"},
		},
	}

	if !task.MatchesTeam("Engagement") {
		t.Error("expected scan to continue past a non-matching Team field")
	}
}

func TestMatchesTeamNoTeamField(t *testing.T) {
	task := Task{
		CustomFields: []CustomFieldValue{
			{Name: "Priority", DisplayValue: "High"},
		},
	}

	if task.MatchesTeam("Engagement") {
		t.Error("expected task without a Team field not to match")
	}
}

func TestFieldDisplayFirstMatchWins(t *testing.T) {
	task := Task{
		CustomFields: []CustomFieldValue{
			{Name: "Priority", DisplayValue: "High"},
			{Name: "Priority", DisplayValue: "Low"},
		},
	}

	display, ok := task.FieldDisplay("Priority")
	if !ok {
		t.Fatal("expected Priority field to be found")
	}
	if display != "High" {
		t.Errorf("expected first match %q, got %q", "High", display)
	}
}

func TestFieldDisplayMissing(t *testing.T) {
	task := Task{}

	if _, ok := task.FieldDisplay("Priority"); ok {
		t.Error("expected lookup on task without fields to report not found")
	}
}
