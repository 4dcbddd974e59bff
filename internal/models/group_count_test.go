package models

import (
	"reflect"
	"testing"
)

func TestGroupCounterInsertionOrder(t *testing.T) {
	counter := NewGroupCounter()
	counter.Add("High")
	counter.Add("Low")
	counter.Add("High")

	got := counter.Groups()
	want := []GroupCount{{"High", 2}, {"Low", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}
}

func TestGroupCounterSortedDescending(t *testing.T) {
	counter := NewGroupCounter()
	counter.Add("Low")
	counter.Add("High")
	counter.Add("High")
	counter.Add("High")
	counter.Add("Medium")
	counter.Add("Medium")

	got := counter.SortedGroups()
	want := []GroupCount{{"High", 3}, {"Medium", 2}, {"Low", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedGroups() = %v, want %v", got, want)
	}
}

func TestGroupCounterSortIsStableOnTies(t *testing.T) {
	counter := NewGroupCounter()
	counter.Add("Urgent")
	counter.Add("Backlog")
	counter.Add("Backlog")
	counter.Add("Triage")

	// Urgent and Triage tie at 1; Urgent was seen first and must stay first.
	got := counter.SortedGroups()
	want := []GroupCount{{"Backlog", 2}, {"Urgent", 1}, {"Triage", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedGroups() = %v, want %v", got, want)
	}
}

func TestGroupCounterEmpty(t *testing.T) {
	counter := NewGroupCounter()

	if got := counter.Groups(); len(got) != 0 {
		t.Errorf("expected no groups, got %v", got)
	}
	if got := counter.SortedGroups(); len(got) != 0 {
		t.Errorf("expected no sorted groups, got %v", got)
	}
}
