package main

import "testing"

// TestInitAliquotApp checks that all estimator commands are registered.
func TestInitAliquotApp(t *testing.T) {
	app := initAliquotApp()
	expected := []string{"analytic", "lognormal", "sweep"}
	for _, name := range expected {
		if app.Command(name) == nil {
			t.Fatalf("missing command %v", name)
		}
	}
	if len(app.Commands) != len(expected) {
		t.Fatalf("unexpected number of commands: %v", len(app.Commands))
	}
}
