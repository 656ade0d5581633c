package storage

import (
	"testing"

	"mtr/domain"
	"mtr/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ProjectPath:    t.TempDir(),
		OutputJSONDir:  "out",
		OutputJSONFile: "results.json",
	}
}

func TestJSONStorage_SaveOutputAndLoad(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	output := &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:  4,
			PassedTests: 3,
			FailedTests: 1,
			Duration:    "12ms",
			Timestamp:   "2026-08-23T10:00:00Z",
		},
		Details: []domain.AssertionFailure{
			{
				GroupName: "G1",
				TestName:  "T1",
				Kind:      domain.KindStringEquality,
				Expected:  "harvey",
				Actual:    "steve",
				Location:  "sample.go:23",
				Message:   `expected "harvey" but was "steve"`,
			},
		},
	}

	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Meta != output.Meta {
		t.Errorf("meta changed across save/load: %+v vs %+v", loaded.Meta, output.Meta)
	}
	if len(loaded.Details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(loaded.Details))
	}
	if loaded.Details[0] != output.Details[0] {
		t.Errorf("detail changed across save/load: %+v vs %+v", loaded.Details[0], output.Details[0])
	}
}

func TestJSONStorage_SaveResults(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	results := []domain.Result{
		{GroupName: "G1", TestName: "T1", Status: domain.StatusPassed},
		{GroupName: "G1", TestName: "T2", Status: domain.StatusFailed, Failures: []domain.AssertionFailure{
			{GroupName: "G1", TestName: "T2", Kind: domain.KindBooleanTrue, Message: "expected condition to be true", Location: "x.go:1"},
		}},
	}

	if err := st.Save(results, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Meta.TotalTests != 2 || loaded.Meta.PassedTests != 1 || loaded.Meta.FailedTests != 1 {
		t.Errorf("unexpected meta: %+v", loaded.Meta)
	}
	if len(loaded.Details) != 1 {
		t.Errorf("expected 1 failure detail, got %d", len(loaded.Details))
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := NewJSONStorage(testConfig(t))
	if _, err := st.Load(); err == nil {
		t.Error("expected an error when no run has been saved yet")
	}
}
