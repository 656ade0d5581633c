package runner

import (
	"testing"

	"mtr/assert"
	"mtr/domain"
	"mtr/registry"
)

// fakeProgress records progress callbacks.
type fakeProgress struct {
	updates  int
	finished bool
}

func (p *fakeProgress) Update(done, passed, failed int) { p.updates++ }
func (p *fakeProgress) Finish()                         { p.finished = true }

func buildScenarioRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()

	g1, err := reg.DefineGroup("G1")
	if err != nil {
		t.Fatalf("define group: %v", err)
	}
	_ = g1.DefineTest("T1", func(c *assert.C) {
		c.StringEqual("steve", "harvey")
	})
	_ = g1.DefineTest("T2", func(c *assert.C) {
		buf := []byte{'s', 't', 'e', 'v', 'e'}
		c.StringEqual("steve", string(buf))
	})

	g2, err := reg.DefineGroup("G2")
	if err != nil {
		t.Fatalf("define group: %v", err)
	}
	_ = g2.DefineTest("T1", func(c *assert.C) {
		c.NotEqual(0, 5)
		c.NotEqual("yo", "mamma")
	})
	_ = g2.DefineTest("T2", func(c *assert.C) {
		c.NotEqual(0, 6)
		c.True(true)
	})

	return reg
}

func TestRunner_Run(t *testing.T) {
	reg := buildScenarioRegistry(t)
	r := New()

	results, duration, err := r.Run(reg.AllTests(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if duration < 0 {
		t.Errorf("expected non-negative duration, got %v", duration)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	t.Run("G1.T1 fails with expected and actual recorded", func(t *testing.T) {
		result := results[0]
		if result.GroupName != "G1" || result.TestName != "T1" {
			t.Fatalf("expected G1.T1 first, got %s.%s", result.GroupName, result.TestName)
		}
		if result.Status != domain.StatusFailed {
			t.Fatalf("expected Failed, got %s", result.Status)
		}
		if len(result.Failures) != 1 {
			t.Fatalf("expected 1 failure, got %d", len(result.Failures))
		}
		f := result.Failures[0]
		if f.Expected != "harvey" || f.Actual != "steve" {
			t.Errorf("expected harvey/steve, got %s/%s", f.Expected, f.Actual)
		}
	})

	t.Run("remaining cases pass", func(t *testing.T) {
		for _, result := range results[1:] {
			if result.Status != domain.StatusPassed {
				t.Errorf("%s.%s: expected Passed, got %s with %v",
					result.GroupName, result.TestName, result.Status, result.Failures)
			}
			if len(result.Failures) != 0 {
				t.Errorf("%s.%s: expected zero failures, got %d",
					result.GroupName, result.TestName, len(result.Failures))
			}
		}
	})

	t.Run("failing case does not stop the run", func(t *testing.T) {
		if results[len(results)-1].TestName != "T2" || results[len(results)-1].GroupName != "G2" {
			t.Errorf("expected last result G2.T2, got %s.%s",
				results[len(results)-1].GroupName, results[len(results)-1].TestName)
		}
	})
}

func TestRunner_Run_FailFast(t *testing.T) {
	reg := buildScenarioRegistry(t)
	r := New()

	results, _, err := r.Run(reg.AllTests(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// G1.T1 fails first, so nothing else starts
	if len(results) != 1 {
		t.Fatalf("expected 1 result with fail-fast, got %d", len(results))
	}
	if results[0].Status != domain.StatusFailed {
		t.Errorf("expected Failed, got %s", results[0].Status)
	}
}

func TestRunner_Run_Empty(t *testing.T) {
	r := New()
	results, duration, err := r.Run(nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil || duration != 0 {
		t.Errorf("expected no results and zero duration, got %d results, %v", len(results), duration)
	}
}

func TestRunner_Run_PanicContained(t *testing.T) {
	reg := registry.New()
	g, _ := reg.DefineGroup("G1")
	_ = g.DefineTest("Panics", func(c *assert.C) {
		panic("boom")
	})
	_ = g.DefineTest("AfterPanic", func(c *assert.C) {
		c.True(true)
	})

	r := New()
	results, _, err := r.Run(reg.AllTests(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Status != domain.StatusFailed {
		t.Errorf("expected panicking case to be Failed, got %s", results[0].Status)
	}
	if len(results[0].Failures) != 1 || results[0].Failures[0].Kind != domain.KindPanic {
		t.Fatalf("expected one panic failure, got %v", results[0].Failures)
	}
	if results[1].Status != domain.StatusPassed {
		t.Errorf("expected the next case to run and pass, got %s", results[1].Status)
	}
}

func TestRunner_Progress(t *testing.T) {
	reg := buildScenarioRegistry(t)
	r := New()
	progress := &fakeProgress{}
	r.SetProgress(progress)

	if _, _, err := r.Run(reg.AllTests(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress.updates != 4 {
		t.Errorf("expected 4 progress updates, got %d", progress.updates)
	}
	if !progress.finished {
		t.Error("expected Finish to be called")
	}
}

func TestSummarize(t *testing.T) {
	reg := buildScenarioRegistry(t)
	r := New()
	results, duration, err := r.Run(reg.AllTests(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := Summarize(results, duration)
	if output.Meta.TotalTests != 4 {
		t.Errorf("expected 4 total, got %d", output.Meta.TotalTests)
	}
	if output.Meta.PassedTests != 3 {
		t.Errorf("expected 3 passed, got %d", output.Meta.PassedTests)
	}
	if output.Meta.FailedTests != 1 {
		t.Errorf("expected 1 failed, got %d", output.Meta.FailedTests)
	}
	if len(output.Details) != 1 {
		t.Fatalf("expected 1 failure detail, got %d", len(output.Details))
	}
	if output.Details[0].GroupName != "G1" || output.Details[0].TestName != "T1" {
		t.Errorf("expected detail for G1.T1, got %s.%s",
			output.Details[0].GroupName, output.Details[0].TestName)
	}
	if output.Meta.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}
