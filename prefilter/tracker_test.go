package prefilter

import "testing"

// listPrefilter reports every listed position at or after start.
type listPrefilter struct {
	positions []int
}

func (p *listPrefilter) Find(_ []byte, start int) int {
	for _, pos := range p.positions {
		if pos >= start {
			return pos
		}
	}
	return -1
}

func (p *listPrefilter) IsComplete() bool { return false }
func (p *listPrefilter) LiteralLen() int  { return 0 }
func (p *listPrefilter) HeapBytes() int   { return 0 }

func everyPosition(n int) *listPrefilter {
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	return &listPrefilter{positions: positions}
}

func TestTrackerBasic(t *testing.T) {
	tracker := NewTracker(&listPrefilter{positions: []int{5, 10}})
	if !tracker.IsActive() {
		t.Fatal("tracker should start active")
	}
	if pos := tracker.Find(nil, 0); pos != 5 {
		t.Errorf("Find() = %d, want 5", pos)
	}
	tracker.ConfirmMatch()
	candidates, confirms, eff := tracker.Stats()
	if candidates != 1 || confirms != 1 || eff != 1.0 {
		t.Errorf("Stats() = %d, %d, %f", candidates, confirms, eff)
	}
	if pos := tracker.Find(nil, 11); pos != -1 {
		t.Errorf("Find() past the last candidate = %d", pos)
	}
	if NewTracker(nil) != nil {
		t.Error("NewTracker(nil) should be nil")
	}
}

func TestTrackerRetiresIneffectivePrefilter(t *testing.T) {
	config := TrackerConfig{CheckInterval: 10, MinEfficiency: 0.1, WarmupPeriod: 50}
	tracker := NewTrackerWithConfig(everyPosition(200), config)

	for i := 0; i < 40; i++ {
		tracker.Find(nil, i)
	}
	if !tracker.IsActive() {
		t.Fatal("tracker retired during warmup")
	}

	for i := 40; i < 200 && tracker.IsActive(); i++ {
		tracker.Find(nil, i)
	}
	if tracker.IsActive() {
		t.Fatal("tracker should retire at 0% efficiency")
	}
	if pos := tracker.Find(nil, 0); pos != -1 {
		t.Errorf("Find() on a retired tracker = %d, want -1", pos)
	}
}

func TestTrackerStaysActiveWhenEffective(t *testing.T) {
	config := TrackerConfig{CheckInterval: 10, MinEfficiency: 0.1, WarmupPeriod: 50}
	tracker := NewTrackerWithConfig(everyPosition(200), config)
	for i := 0; i < 200; i++ {
		if tracker.Find(nil, i) < 0 {
			break
		}
		if i%2 == 0 {
			tracker.ConfirmMatch()
		}
	}
	if !tracker.IsActive() {
		t.Error("tracker retired at 50% efficiency")
	}
	if _, ok := tracker.Inner().(*listPrefilter); !ok {
		t.Error("Inner() lost the wrapped prefilter")
	}
}
