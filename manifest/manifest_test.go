package manifest

import (
	"context"
	"path/filepath"
	"testing"

	"FractalRenderer/output"
)

func openTemp(t *testing.T) *Manifest {
	t.Helper()
	m, err := Open(filepath.Join(t.TempDir(), "frames.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestFramesAreOrderedByTime(t *testing.T) {
	ctx := context.Background()
	m := openTemp(t)

	records := []output.FrameRecord{
		{Index: 0, T: 0, Path: "frame0.png"},
		{Index: 1, T: 0.5, Path: "frame1.png"},
		{Index: 2, T: 0.25, Path: "frame2.png"},
	}
	for _, record := range records {
		if err := m.Record(ctx, record); err != nil {
			t.Fatal(err)
		}
	}

	frames, err := m.Frames(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 2, 1}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i, index := range want {
		if frames[i].Index != index {
			t.Errorf("frame %d has index %d, want %d", i, frames[i].Index, index)
		}
	}
}

func TestRecordReplacesIndex(t *testing.T) {
	ctx := context.Background()
	m := openTemp(t)

	if err := m.Record(ctx, output.FrameRecord{Index: 3, T: 0.1, Path: "old.png"}); err != nil {
		t.Fatal(err)
	}
	if err := m.Record(ctx, output.FrameRecord{Index: 3, T: 0.2, Path: "new.png"}); err != nil {
		t.Fatal(err)
	}
	frames, err := m.Frames(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 || frames[0].Path != "new.png" || frames[0].T != 0.2 {
		t.Errorf("frames = %+v", frames)
	}
}

func TestMeta(t *testing.T) {
	ctx := context.Background()
	m := openTemp(t)

	if _, ok, err := m.Meta(ctx, "mode"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := m.SetMeta(ctx, "mode", "uniform"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetMeta(ctx, "mode", "adaptive"); err != nil {
		t.Fatal(err)
	}
	value, ok, err := m.Meta(ctx, "mode")
	if err != nil || !ok || value != "adaptive" {
		t.Errorf("Meta = %q, %v, %v", value, ok, err)
	}
}

func TestReopenKeepsFrames(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "frames.db")

	m, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err = m.Record(ctx, output.FrameRecord{Index: 0, T: 0, Path: "frame0.png"}); err != nil {
		t.Fatal(err)
	}
	if err = m.Close(); err != nil {
		t.Fatal(err)
	}

	m, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	frames, err := m.Frames(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Errorf("got %d frames after reopening, want 1", len(frames))
	}
}
