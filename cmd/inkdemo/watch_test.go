package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	targets := map[string]bool{in: true}

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: in, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: in, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: in, Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: in, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: in, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "out.png"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevant(tt.ev, targets); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestWatch_Rerenders(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	if err := os.WriteFile(in, []byte(`[[0,0]]`), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reruns := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, []string{in, ""}, func() error {
			select {
			case reruns <- struct{}{}:
			default:
			}
			return errors.New("render failures are logged, not fatal")
		})
	}()

	// the watcher registers asynchronously, so keep touching the file
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	deadline := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case <-reruns:
			got = true
		case <-tick.C:
			if err := os.WriteFile(in, []byte(`[[0,0],[1,1]]`), 0o600); err != nil {
				t.Fatal(err)
			}
		case err := <-done:
			t.Fatalf("watch returned early: %v", err)
		case <-deadline:
			t.Fatal("no re-render after writing the input")
		}
	}

	// an unrelated file in the same directory is ignored
	time.Sleep(200 * time.Millisecond)
	for len(reruns) > 0 {
		<-reruns
	}
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`[]`), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-reruns:
		t.Error("write to an unwatched file triggered a re-render")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
