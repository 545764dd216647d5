package config

import (
	"os"
	"testing"

	"github.com/hydrate-app/hydrate/internal/models"
)

func TestInstanceLifecycle(t *testing.T) {
	storage := testStorage(t)

	running, _, err := IsInstanceRunning(storage)
	if err != nil {
		t.Fatalf("IsInstanceRunning: %v", err)
	}
	if running {
		t.Fatal("running = true with no instance file")
	}

	info := models.NewInstanceInfo(os.Getpid(), "test")
	if err := SaveInstanceInfo(storage, info); err != nil {
		t.Fatalf("SaveInstanceInfo: %v", err)
	}

	running, got, err := IsInstanceRunning(storage)
	if err != nil {
		t.Fatalf("IsInstanceRunning: %v", err)
	}
	if !running {
		t.Error("running = false for the current process")
	}
	if got == nil || got.PID != os.Getpid() {
		t.Errorf("info = %+v, want PID %d", got, os.Getpid())
	}

	if err := RemoveInstanceInfo(storage); err != nil {
		t.Fatalf("RemoveInstanceInfo: %v", err)
	}
	if FileExists(storage.InstanceFile()) {
		t.Error("instance file still present after remove")
	}
}

func TestProcessAlive(t *testing.T) {
	if !processAlive(os.Getpid()) {
		t.Error("processAlive(self) = false")
	}
	// PID values this large are never allocated.
	if processAlive(1<<22 + 54321) {
		t.Error("processAlive(dead PID) = true")
	}
}

func TestStaleInstanceCleanedUp(t *testing.T) {
	storage := testStorage(t)

	// PID values this large are never allocated.
	info := models.NewInstanceInfo(1<<22+12345, "test")
	if err := SaveInstanceInfo(storage, info); err != nil {
		t.Fatal(err)
	}

	running, _, err := IsInstanceRunning(storage)
	if err != nil {
		t.Fatalf("IsInstanceRunning: %v", err)
	}
	if running {
		t.Error("running = true for a dead PID")
	}
	if FileExists(storage.InstanceFile()) {
		t.Error("stale instance file was not removed")
	}
}
