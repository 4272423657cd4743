package errors

import (
	"errors"
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// PartitionError Tests
// -----------------------------------------------------------------------------

func TestNewPartitionError(t *testing.T) {
	err := NewPartitionError(5)

	if err.N != 5 {
		t.Errorf("N = %d, want 5", err.N)
	}
	if err.Stratum != 0 {
		t.Errorf("Stratum = %d, want 0 (untagged)", err.Stratum)
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestPartitionError_WithStratum(t *testing.T) {
	err := NewPartitionError(2).WithStratum(9)

	if err.Stratum != 9 {
		t.Errorf("Stratum = %d, want 9", err.Stratum)
	}
}

func TestPartitionError_Error(t *testing.T) {
	t.Run("untagged", func(t *testing.T) {
		err := NewPartitionError(5)
		want := "partition error [n=5]: headcount cannot be split into groups of 3 and 4"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("tagged with tutorial", func(t *testing.T) {
		err := NewPartitionError(5).WithStratum(7)
		want := "partition error [tutorial=7, n=5]: headcount cannot be split into groups of 3 and 4"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("tagged with tutorial zero", func(t *testing.T) {
		// Some exports number tutorials from 0; the tag must still render.
		err := NewPartitionError(5).WithStratum(0)
		want := "partition error [tutorial=0, n=5]: headcount cannot be split into groups of 3 and 4"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestPartitionError_Is(t *testing.T) {
	err := NewPartitionError(1).WithStratum(3)

	if !errors.Is(err, ErrInfeasiblePartition) {
		t.Error("errors.Is(err, ErrInfeasiblePartition) = false, want true")
	}
	if errors.Is(err, ErrUnsupportedGroupSizes) {
		t.Error("errors.Is(err, ErrUnsupportedGroupSizes) = true, want false")
	}
}

func TestPartitionError_As(t *testing.T) {
	var err error = fmt.Errorf("assigning groups: %w", NewPartitionError(5).WithStratum(4))

	var pErr *PartitionError
	if !errors.As(err, &pErr) {
		t.Fatal("errors.As(err, &pErr) = false, want true")
	}
	if pErr.N != 5 || pErr.Stratum != 4 {
		t.Errorf("got N=%d Stratum=%d, want N=5 Stratum=4", pErr.N, pErr.Stratum)
	}
}

// -----------------------------------------------------------------------------
// RosterError Tests
// -----------------------------------------------------------------------------

func TestRosterError_Error(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		err := NewRosterError("unreadable record", nil)
		want := "roster error: unreadable record"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("with path and line", func(t *testing.T) {
		err := NewRosterError("bad section label", ErrNoTutorialNumber).
			WithPath("roster.csv").
			WithLine(12)
		got := err.Error()
		want := "roster error [file=roster.csv, line=12]: bad section label: no tutorial number found in section label"
		if got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestRosterError_Is(t *testing.T) {
	err := NewRosterError("bad label", ErrNoTutorialNumber)

	if !errors.Is(err, ErrNoTutorialNumber) {
		t.Error("errors.Is(err, ErrNoTutorialNumber) = false, want true")
	}
	if errors.Is(err, ErrMissingColumn) {
		t.Error("errors.Is(err, ErrMissingColumn) = true, want false")
	}
}

// -----------------------------------------------------------------------------
// ConfigError Tests
// -----------------------------------------------------------------------------

func TestConfigError_Error(t *testing.T) {
	err := NewConfigError("sizes must be 3 or 4", ErrUnsupportedGroupSizes).
		WithField("assign.preferred_size")
	got := err.Error()
	want := "config error [assign.preferred_size]: sizes must be 3 or 4: only group sizes 3 and 4 are supported"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestIsUserFacing(t *testing.T) {
	if !IsUserFacing(NewPartitionError(5)) {
		t.Error("IsUserFacing(PartitionError) = false, want true")
	}
	if IsUserFacing(errors.New("internal detail")) {
		t.Error("IsUserFacing(plain error) = true, want false")
	}
	// Wrapped domain errors stay user-facing.
	wrapped := fmt.Errorf("while assigning: %w", NewRosterError("bad label", nil))
	if !IsUserFacing(wrapped) {
		t.Error("IsUserFacing(wrapped RosterError) = false, want true")
	}
}

func TestIsConfigError(t *testing.T) {
	if !IsConfigError(NewConfigError("bad sizes", nil)) {
		t.Error("IsConfigError(ConfigError) = false, want true")
	}
	if !IsConfigError(fmt.Errorf("setup: %w", ErrUnsupportedGroupSizes)) {
		t.Error("IsConfigError(wrapped ErrUnsupportedGroupSizes) = false, want true")
	}
	if IsConfigError(NewPartitionError(5)) {
		t.Error("IsConfigError(PartitionError) = true, want false")
	}
}
