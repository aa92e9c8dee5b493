package umd_test

import (
	"testing"

	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/conform"
)

func TestCanNest(t *testing.T) {
	if err := conform.VerifyNesting(umd.CanNest); err != nil {
		t.Error(err)
	}
}

func TestChangeOwner_noCycles(t *testing.T) {
	if err := conform.VerifyNoCycles(umd.ChangeOwner); err != nil {
		t.Error(err)
	}
}
