//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"garden-planner-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunWithSharedContainer(m, "repository"))
}
