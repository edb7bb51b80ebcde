package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
)

// RunWithSharedContainer runs the package's tests and purges the shared garden
// database afterwards, or on SIGINT/SIGTERM. It returns the exit code for TestMain.
func RunWithSharedContainer(m *testing.M, pkg string) int {
	log := logrus.WithField("package", pkg)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		log.Warn("Tests interrupted, purging garden database")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	log.WithField("exit_code", code).Debug("Tests finished, purging garden database")
	CleanupSharedContainer()
	return code
}
