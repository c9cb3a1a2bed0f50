package journal

import (
	"fmt"
	"time"

	"github.com/mark3labs/remitkiosk/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	readyTimeout    = 4 * time.Second
	drainTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// startServer runs a JetStream-enabled NATS server inside the kiosk
// process. It has no network listener: the only client is the kiosk itself.
func startServer(kioskID, storeDir string) (*server.Server, error) {
	ns, err := server.NewServer(&server.Options{
		ServerName: "remitkiosk-" + SubjectToken(kioskID),
		JetStream:  true,
		StoreDir:   storeDir,
		DontListen: true,
		NoSigs:     true,
		NoLog:      true,
	})
	if err != nil {
		return nil, err
	}

	go ns.Start()
	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("journal server not ready after %s", readyTimeout)
	}

	logger.Debug("Journal server %s up (store dir: %s)", ns.Name(), storeDir)
	return ns, nil
}

// dial opens the in-process client connection and its JetStream context.
func dial(ns *server.Server) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect("", nats.InProcessServer(ns), nats.Name("remitkiosk"))
	if err != nil {
		return nil, nil, err
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}
	return nc, js, nil
}

// shutdown flushes pending publishes, then stops the server. Each phase is
// bounded so kiosk exit never hangs on the journal.
func shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drained := make(chan error, 1)
		go func() { drained <- nc.Drain() }()
		if ok, err := waitFor(drained, drainTimeout); !ok || err != nil {
			logger.Warn("Journal connection did not drain cleanly (err=%v), closing", err)
			nc.Close()
		}
	}

	if ns == nil {
		return nil
	}
	ns.Shutdown()
	stopped := make(chan error, 1)
	go func() {
		ns.WaitForShutdown()
		stopped <- nil
	}()
	if ok, _ := waitFor(stopped, shutdownTimeout); !ok {
		return fmt.Errorf("journal server still running after %s", shutdownTimeout)
	}
	logger.Debug("Journal server stopped")
	return nil
}

// waitFor receives from ch, reporting false if d elapses first.
func waitFor(ch <-chan error, d time.Duration) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case err := <-ch:
		return true, err
	case <-timer.C:
		return false, nil
	}
}
