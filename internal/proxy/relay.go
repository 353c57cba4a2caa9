package proxy

import (
	"io"
	"net"
	"sync"

	"go.uber.org/zap"
)

// DirectionResult reports how one relay direction ended. Err is nil when
// the direction stopped cleanly on end-of-stream, and holds the read or
// write fault otherwise.
type DirectionResult struct {
	Bytes int64
	Err   error
}

// Clean reports whether the direction ended on end-of-stream rather than a
// fault.
func (r DirectionResult) Clean() bool { return r.Err == nil }

// Relay forwards bytes between client and target in both directions until
// both have finished, then closes both connections. Each direction runs
// until its own source reaches end-of-stream or faults; one direction
// ending does not stop the other, so a half-closed session keeps draining
// the live side. Faults are logged and reported in the results, never
// propagated across directions.
func Relay(client, target net.Conn, log *zap.Logger) (clientToTarget, targetToClient DirectionResult) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		clientToTarget = copyDirection(target, client)
	}()
	go func() {
		defer wg.Done()
		targetToClient = copyDirection(client, target)
	}()

	wg.Wait()

	if !clientToTarget.Clean() {
		log.Debug("relay fault",
			zap.String("direction", "client->target"),
			zap.Int64("bytes", clientToTarget.Bytes),
			zap.Error(clientToTarget.Err))
	}
	if !targetToClient.Clean() {
		log.Debug("relay fault",
			zap.String("direction", "target->client"),
			zap.Int64("bytes", targetToClient.Bytes),
			zap.Error(targetToClient.Err))
	}

	// Close errors are ignored; either side may already be closed.
	_ = client.Close()
	_ = target.Close()

	return clientToTarget, targetToClient
}

func copyDirection(dst io.Writer, src io.Reader) DirectionResult {
	buf := getRelayBuffer()
	defer putRelayBuffer(buf)

	n, err := io.CopyBuffer(dst, src, buf)
	return DirectionResult{Bytes: n, Err: err}
}
