package printer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

// Transmitter delivers an encoded receipt to a physical or virtual printer.
// The core only guarantees the byte stream; the medium is pluggable.
type Transmitter interface {
	Transmit(ctx context.Context, payload []byte) error
}

// TCPTransmitter writes to a network thermal printer, conventionally on
// port 9100.
type TCPTransmitter struct {
	Addr    string
	Timeout time.Duration
}

func NewTCPTransmitter(addr string, timeout time.Duration) *TCPTransmitter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TCPTransmitter{Addr: addr, Timeout: timeout}
}

func (t *TCPTransmitter) Transmit(ctx context.Context, payload []byte) error {
	dialer := net.Dialer{Timeout: t.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", t.Addr)
	if err != nil {
		return fmt.Errorf("connect printer %s: %w", t.Addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetWriteDeadline(deadline)
	} else {
		conn.SetWriteDeadline(time.Now().Add(t.Timeout))
	}

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("write to printer %s: %w", t.Addr, err)
	}
	return nil
}

// LogTransmitter stands in when no printer is configured.
type LogTransmitter struct {
	Log log.Log
}

func (t *LogTransmitter) Transmit(_ context.Context, payload []byte) error {
	t.Log.Info("printer", fmt.Sprintf("simulated print, %d bytes", len(payload)), "Transmit", "")
	return nil
}
