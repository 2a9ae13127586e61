package config

import (
	"github.com/spf13/viper"

	"github.com/bcaffe88/cardapio-completo/src/internal/printer"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

// NewPrinterTransmitter picks the receipt output: a network thermal printer
// when one is configured, otherwise a log-only stand-in.
func NewPrinterTransmitter(config *viper.Viper, logger log.Log) printer.Transmitter {
	addr := config.GetString("printer.address")
	if addr == "" {
		logger.Info("printer-config", "No printer configured, receipts go to the log", "printer", "")
		return &printer.LogTransmitter{Log: logger}
	}

	return printer.NewTCPTransmitter(addr, config.GetDuration("printer.timeout"))
}
