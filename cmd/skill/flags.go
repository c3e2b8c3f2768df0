package main

import (
	"flag"
)

var flagRunAddr string
var flagLogLevel string

// parseFlags читает флаги командной строки. Переменные окружения
// применяются позже, в config.Load, и имеют приоритет.
func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.Parse()
}
