package main

import "github.com/Laky-64/gologging"

func setLogLevel(name string) {
	switch name {
	case "debug":
		gologging.SetLevel(gologging.DebugLevel)
	case "warn", "warning":
		gologging.SetLevel(gologging.WarnLevel)
	case "error":
		gologging.SetLevel(gologging.ErrorLevel)
	default:
		gologging.SetLevel(gologging.InfoLevel)
	}
}
