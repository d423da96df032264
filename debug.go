package mcast

import (
	"log"
	"os"
	"strings"
)

var (
	dlog  = log.New(os.Stderr, "mcast: ", log.Lmicroseconds|log.Lshortfile)
	debug = strings.Contains(os.Getenv("MCASTTRACE"), "mcast") || os.Getenv("MCASTTRACE") == "all"
)
