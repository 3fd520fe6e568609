package utils

import log "github.com/sirupsen/logrus"

// Log is the shared logger, configured by bootstrap.InitLog before use.
var Log = log.New()
