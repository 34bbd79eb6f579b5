package logging

import (
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "[Info] ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLog = log.New(os.Stderr, "[Warn] ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "[Error] ", log.Ldate|log.Ltime|log.Lshortfile)
)
