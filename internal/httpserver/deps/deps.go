package deps

import (
	"time"

	"linkden/internal/logger"
	"linkden/internal/store/sqlite"
)

type Deps struct {
	Logger     logger.Logger
	StartTime  time.Time
	Version    string
	Commit     string
	BuildDate  string
	GoVersion  string
	TimeNow    func() time.Time // for testing, defaults to time.Now
	Store      *sqlite.Store    // bookmark persistence gateway
	APIToken   string           // shared bearer token required on /bookmarks
	Production bool             // true => hide error detail in 500 responses
}
