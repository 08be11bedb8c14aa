// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by outbound oracle calls. The timeout doubles as
// the fail-open deadline: a slow oracle falls back to neutral scores
// instead of blocking a submission indefinitely.
var HTTPClient = &http.Client{
	Timeout: 20 * time.Second,
}
