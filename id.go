package wlclient

import (
	"github.com/teris-io/shortid"
)

const defaultAbc = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ@-"

var (
	shortIdentifier *shortid.Shortid
)

func init() {
	shortIdentifier = shortid.MustNew(0, defaultAbc, 1)
}

// NewLabel returns a short random label used to tell connections apart in
// logs and metrics.
func NewLabel() string {
	id, _ := shortIdentifier.Generate()
	return id
}
