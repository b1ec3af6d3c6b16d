package testutils

import (
	"io/ioutil"
	"os"

	"github.com/stretchr/testify/assert"
)

type CleanupFunction func()

// TempDirectory creates a short lived runtime directory. The name is kept
// short because socket paths are limited to 108 bytes.
func TempDirectory(t assert.TestingT) (string, CleanupFunction) {
	dir, err := ioutil.TempDir("", "wl")
	if !assert.NoError(t, err) {
		panic(err)
	}
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			panic(err)
		}
	}
}
