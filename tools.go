//go:build tools

package chainbind

import (
	_ "github.com/vektra/mockery/v2"
)
