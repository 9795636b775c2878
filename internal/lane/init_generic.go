//go:build (!amd64 && !arm64) || purego

package lane

import (
	_ "github.com/cwbudde/cascadeiir/internal/lane/arch/generic"
)
