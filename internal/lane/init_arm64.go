//go:build arm64 && !purego

package lane

import (
	_ "github.com/cwbudde/cascadeiir/internal/lane/arch/arm64/neon"
	_ "github.com/cwbudde/cascadeiir/internal/lane/arch/generic"
)
