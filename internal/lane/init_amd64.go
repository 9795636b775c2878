//go:build amd64 && !purego

package lane

import (
	_ "github.com/cwbudde/cascadeiir/internal/lane/arch/amd64/avx2"
	_ "github.com/cwbudde/cascadeiir/internal/lane/arch/amd64/avx512"
	_ "github.com/cwbudde/cascadeiir/internal/lane/arch/amd64/sse2"
	_ "github.com/cwbudde/cascadeiir/internal/lane/arch/generic"
)
