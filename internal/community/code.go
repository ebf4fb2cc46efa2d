package community

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewCode gera o código curto compartilhável de uma comunidade: seis
// caracteres aleatórios em base 36 mais os quatro últimos dígitos do
// timestamp em base 36, para reduzir colisões entre códigos criados no
// mesmo instante.
func NewCode(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}

	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	if len(stamp) > 4 {
		stamp = stamp[len(stamp)-4:]
	}
	b.WriteString(stamp)
	return b.String()
}
