package trackingcode

import (
	"crypto/rand"
	"fmt"
)

const (
	// CodeLength длина публичного трек-кода.
	CodeLength = 12

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator выдает случайные трек-коды из [A-Z0-9].
// Код это кандидат на уникальность: коллизию ловит уникальный индекс
// в хранилище, повторную генерацию делает сервис доставок.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate() (string, error) {
	buf := make([]byte, CodeLength)
	_, err := rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf), nil
}
