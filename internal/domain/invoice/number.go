// Package invoice modela el número de factura como value object con
// construcción validada: prefijo fijo "INV" seguido de un consecutivo de
// 6 dígitos con ceros a la izquierda (INV000001, INV000002, ...).
//
// El formato de ancho fijo garantiza que el orden lexicográfico de los
// números almacenados coincide con el orden numérico, por lo que el último
// emitido se puede leer con ORDER BY invoice_no DESC sin depender del reloj.
package invoice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Prefix prefijo fijo de todos los números de factura.
const Prefix = "INV"

// suffixDigits ancho del consecutivo numérico.
const suffixDigits = 6

// ErrBadFormat se retorna cuando un valor almacenado no cumple el formato
// INV + 6 dígitos. El caller decide abortar; nunca se fabrica un número a
// partir de un valor ilegible.
var ErrBadFormat = errors.New("invoice: formato inválido, se espera INV + 6 dígitos")

// Number es un número de factura válido. El zero value no es válido;
// construir siempre con First o Parse.
type Number struct {
	seq int64
}

// First devuelve el primer número de la secuencia: INV000001.
func First() Number {
	return Number{seq: 1}
}

// Parse valida y construye un Number desde su representación almacenada.
func Parse(s string) (Number, error) {
	if len(s) != len(Prefix)+suffixDigits || !strings.HasPrefix(s, Prefix) {
		return Number{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	seq, err := strconv.ParseInt(s[len(Prefix):], 10, 64)
	if err != nil || seq < 1 {
		return Number{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	return Number{seq: seq}, nil
}

// Next devuelve el número siguiente de la secuencia.
func (n Number) Next() Number {
	return Number{seq: n.seq + 1}
}

// Sequence devuelve el consecutivo numérico.
func (n Number) Sequence() int64 {
	return n.seq
}

// String renderiza el número con el prefijo y ceros a la izquierda.
func (n Number) String() string {
	return fmt.Sprintf("%s%0*d", Prefix, suffixDigits, n.seq)
}
